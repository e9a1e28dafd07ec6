package driver

// Stage is the step a fragment is in.
type Stage uint8

const (
	StageParse Stage = iota + 1
	StageLaws
)

func (s Stage) String() string {
	switch s {
	case StageParse:
		return "parsing"
	case StageLaws:
		return "checking"
	default:
		return ""
	}
}

// Status of a fragment within its stage.
type Status uint8

const (
	StatusQueued Status = iota + 1
	StatusWorking
	StatusDone
	StatusError
)

// Event is a progress notification. Index is the position in the batch.
type Event struct {
	Index    int
	Fragment string
	Stage    Stage
	Status   Status
}

// Observer receives events from worker goroutines; it must be goroutine-safe.
type Observer func(Event)

func (o Observer) emit(ev Event) {
	if o != nil {
		o(ev)
	}
}

// ChannelObserver sends events to ch. The send blocks, so the reader must
// drain ch until Check returns.
func ChannelObserver(ch chan<- Event) Observer {
	return func(ev Event) { ch <- ev }
}
