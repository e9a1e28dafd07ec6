package trace

import "time"

// Kind is the type of a trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	KindHeartbeat
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindHeartbeat:
		return "heartbeat"
	default:
		return "unknown"
	}
}

// Scope is the granularity of an event; lower values are coarser.
type Scope uint8

const (
	// ScopeCommand is one CLI command.
	ScopeCommand Scope = iota + 1
	// ScopeBatch is one driver run over many fragments.
	ScopeBatch
	// ScopeFragment is a single parse, render or law check.
	ScopeFragment
)

func (s Scope) String() string {
	switch s {
	case ScopeCommand:
		return "command"
	case ScopeBatch:
		return "batch"
	case ScopeFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Event is a single trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // assigned by the tracer that stores the event
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for roots
	GID      uint64
	Name     string // "parse", "check", "fragment:/cell/A1"
	Detail   string
	Extra    map[string]string
}
