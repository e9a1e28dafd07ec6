package pattern

import (
	"errors"
	"fmt"
)

// ErrBadPattern is wrapped by every Parse failure.
var ErrBadPattern = errors.New("bad pattern")

// Kind names what a pattern formats or parses.
type Kind uint8

const (
	DateFormat Kind = iota + 1
	DateParse
	DateTimeFormat
	DateTimeParse
	NumberFormat
	NumberParse
	TextFormat
	TimeFormat
	TimeParse
)

const (
	dateLetters   = "yMdE"
	timeLetters   = "HhmsSa"
	numberLetters = "#0.,%E$"
	textLetters   = "@"
)

type kindInfo struct {
	name    string
	letters string
	parse   bool
}

var kinds = [...]kindInfo{
	DateFormat:     {"date-format", dateLetters, false},
	DateParse:      {"date-parse", dateLetters, true},
	DateTimeFormat: {"date-time-format", dateLetters + timeLetters, false},
	DateTimeParse:  {"date-time-parse", dateLetters + timeLetters, true},
	NumberFormat:   {"number-format", numberLetters, false},
	NumberParse:    {"number-parse", numberLetters, true},
	TextFormat:     {"text-format", textLetters, false},
	TimeFormat:     {"time-format", timeLetters, false},
	TimeParse:      {"time-parse", timeLetters, true},
}

// Kinds returns all kinds in name order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds)-1)
	for k := DateFormat; k <= TimeParse; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind looks a kind up by its path name.
func ParseKind(name string) (Kind, error) {
	for k := DateFormat; k <= TimeParse; k++ {
		if kinds[k].name == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown pattern kind %q", ErrBadPattern, name)
}

func (k Kind) valid() bool { return k >= DateFormat && k <= TimeParse }

func (k Kind) String() string {
	if k.valid() {
		return kinds[k].name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsParse reports whether the kind parses input rather than formatting output.
func (k Kind) IsParse() bool { return k.valid() && kinds[k].parse }
