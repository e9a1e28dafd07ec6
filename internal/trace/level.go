package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff     Level = iota
	LevelError         // failures only
	LevelCommand       // command boundaries
	LevelBatch         // plus driver batches
	LevelDebug         // plus every fragment
)

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelCommand:
		return "command"
	case LevelBatch:
		return "batch"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel accepts the level names in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "command":
		return LevelCommand, nil
	case "batch":
		return LevelBatch, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|command|batch|debug)", s)
	}
}

// ShouldEmit reports whether events of scope pass at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelCommand:
		return scope <= ScopeCommand
	case LevelBatch:
		return scope <= ScopeBatch
	case LevelDebug:
		return true
	}
	// LevelError: failures go through Point, which bypasses the scope filter
	return false
}
