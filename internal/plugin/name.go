// Package plugin holds the plugin name value used by plugin history tokens.
package plugin

import (
	"errors"
	"fmt"
)

// MaxNameLength bounds plugin names.
const MaxNameLength = 255

// ErrBadName is wrapped when a plugin name is rejected.
var ErrBadName = errors.New("bad plugin name")

// Name is a plugin name: a letter, then letters, digits or '-'.
type Name struct {
	value string
}

// ParseName validates s. "*" is reserved for the plugin list.
func ParseName(s string) (Name, error) {
	if s == "" || len(s) > MaxNameLength {
		return Name{}, fmt.Errorf("%w: %q", ErrBadName, s)
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		letter := (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
		if i == 0 && !letter {
			return Name{}, fmt.Errorf("%w: %q must start with a letter", ErrBadName, s)
		}
		if !letter && !(ch >= '0' && ch <= '9') && ch != '-' {
			return Name{}, fmt.Errorf("%w: %q contains %q", ErrBadName, s, ch)
		}
	}
	return Name{value: s}, nil
}

// MustName is ParseName for literals known to be valid.
func MustName(s string) Name {
	n, err := ParseName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Name) IsZero() bool   { return n.value == "" }
func (n Name) String() string { return n.value }
