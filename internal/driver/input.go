package driver

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Input is one fragment read from a check file.
type Input struct {
	Line int // 1-based, 0 for fragments given on the command line
	Text string
}

// ReadInputs reads one fragment per line. Blank lines and lines starting
// with '#' are skipped, except "#/..." which is a fragment copied from an
// address bar and loses its leading '#'.
func ReadInputs(r io.Reader) ([]Input, error) {
	var out []Input
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "":
			continue
		case strings.HasPrefix(text, "#/"):
			text = text[1:]
		case strings.HasPrefix(text, "#"):
			continue
		}
		out = append(out, Input{Line: line, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read fragments: %w", err)
	}
	return out, nil
}

// Inputs wraps command-line fragments.
func Inputs(texts ...string) []Input {
	out := make([]Input, len(texts))
	for i, t := range texts {
		out[i] = Input{Text: strings.TrimPrefix(t, "#")}
	}
	return out
}
