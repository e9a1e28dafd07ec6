package fragment

import (
	"math"
	"strings"

	"fortio.org/safecast"

	"sheetnav/internal/source"
)

// Segment is one slash-delimited component of a fragment.
type Segment struct {
	Text string
	Span source.Span
}

// Trim drops an optional leading '#', then one leading slash and all
// trailing slashes, returning the remaining text and its byte offset inside
// fragment.
func Trim(fragment string) (body string, offset int) {
	body = strings.TrimRight(fragment, "/")
	if strings.HasPrefix(body, "#") {
		body, offset = body[1:], 1
	}
	if strings.HasPrefix(body, "/") {
		body, offset = body[1:], offset+1
	}
	return body, offset
}

// Split returns the segments of fragment. The empty fragment, "/" and any run
// of slashes have no segments.
func Split(fragment string) []Segment {
	body, off := Trim(fragment)
	if body == "" {
		return nil
	}
	segs := make([]Segment, 0, strings.Count(body, "/")+1)
	start := 0
	for i := 0; i <= len(body); i++ {
		if i < len(body) && body[i] != '/' {
			continue
		}
		segs = append(segs, Segment{
			Text: body[start:i],
			Span: spanOf(off+start, off+i),
		})
		start = i + 1
	}
	return segs
}

// spanOf converts int offsets, saturating instead of panicking on overflow.
func spanOf(start, end int) source.Span {
	return source.Span{Start: offset(start), End: offset(end)}
}

func offset(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		if n < 0 {
			return 0
		}
		return math.MaxUint32
	}
	return v
}
