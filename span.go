package jsoniter

import "fmt"

// Span is the half-open range [Start, End) of one JSON value in the
// iterator buffer, as it was when the value was captured.
//
// A span of a reader backed iterator is only valid until the next refill
// drops the bytes it points at. Wrap the reads in Retain/Release to keep a
// batch of spans alive.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool { return s.End <= s.Start }

// Offset translates the span to input stream offsets, given the stream
// offset of the first buffer byte.
func (s Span) Offset(base int64) (start, end int64) {
	return base + int64(s.Start), base + int64(s.End)
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// SpanBytes returns the buffer bytes covered by span without copying them,
// or nil if the span is not inside the buffer.
func (iter *Iterator) SpanBytes(span Span) []byte {
	if span.Start < 0 || span.End < span.Start || span.End > iter.tail {
		return nil
	}
	return iter.buf[span.Start:span.End:span.End]
}

// SpanOffset returns the input stream offsets of span. Like the span itself,
// the result is only meaningful while the span is valid.
func (iter *Iterator) SpanOffset(span Span) (start, end int64) {
	return span.Offset(iter.offset)
}
