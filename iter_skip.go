package jsoniter

import (
	"bytes"
	"fmt"
	"io"
)

// breaks marks the bytes ending an unquoted token: true, false, null, number
var breaks [256]bool

func init() {
	for _, c := range []byte{' ', '\t', '\n', '\r', ',', '}', ']'} {
		breaks[c] = true
	}
}

// nesting is the bracket pair of a structural value.
type nesting struct {
	open, close byte
}

var (
	arrayNesting  = nesting{'[', ']'}
	objectNesting = nesting{'{', '}'}
)

// Skip skips a json object and positions to relatively the next json object.
//
// Skip does not validate what it skips. A value cut short by the end of the
// input (unterminated string, number, array or object) is skipped up to the
// end of the input and is not an error, so Error is io.EOF afterwards. Use
// SkipStrict when the value has to be well formed.
func (iter *Iterator) Skip() {
	iter.skipValue("Skip", iter.nextToken())
}

// SkipCapturing skips the next value like Skip and returns its type and its
// span in the buffer. The span is only valid until the next refill unless
// the iterator is retained, see Retain. On failure, including a reader error
// in the middle of the value, it returns InvalidValue and an empty span and
// the cause is in Error. Running out of input mid-value is not a failure.
func (iter *Iterator) SkipCapturing() (ValueType, Span) {
	c := iter.nextToken()
	start := iter.head - 1

	iter.Retain()
	valueType := iter.skipValue("SkipCapturing", c)
	iter.Release()

	if valueType == InvalidValue || iter.failure() != nil {
		return InvalidValue, Span{}
	}
	return valueType, Span{Start: start, End: iter.head}
}

// SkipAndReturnBytes skip next JSON element, and return its content as []byte.
// The []byte can be kept, it is a copy of data. It returns nil on failure,
// a reader error included.
func (iter *Iterator) SkipAndReturnBytes() []byte {
	valueType, span := iter.SkipCapturing()
	if valueType == InvalidValue {
		return nil
	}
	return append(make([]byte, 0, span.Len()), iter.buf[span.Start:span.End]...)
}

// SkipAndAppendBytes skips next JSON element and appends its content to
// buffer, returning the result. On failure buffer is returned unchanged.
func (iter *Iterator) SkipAndAppendBytes(buf []byte) []byte {
	valueType, span := iter.SkipCapturing()
	if valueType == InvalidValue {
		return buf
	}
	return append(buf, iter.buf[span.Start:span.End]...)
}

// skipValue skips the value starting with c, which nextToken just consumed.
func (iter *Iterator) skipValue(op string, c byte) ValueType {
	switch c {
	case '"':
		iter.skipString()
		return StringValue
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		iter.skipUntilBreak()
		return NumberValue
	case 't', 'f':
		iter.skipUntilBreak()
		return BoolValue
	case 'n':
		iter.skipUntilBreak()
		return NilValue
	case '[':
		iter.skipNested(arrayNesting)
		return ArrayValue
	case '{':
		iter.skipNested(objectNesting)
		return ObjectValue
	case 0:
		if iter.Error != nil {
			// input exhausted, or the reader failed
			if iter.Error == io.EOF {
				iter.reportError(op, "no value to skip", ErrUnexpectedEnd)
			}
			return InvalidValue
		}
	}
	iter.reportError(op, fmt.Sprintf("do not know how to skip: %q", c), ErrUnknownValueStart)
	return InvalidValue
}

// skipUntilBreak moves head to the next delimiter without consuming it.
// The end of the input counts as a delimiter.
func (iter *Iterator) skipUntilBreak() {
	for {
		for i := iter.head; i < iter.tail; i++ {
			if breaks[iter.buf[i]] {
				iter.head = i
				return
			}
		}
		iter.head = iter.tail
		if !iter.loadMore() {
			return
		}
	}
}

// skipString expects head right after the opening quote and moves it right
// after the closing quote, or to the end of the input if there is none.
// Escapes are not interpreted, only backslashes are counted.
func (iter *Iterator) skipString() {
	for {
		if end := iter.findStringEnd(); end >= 0 {
			iter.head = end
			return
		}
		escaped := iter.backslashesBefore(iter.tail)%2 == 1
		iter.head = iter.tail
		if !iter.loadMore() {
			return
		}
		if escaped {
			// the first new byte is the escaped one
			iter.head++
		}
	}
}

// findStringEnd returns the index right after the first unescaped quote in
// the buffered data, or -1.
func (iter *Iterator) findStringEnd() int {
	for i := iter.head; i < iter.tail; i++ {
		idx := bytes.IndexByte(iter.buf[i:iter.tail], '"')
		if idx < 0 {
			return -1
		}
		i += idx
		// \" and \\\" are escaped quotes, \\" is not
		if iter.backslashesBefore(i)%2 == 0 {
			return i + 1
		}
	}
	return -1
}

// backslashesBefore counts the run of backslashes ending right before i.
// It does not look behind head: bytes before it belong to a previous chunk
// whose escape state skipString already accounted for.
func (iter *Iterator) backslashesBefore(i int) int {
	n := 0
	for j := i - 1; j >= iter.head && iter.buf[j] == '\\'; j-- {
		n++
	}
	return n
}

// skipNested expects head right after the opening bracket and moves it right
// after the matching closing bracket, or to the end of the input.
func (iter *Iterator) skipNested(n nesting) {
	level := 1
	for {
		for i := iter.head; i < iter.tail; i++ {
			switch iter.buf[i] {
			case '"':
				// brackets inside strings do not count
				iter.head = i + 1
				iter.skipString()
				i = iter.head - 1 // it will be i++ soon
			case n.open:
				level++
			case n.close:
				level--
				if level == 0 {
					iter.head = i + 1
					return
				}
			}
		}
		iter.head = iter.tail
		if !iter.loadMore() {
			return
		}
	}
}
