package jsoniter

import (
	"bytes"
	"fmt"
	"io"
)

// ValueType the type for JSON element
type ValueType int

const (
	// InvalidValue invalid JSON element
	InvalidValue ValueType = iota
	// StringValue JSON element "string"
	StringValue
	// NumberValue JSON element 100 or 0.10
	NumberValue
	// NilValue JSON element null
	NilValue
	// BoolValue JSON element true or false
	BoolValue
	// ArrayValue JSON element []
	ArrayValue
	// ObjectValue JSON element {}
	ObjectValue
)

var valueTypeNames = [...]string{
	InvalidValue: "invalid",
	StringValue:  "string",
	NumberValue:  "number",
	NilValue:     "null",
	BoolValue:    "boolean",
	ArrayValue:   "array",
	ObjectValue:  "object",
}

func (vt ValueType) String() string {
	if vt < 0 || int(vt) >= len(valueTypeNames) {
		return valueTypeNames[InvalidValue]
	}
	return valueTypeNames[vt]
}

var valueTypes [256]ValueType

func init() {
	valueTypes['"'] = StringValue
	valueTypes['-'] = NumberValue
	for c := '0'; c <= '9'; c++ {
		valueTypes[c] = NumberValue
	}
	valueTypes['t'] = BoolValue
	valueTypes['f'] = BoolValue
	valueTypes['n'] = NilValue
	valueTypes['['] = ArrayValue
	valueTypes['{'] = ObjectValue
}

// Iterator is a io.Reader like object, with JSON specific read functions.
// Error is not returned as return value, but stored as Error member on this iterator instance.
// io.EOF in Error means the input is exhausted, it is not a failure by itself.
type Iterator struct {
	cfg    *frozenConfig
	reader io.Reader
	buf    []byte
	head   int
	tail   int
	// bytes of the stream dropped from the front of buf
	offset int64
	depth  int
	// while positive, refills never reuse the buffer
	retained int
	// buf aliases caller memory and must not be written to
	external bool
	Error    error
}

// NewIterator creates an empty Iterator instance
func NewIterator(cfg API) *Iterator {
	return &Iterator{
		cfg: cfg.(*frozenConfig),
	}
}

// Parse creates an Iterator instance from io.Reader
func Parse(cfg API, reader io.Reader, bufSize int) *Iterator {
	frozen := cfg.(*frozenConfig)
	if bufSize <= 0 {
		bufSize = frozen.bufferSize
	}
	return &Iterator{
		cfg:    frozen,
		reader: reader,
		buf:    make([]byte, bufSize),
	}
}

// ParseBytes creates an Iterator instance from byte array
func ParseBytes(cfg API, input []byte) *Iterator {
	return &Iterator{
		cfg:      cfg.(*frozenConfig),
		buf:      input,
		tail:     len(input),
		external: true,
	}
}

// ParseString creates an Iterator instance from string
func ParseString(cfg API, input string) *Iterator {
	return ParseBytes(cfg, []byte(input))
}

// Reset reuse iterator instance by specifying another reader
func (iter *Iterator) Reset(reader io.Reader) *Iterator {
	if iter.external || len(iter.buf) == 0 {
		iter.buf = make([]byte, iter.cfg.bufferSize)
	}
	iter.reader = reader
	iter.external = false
	iter.rewind(0)
	return iter
}

// ResetBytes reuse iterator instance by specifying another byte array as input
func (iter *Iterator) ResetBytes(input []byte) *Iterator {
	iter.reader = nil
	iter.buf = input
	iter.external = true
	iter.rewind(len(input))
	return iter
}

func (iter *Iterator) rewind(tail int) {
	iter.head = 0
	iter.tail = tail
	iter.offset = 0
	iter.depth = 0
	iter.retained = 0
	iter.Error = nil
}

// WhatIsNext gets ValueType of relatively next json element
func (iter *Iterator) WhatIsNext() ValueType {
	valueType := valueTypes[iter.nextToken()]
	iter.unreadByte()
	return valueType
}

// InputOffset returns the offset of the next unread byte in the input stream.
func (iter *Iterator) InputOffset() int64 {
	return iter.offset + int64(iter.head)
}

// Buffered returns a reader of the data remaining in the Iterator's buffer.
// The reader is a copy and stays valid after further reads.
func (iter *Iterator) Buffered() io.Reader {
	remaining := make([]byte, iter.tail-iter.head)
	copy(remaining, iter.buf[iter.head:iter.tail])
	return bytes.NewReader(remaining)
}

// CurrentBuffer gets current buffer as string for debugging purpose
func (iter *Iterator) CurrentBuffer() string {
	peekStart := iter.head - 10
	if peekStart < 0 {
		peekStart = 0
	}
	return fmt.Sprintf("parsing #%v byte, around ...|%s|..., whole buffer ...|%s|...", iter.head,
		string(iter.buf[peekStart:iter.head]), string(iter.buf[0:iter.tail]))
}

// Retain pins the buffer. Until the matching Release, refills only append to
// the buffer, so every Span captured in between keeps pointing at its bytes.
// Calls nest.
func (iter *Iterator) Retain() {
	iter.retained++
}

// Release undoes one Retain. Spans captured while retained become invalid
// at the next refill once the last Release is done.
func (iter *Iterator) Release() {
	if iter.retained > 0 {
		iter.retained--
	}
}

func (iter *Iterator) isNextTokenBuffered() bool {
	for i := iter.head; i < iter.tail; i++ {
		switch iter.buf[i] {
		case ' ', '\n', '\t', '\r':
			continue
		}
		return true
	}
	return false
}

// nextToken consumes whitespace and returns the first significant byte, or 0
// once the input is exhausted.
func (iter *Iterator) nextToken() byte {
	for {
		for i := iter.head; i < iter.tail; i++ {
			c := iter.buf[i]
			switch c {
			case ' ', '\n', '\t', '\r':
				continue
			}
			iter.head = i + 1
			return c
		}
		iter.head = iter.tail
		if !iter.loadMore() {
			return 0
		}
	}
}

func (iter *Iterator) readByte() (ret byte) {
	if iter.head == iter.tail {
		if !iter.loadMore() {
			return 0
		}
	}
	ret = iter.buf[iter.head]
	iter.head++
	return ret
}

func (iter *Iterator) unreadByte() {
	if iter.Error != nil {
		return
	}
	iter.head--
}

// loadMore refills the buffer from the reader. It returns true once at least
// one new byte is available at head. Unread bytes are kept; already read ones
// are dropped unless the iterator is retained. When it returns false, Error
// holds io.EOF or the reader failure and every later call returns false too.
func (iter *Iterator) loadMore() bool {
	if iter.reader == nil {
		if iter.Error == nil {
			iter.head = iter.tail
			iter.Error = io.EOF
		}
		return false
	}
	if iter.Error != nil {
		return false
	}
	if iter.retained == 0 && iter.head > 0 {
		n := copy(iter.buf, iter.buf[iter.head:iter.tail])
		iter.offset += int64(iter.head)
		iter.head = 0
		iter.tail = n
	}
	if iter.tail == len(iter.buf) {
		iter.grow()
	}
	for {
		n, err := iter.reader.Read(iter.buf[iter.tail:])
		if n > 0 {
			iter.tail += n
			return true
		}
		if err != nil {
			iter.Error = err
			return false
		}
	}
}

func (iter *Iterator) grow() {
	size := 2 * len(iter.buf)
	if size < 64 {
		size = 64
	}
	buf := make([]byte, size)
	copy(buf, iter.buf[:iter.tail])
	iter.buf = buf
}

// ReportError record a error in iterator instance with current position.
func (iter *Iterator) ReportError(operation string, msg string) {
	iter.reportError(operation, msg, ErrSyntax)
}

func (iter *Iterator) reportError(operation, msg string, cause error) {
	if iter.Error != nil && iter.Error != io.EOF {
		return
	}
	peekStart := iter.head - 10
	if peekStart < 0 {
		peekStart = 0
	}
	peekEnd := iter.head + 10
	if peekEnd > iter.tail {
		peekEnd = iter.tail
	}
	perr := &ParseError{
		Op:      operation,
		Msg:     msg,
		Offset:  iter.InputOffset(),
		Context: string(iter.buf[peekStart:peekEnd]),
		Err:     cause,
	}
	if cause != ErrUnexpectedEnd && iter.head > 0 {
		perr.Byte = iter.buf[iter.head-1]
		perr.Offset--
	}
	iter.Error = perr
}

// failure returns Error unless it only reports the end of input.
func (iter *Iterator) failure() error {
	if iter.Error == io.EOF {
		return nil
	}
	return iter.Error
}

func (iter *Iterator) incrementDepth() (success bool) {
	iter.depth++
	if iter.depth <= iter.cfg.maxDepth {
		return true
	}
	iter.ReportError("incrementDepth", "exceeded max depth")
	return false
}

func (iter *Iterator) decrementDepth() (success bool) {
	iter.depth--
	if iter.depth >= 0 {
		return true
	}
	iter.ReportError("decrementDepth", "unexpected negative nesting")
	return false
}
