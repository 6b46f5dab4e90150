package jsoniter

import (
	"encoding/json"
	"io"
	"strconv"
)

type numberState int8

// number grammar: -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
const (
	numberStop     numberState = -1
	numberStart    numberState = iota - 1 // before anything
	numberMinus                           // after -
	numberZero                            // leading 0
	numberInt                             // integer digits
	numberDot                             // after .
	numberFraction                        // fraction digits
	numberExp                             // after e or E
	numberExpSign                         // after exponent sign
	numberExpDigits                       // exponent digits
)

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// next returns the state after c, or numberStop if c does not continue the number.
func (s numberState) next(c byte) numberState {
	switch s {
	case numberStart:
		if c == '-' {
			return numberMinus
		}
		fallthrough
	case numberMinus:
		if c == '0' {
			return numberZero
		}
		if isDigit(c) {
			return numberInt
		}
	case numberInt:
		if isDigit(c) {
			return numberInt
		}
		fallthrough
	case numberZero:
		switch c {
		case '.':
			return numberDot
		case 'e', 'E':
			return numberExp
		}
	case numberDot, numberFraction:
		if isDigit(c) {
			return numberFraction
		}
		if s == numberFraction && (c == 'e' || c == 'E') {
			return numberExp
		}
	case numberExp:
		if c == '+' || c == '-' {
			return numberExpSign
		}
		fallthrough
	case numberExpSign, numberExpDigits:
		if isDigit(c) {
			return numberExpDigits
		}
	}
	return numberStop
}

func (s numberState) accepting() bool {
	switch s {
	case numberZero, numberInt, numberFraction, numberExpDigits:
		return true
	}
	return false
}

// readNumberAsBytes reads the number at head, appending its text to buf.
// The number must be followed by a delimiter or the end of input.
func (iter *Iterator) readNumberAsBytes(buf []byte) []byte {
	state := numberStart
	for {
		i := iter.head
		for ; i < iter.tail; i++ {
			next := state.next(iter.buf[i])
			if next == numberStop {
				break
			}
			state = next
		}
		buf = append(buf, iter.buf[iter.head:i]...)
		iter.head = i
		if i < iter.tail {
			if state.accepting() && !breaks[iter.buf[i]] {
				iter.head++
				iter.ReportError("readNumberAsBytes", "unexpected character after number")
				return nil
			}
			break
		}
		if !iter.loadMore() {
			break
		}
	}
	if iter.Error != nil && iter.Error != io.EOF {
		return nil
	}
	if !state.accepting() {
		iter.ReportError("readNumberAsBytes", "invalid number")
		return nil
	}
	return buf
}

func (iter *Iterator) readNumberAsString() (ret string) {
	// this will save one alloc in most cases
	buf := [24]byte{}
	res := iter.readNumberAsBytes(buf[:0])

	return string(res)
}

// ReadNumber read json.Number
func (iter *Iterator) ReadNumber() (ret json.Number) {
	iter.nextToken()
	iter.unreadByte()
	return json.Number(iter.readNumberAsString())
}

// ReadNumberAsSlice reads a json number into the provided byte slice (can be nil)
func (iter *Iterator) ReadNumberAsSlice(buf []byte) []byte {
	iter.nextToken()
	iter.unreadByte()
	return iter.readNumberAsBytes(buf)
}

// ReadFloat64 read float64
func (iter *Iterator) ReadFloat64() (ret float64) {
	buf := [24]byte{}
	str := iter.ReadNumberAsSlice(buf[:0])
	if iter.Error != nil && iter.Error != io.EOF {
		return
	}
	val, err := strconv.ParseFloat(string(str), 64)
	if err != nil {
		iter.Error = err
		return
	}
	return val
}

// ReadInt64 read int64. Numbers with a fraction or an exponent are
// truncated towards zero.
func (iter *Iterator) ReadInt64() (ret int64) {
	buf := [24]byte{}
	str := iter.ReadNumberAsSlice(buf[:0])
	if iter.Error != nil && iter.Error != io.EOF {
		return
	}
	if val, err := strconv.ParseInt(string(str), 10, 64); err == nil {
		return val
	}
	val, err := strconv.ParseFloat(string(str), 64)
	if err != nil {
		iter.Error = err
		return
	}
	return int64(val)
}
