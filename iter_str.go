package jsoniter

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf16"
)

// ReadString read string from iterator
func (iter *Iterator) ReadString() string {
	c := iter.nextToken()
	switch c {
	case '"':
	case 'n':
		iter.ensureLiteral(nullLiteral)
		return ""
	case 0:
		iter.reportError("ReadString", "expects \" or n, but input ended", ErrUnexpectedEnd)
		return ""
	default:
		iter.ReportError("ReadString", `expects " or n, but found `+string([]byte{c}))
		return ""
	}

	return iter.readStringInner()
}

func (iter *Iterator) readStringInner() string {
	sb := strings.Builder{}

outerLoop:
	for iter.failure() == nil {
		for i := iter.head; i < iter.tail; i++ {
			c := iter.buf[i]
			switch {
			case c == '"':
				if sb.Len() == 0 {
					// super fast path
					res := iter.buf[iter.head:i]
					iter.head = i + 1
					return string(res)
				}
				sb.Write(iter.buf[iter.head:i])
				iter.head = i + 1
				return sb.String()
			case c == '\\':
				sb.Write(iter.buf[iter.head:i])
				iter.head = i + 1
				iter.readEscapedChar(&sb)
				continue outerLoop
			case c < ' ':
				iter.head = i + 1
				iter.ReportError("ReadString",
					"invalid control character found: "+strconv.Itoa(int(c)))
				return ""
			}
		}

		sb.Write(iter.buf[iter.head:iter.tail])
		iter.head = iter.tail
		if !iter.loadMore() {
			break
		}
	}

	iter.reportError("ReadString", "unexpected end of input", ErrUnexpectedEnd)
	return ""
}

// ReadRawString reads string from iterator without decoding escape sequences.
// Note that the returned RawString is only valid until the next read from the iterator.
func (iter *Iterator) ReadRawString() RawString {
	c := iter.nextToken()
	switch c {
	case '"':
	case 'n':
		iter.ensureLiteral(nullLiteral)
		return RawString{}
	case 0:
		iter.reportError("ReadRawString", "expects \" or n, but input ended", ErrUnexpectedEnd)
		return RawString{}
	default:
		iter.ReportError("ReadRawString", `expects " or n, but found `+string([]byte{c}))
		return RawString{}
	}

	return iter.readRawStringInner()
}

// readRawStringInner validates the string at head and returns it with the
// closing quote, still escaped. The result views the buffer when the string
// did not cross a refill.
func (iter *Iterator) readRawStringInner() RawString {
	var (
		copied        bytes.Buffer
		readingEscape bool
		hasEscapes    bool
	)

	copyStart := iter.head

outerLoop:
	for iter.failure() == nil {
		for i := iter.head; i < iter.tail; i++ {
			c := iter.buf[i]
			if c < ' ' {
				iter.head = i + 1
				iter.ReportError("ReadRawString",
					"invalid control character found: "+strconv.Itoa(int(c)))
				return RawString{}
			}
			if !readingEscape {
				switch c {
				case '"':
					// careful, the closing quote is part of the raw buffer
					iter.head = i + 1
					if copied.Len() == 0 {
						return RawString{buf: iter.buf[copyStart:iter.head], isRaw: true, hasEscapes: hasEscapes}
					}
					copied.Write(iter.buf[copyStart:iter.head])
					return RawString{buf: copied.Bytes(), hasEscapes: hasEscapes}
				case '\\':
					readingEscape = true
					hasEscapes = true
				}
				continue
			}

			readingEscape = false
			switch c {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				iter.head = i + 1
				if i+4 >= iter.tail {
					// the hex digits cross the end of the buffer
					copied.Write(iter.buf[copyStart:iter.head])
					u4 := iter.readU4Buf()
					copied.Write(u4[:])
					copyStart = iter.head
					continue outerLoop
				}
				if u4bufFromBytes(iter.buf[i+1:i+5]).Parse() < 0 {
					iter.ReportError("ReadRawString", "invalid unicode escape sequence")
					return RawString{}
				}
				iter.head += 4
				continue outerLoop
			default:
				iter.head = i + 1
				iter.ReportError("ReadRawString", `invalid escape char after \`)
				return RawString{}
			}
		}

		copied.Write(iter.buf[copyStart:iter.tail])
		iter.head = iter.tail
		if !iter.loadMore() {
			break
		}
		copyStart = iter.head
	}

	iter.reportError("ReadRawString", "unexpected end of input", ErrUnexpectedEnd)
	return RawString{}
}

func (iter *Iterator) readEscapedChar(sb *strings.Builder) {
	c := iter.readByte()

start:
	switch c {
	case 'u':
		r := iter.readU4()
		if !utf16.IsSurrogate(r) {
			if iter.failure() == nil {
				sb.WriteRune(r)
			}
			return
		}
		c = iter.readByte()
		if iter.failure() != nil {
			return
		}
		if c != '\\' {
			iter.unreadByte()
			sb.WriteRune(r)
			return
		}
		c = iter.readByte()
		if iter.failure() != nil {
			return
		}
		if c != 'u' {
			sb.WriteRune(r)
			goto start
		}
		r2 := iter.readU4()
		if iter.failure() != nil {
			return
		}
		combined := utf16.DecodeRune(r, r2)
		if combined == '\uFFFD' {
			sb.WriteRune(r)
			sb.WriteRune(r2)
		} else {
			sb.WriteRune(combined)
		}
	case '"':
		sb.WriteByte('"')
	case '\\':
		sb.WriteByte('\\')
	case '/':
		sb.WriteByte('/')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	default:
		iter.ReportError("readEscapedChar", `invalid escape char after \`)
	}
}

func fromHexChar(c byte) (byte, bool) {
	c -= '0'
	if c <= 9 {
		return c, true
	}
	c -= 'A' - '0'
	if c <= 5 {
		return c + 10, true
	}
	c -= 'a' - 'A'
	if c <= 5 {
		return c + 10, true
	}

	return 0, false
}

type u4buf [4]byte

func u4bufFromBytes(data []byte) u4buf {
	var u4 u4buf
	copy(u4[:], data[0:4])
	return u4
}

// Parse returns the code unit of the four hex digits, or -1.
func (buf u4buf) Parse() rune {
	var ret rune
	for _, c := range buf {
		v, ok := fromHexChar(c)
		if !ok {
			return -1
		}
		ret = ret<<4 | rune(v)
	}
	return ret
}

func (iter *Iterator) readU4() rune {
	var u4 u4buf
	if end := iter.head + 4; end <= iter.tail {
		u4 = u4bufFromBytes(iter.buf[iter.head:end])
		iter.head = end
	} else {
		u4 = iter.readU4Buf()
		if iter.failure() != nil {
			return 0
		}
	}

	ret := u4.Parse()
	if ret < 0 {
		iter.ReportError("readU4", "invalid hex char")
		return 0
	}
	return ret
}

func (iter *Iterator) readU4Buf() (buf u4buf) {
	for i := range buf {
		c := iter.readByte()
		if _, ok := fromHexChar(c); !ok {
			iter.ReportError("readU4", "invalid hex char")
			return
		}
		buf[i] = c
	}
	return buf
}
