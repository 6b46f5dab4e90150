package jsoniter

type jsonLiteral byte

const (
	nullLiteral jsonLiteral = iota
	trueLiteral
	falseLiteral
)

var literalTable = [...]string{
	nullLiteral:  "null",
	trueLiteral:  "true",
	falseLiteral: "false",
}

func (l jsonLiteral) String() string {
	return literalTable[l%3]
}

// ReadNil reads a json object as nil and
// returns whether it's a nil or not
func (iter *Iterator) ReadNil() (ret bool) {
	c := iter.nextToken()
	if c == 'n' {
		iter.ensureLiteral(nullLiteral)
		return iter.failure() == nil
	}
	iter.unreadByte()
	return false
}

// ReadBool reads a json object as BoolValue
func (iter *Iterator) ReadBool() (ret bool) {
	switch c := iter.nextToken(); c {
	case 't':
		iter.ensureLiteral(trueLiteral)
		return iter.failure() == nil
	case 'f':
		iter.ensureLiteral(falseLiteral)
		return false
	case 0:
		iter.reportError("ReadBool", "expect t or f, but input ended", ErrUnexpectedEnd)
	default:
		iter.ReportError("ReadBool", "expect t or f, but found "+string([]byte{c}))
	}
	return
}

// ensureLiteral expects head right after the first byte of the literal and
// checks the rest of it, which must be followed by a delimiter or the end of input.
func (iter *Iterator) ensureLiteral(lit jsonLiteral) {
	rest := lit.String()[1:]

	// quick check if we have enough data buffered
	if end := iter.head + len(rest); end <= iter.tail {
		if string(iter.buf[iter.head:end]) != rest {
			iter.ReportError("ensureLiteral", "expected "+lit.String())
			return
		}
		iter.head = end
	} else {
		for i := 0; i < len(rest); i++ {
			if iter.readByte() != rest[i] {
				iter.ReportError("ensureLiteral", "expected "+lit.String())
				return
			}
		}
	}

	if iter.head == iter.tail && !iter.loadMore() {
		return
	}
	if iter.head < iter.tail && !breaks[iter.buf[iter.head]] {
		iter.head++
		iter.ReportError("ensureLiteral", "unexpected character after "+lit.String())
	}
}
