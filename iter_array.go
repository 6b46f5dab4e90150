package jsoniter

// ReadArray read array element, tells if the array has more element to read.
func (iter *Iterator) ReadArray() (ret bool) {
	c := iter.nextToken()
	switch c {
	case 'n':
		iter.ensureLiteral(nullLiteral)
		return false // null
	case '[':
		c = iter.nextToken()
		if c != ']' {
			iter.unreadByte()
			return true
		}
		return false
	case ']':
		return false
	case ',':
		return true
	case 0:
		iter.reportError("ReadArray", "expect [ or , or ] or n, but input ended", ErrUnexpectedEnd)
		return
	default:
		iter.ReportError("ReadArray", "expect [ or , or ] or n, but found "+string([]byte{c}))
		return
	}
}

// ReadArrayCB read array with callback
func (iter *Iterator) ReadArrayCB(callback func(*Iterator) bool) {
	c := iter.nextToken()
	if c == 'n' {
		iter.ensureLiteral(nullLiteral)
		return
	}
	if c != '[' {
		iter.ReportError("ReadArrayCB", "expect [ or n, but found "+string([]byte{c}))
		return
	}
	if !iter.incrementDepth() {
		return
	}
	defer iter.decrementDepth()

	c = iter.nextToken()
	if c == ']' {
		return
	}
	iter.unreadByte()
	if !callback(iter) {
		return
	}
	c = iter.nextToken()
	for c == ',' {
		if !callback(iter) {
			return
		}
		c = iter.nextToken()
	}
	if c != ']' {
		iter.ReportError("ReadArrayCB", "expect ] in the end, but found "+string([]byte{c}))
	}
}
