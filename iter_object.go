package jsoniter

// ReadObject reads one field from object.
// If object ended, returns empty string and false.
// Otherwise, returns the field name.
func (iter *Iterator) ReadObject() (string, bool) {
	rs := iter.ReadObjectRaw()
	if rs.IsNil() {
		return "", false
	}
	return rs.String(), true
}

// ReadObjectRaw reads one field from object and returns
// the field name as RawString.
func (iter *Iterator) ReadObjectRaw() RawString {
	c := iter.nextToken()
	switch c {
	case 'n':
		iter.ensureLiteral(nullLiteral)
		return RawString{} // null
	case '{':
		c = iter.nextToken()
		if c == '}' {
			return RawString{} // end of object
		}
		if c != '"' {
			iter.ReportError("ReadObject", `expect " after {, but found `+string([]byte{c}))
			return RawString{}
		}
		return iter.readFieldName(iter.readRawStringInner())
	case ',':
		return iter.readFieldName(iter.ReadRawString())
	case '}':
		return RawString{} // end of object
	case 0:
		iter.reportError("ReadObject", "expect { or , or } or n, but input ended", ErrUnexpectedEnd)
		return RawString{}
	default:
		iter.ReportError("ReadObject", `expect { or , or } or n, but found `+string([]byte{c}))
		return RawString{}
	}
}

// readFieldName consumes the colon after a field name. The name is copied
// when reaching the colon could refill the buffer under it.
func (iter *Iterator) readFieldName(name RawString) RawString {
	if name.IsNil() {
		return name
	}
	if !iter.isNextTokenBuffered() {
		name.Realize()
	}
	if c := iter.nextToken(); c != ':' {
		iter.ReportError("ReadObject", "expect : after object field, but found "+string([]byte{c}))
		return RawString{}
	}
	return name
}

// ReadObjectCB read map with callback, the key can be any string
func (iter *Iterator) ReadObjectCB(callback func(*Iterator, string) bool) bool {
	return iter.ReadObjectRawCB(func(i *Iterator, rs RawString) bool {
		return callback(i, rs.String())
	})
}

// ReadObjectRawCB read map with callback, the key is passed still escaped.
// The RawString is only valid during the callback.
func (iter *Iterator) ReadObjectRawCB(callback func(*Iterator, RawString) bool) bool {
	c := iter.nextToken()
	if c == 'n' {
		iter.ensureLiteral(nullLiteral)
		return true // null
	}
	if c != '{' {
		iter.ReportError("ReadObjectCB", `expect { or n, but found `+string([]byte{c}))
		return false
	}
	if !iter.incrementDepth() {
		return false
	}

	c = iter.nextToken()
	if c == '}' {
		return iter.decrementDepth()
	}
	if c != '"' {
		iter.ReportError("ReadObjectCB", `expect " after {, but found `+string([]byte{c}))
		iter.decrementDepth()
		return false
	}
	rs := iter.readRawStringInner()
	for {
		if !iter.isNextTokenBuffered() {
			rs.Realize()
		}
		if c = iter.nextToken(); c != ':' {
			iter.ReportError("ReadObjectCB", "expect : after object field, but found "+string([]byte{c}))
			iter.decrementDepth()
			return false
		}
		if !callback(iter, rs) {
			iter.decrementDepth()
			return false
		}
		if c = iter.nextToken(); c != ',' {
			break
		}
		rs = iter.ReadRawString()
	}
	if c != '}' {
		iter.ReportError("ReadObjectCB", `object not ended with }`)
		iter.decrementDepth()
		return false
	}
	return iter.decrementDepth()
}
