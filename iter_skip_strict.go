package jsoniter

// SkipStrict skips the next value like Skip, but reads it with the validating
// readers: literals are compared in full, numbers must follow the JSON
// grammar, strings must be terminated and hold valid escapes, and arrays and
// objects need their separators and must not nest deeper than the configured
// MaxDepth. The first violation is stored in Error.
func (iter *Iterator) SkipStrict() {
	c := iter.nextToken()
	switch c {
	case '"':
		iter.readRawStringInner()
	case 'n':
		iter.ensureLiteral(nullLiteral)
	case 't':
		iter.ensureLiteral(trueLiteral)
	case 'f':
		iter.ensureLiteral(falseLiteral)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		iter.unreadByte()
		iter.readNumberAsBytes(nil)
	case '[':
		iter.unreadByte()
		iter.ReadArrayCB(func(iter *Iterator) bool {
			iter.SkipStrict()
			return iter.failure() == nil
		})
	case '{':
		iter.unreadByte()
		iter.ReadObjectRawCB(func(iter *Iterator, _ RawString) bool {
			iter.SkipStrict()
			return iter.failure() == nil
		})
	default:
		iter.skipValue("SkipStrict", c)
	}
}
