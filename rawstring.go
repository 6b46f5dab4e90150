package jsoniter

import (
	"strings"

	"go4.org/mem"
)

// RawString is a JSON string as found in the input: escapes are not decoded
// and the buffer ends with the closing quote.
type RawString struct {
	buf        []byte
	isRaw      bool
	hasEscapes bool
}

// IsNil reports whether no string was read, as for null or on failure.
func (r *RawString) IsNil() bool {
	return r.buf == nil
}

// Realize turns a direct view buffer into a copy.
func (r *RawString) Realize() {
	if r.isRaw {
		r.buf = append([]byte(nil), r.buf...)
		r.isRaw = false
	}
}

// String decodes escape sequences and returns the string.
func (r *RawString) String() string {
	if r.buf == nil {
		return ""
	}

	if !r.hasEscapes {
		return string(r.buf[:len(r.buf)-1])
	}

	iter := Iterator{
		buf:  r.buf,
		tail: len(r.buf),
	}
	res := iter.readStringInner()
	if iter.failure() != nil {
		// should never happen, the string was validated when read
		panic(iter.Error)
	}
	return res
}

// Bytes returns a buffer and true if this is a direct view into the iterator,
// or false if the buffer is a copy.
// Note that a direct view buffer is only valid until the next read
// from the iterator. Use Realize before reading further from the iterator
// to preserve the contents.
func (r *RawString) Bytes() ([]byte, bool) {
	raw := r.buf
	if len(raw) > 0 {
		raw = raw[:len(raw)-1]
	}
	return raw, r.isRaw
}

// matches reports whether the decoded string equals key.
func (r *RawString) matches(key string, caseSensitive bool) bool {
	if r.hasEscapes {
		if caseSensitive {
			return r.String() == key
		}
		return strings.EqualFold(r.String(), key)
	}
	raw, _ := r.Bytes()
	if caseSensitive {
		return mem.B(raw).EqualString(key)
	}
	return mem.EqualFold(mem.B(raw), mem.S(key))
}
