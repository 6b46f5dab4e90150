package jsoniter

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/modern-go/reflect2"
	"go4.org/mem"
)

// ErrNotFound is the error of a Lazy returned for a missing key or index.
var ErrNotFound = errors.New("value not found")

// Lazy is a JSON value known only by its type and its raw bytes. Nothing is
// decoded until one of the To methods or Get asks for it.
//
// A Lazy read from a reader backed iterator views the iterator buffer and
// shares the lifetime of its Span. Call Realize to keep it around.
type Lazy struct {
	valueType ValueType
	buf       []byte
	cfg       *frozenConfig
	err       error
}

// ReadLazy skips the next value and returns it as a Lazy.
func (iter *Iterator) ReadLazy() Lazy {
	valueType, span := iter.SkipCapturing()
	if valueType == InvalidValue {
		return Lazy{cfg: iter.cfg, err: iter.Error}
	}
	return Lazy{
		valueType: valueType,
		buf:       iter.buf[span.Start:span.End:span.End],
		cfg:       iter.cfg,
	}
}

// ValueType returns the type told by the first byte of the value.
func (l Lazy) ValueType() ValueType { return l.valueType }

// LastError returns why the value could not be read or found.
func (l Lazy) LastError() error { return l.err }

// Bytes returns the raw text of the value.
func (l Lazy) Bytes() []byte { return l.buf }

// Mem returns a read-only view of the raw text of the value.
func (l Lazy) Mem() mem.RO { return mem.B(l.buf) }

// Realize copies the raw text, detaching it from the iterator buffer.
func (l *Lazy) Realize() {
	l.buf = append([]byte(nil), l.buf...)
}

// IsNil reports whether the value is null.
func (l Lazy) IsNil() bool { return l.valueType == NilValue }

func (l Lazy) iter() *Iterator {
	cfg := l.cfg
	if cfg == nil {
		cfg = ConfigDefault.(*frozenConfig)
	}
	return ParseBytes(cfg, l.buf)
}

func (l Lazy) convertError(to string) error {
	if l.err != nil {
		return l.err
	}
	return fmt.Errorf("can not convert %v to %s", l.valueType, to)
}

// ToString decodes a string value. Other values are returned as raw text.
func (l Lazy) ToString() (string, error) {
	switch l.valueType {
	case InvalidValue:
		return "", l.convertError("string")
	case StringValue:
	default:
		return string(l.buf), nil
	}
	raw := l.Mem()
	if n := raw.Len(); n >= 2 && raw.At(n-1) == '"' && mem.IndexByte(raw, '\\') < 0 {
		return raw.SliceTo(n - 1).SliceFrom(1).StringCopy(), nil
	}
	iter := l.iter()
	str := iter.ReadString()
	return str, iter.failure()
}

// ToFloat64 reads a number, or a string holding one. true is 1, false and
// null are 0.
func (l Lazy) ToFloat64() (float64, error) {
	switch l.valueType {
	case NumberValue:
		iter := l.iter()
		val := iter.ReadFloat64()
		return val, iter.failure()
	case StringValue:
		str, err := l.ToString()
		if err != nil {
			return 0, err
		}
		return strconv.ParseFloat(str, 64)
	case BoolValue:
		val, err := l.ToBool()
		if val {
			return 1, err
		}
		return 0, err
	case NilValue:
		return 0, nil
	}
	return 0, l.convertError("float64")
}

// ToInt64 is ToFloat64 for integers, fractions are truncated.
func (l Lazy) ToInt64() (int64, error) {
	switch l.valueType {
	case NumberValue:
		iter := l.iter()
		val := iter.ReadInt64()
		return val, iter.failure()
	case StringValue:
		str, err := l.ToString()
		if err != nil {
			return 0, err
		}
		return strconv.ParseInt(str, 10, 64)
	case BoolValue, NilValue:
		val, err := l.ToFloat64()
		return int64(val), err
	}
	return 0, l.convertError("int64")
}

// ToBool reads a boolean. Numbers are true unless zero, strings, arrays and
// objects unless empty, null is false.
func (l Lazy) ToBool() (bool, error) {
	switch l.valueType {
	case BoolValue:
		iter := l.iter()
		val := iter.ReadBool()
		return val, iter.failure()
	case NilValue:
		return false, nil
	case NumberValue:
		val, err := l.ToFloat64()
		return val != 0, err
	case StringValue:
		str, err := l.ToString()
		return str != "", err
	case ArrayValue, ObjectValue:
		size, err := l.Size()
		return size > 0, err
	}
	return false, l.convertError("bool")
}

// Size returns the number of elements of an array or fields of an object,
// 0 for anything else.
func (l Lazy) Size() (int, error) {
	size := 0
	var err error
	switch l.valueType {
	case ArrayValue:
		err = l.ForEachElement(func(Lazy) bool {
			size++
			return true
		})
	case ObjectValue:
		err = l.ForEachField(func(string, Lazy) bool {
			size++
			return true
		})
	}
	return size, err
}

// ForEachElement calls cb for the elements of an array until it returns false.
func (l Lazy) ForEachElement(cb func(elem Lazy) bool) error {
	if l.valueType != ArrayValue {
		return l.convertError("array")
	}
	iter := l.iter()
	iter.ReadArrayCB(func(iter *Iterator) bool {
		elem := iter.ReadLazy()
		return elem.err == nil && cb(elem)
	})
	return iter.failure()
}

// ForEachField calls cb for the fields of an object until it returns false.
func (l Lazy) ForEachField(cb func(key string, value Lazy) bool) error {
	if l.valueType != ObjectValue {
		return l.convertError("object")
	}
	iter := l.iter()
	iter.ReadObjectCB(func(iter *Iterator, key string) bool {
		value := iter.ReadLazy()
		return value.err == nil && cb(key, value)
	})
	return iter.failure()
}

// Get walks path into the value: a string selects an object field, the
// first one when keys repeat, an int selects an array element. A missing
// step gives an invalid Lazy whose LastError wraps ErrNotFound.
func (l Lazy) Get(path ...interface{}) Lazy {
	if len(path) == 0 || l.err != nil {
		return l
	}
	found := Lazy{cfg: l.cfg}
	var err error
	switch key := path[0].(type) {
	case string:
		if l.valueType != ObjectValue {
			return Lazy{cfg: l.cfg, err: l.convertError("object")}
		}
		iter := l.iter()
		iter.ReadObjectRawCB(func(iter *Iterator, rs RawString) bool {
			if rs.matches(key, iter.cfg.caseSensitive) {
				found = iter.ReadLazy()
				return false
			}
			iter.Skip()
			return iter.failure() == nil
		})
		err = iter.failure()
	case int:
		if l.valueType != ArrayValue {
			return Lazy{cfg: l.cfg, err: l.convertError("array")}
		}
		i := 0
		err = l.ForEachElement(func(elem Lazy) bool {
			if i == key {
				found = elem
				return false
			}
			i++
			return true
		})
	default:
		return Lazy{cfg: l.cfg, err: fmt.Errorf("unsupported path element %v", path[0])}
	}
	if err != nil {
		return Lazy{cfg: l.cfg, err: err}
	}
	if found.valueType == InvalidValue {
		if found.err == nil {
			found.err = fmt.Errorf("%w: %v", ErrNotFound, path[0])
		}
		return found
	}
	return found.Get(path[1:]...)
}

// ToVal stores the value into ptr, which may be a *string, *float64,
// *int64, *int, *bool, *Lazy, *[]Lazy or *map[string]Lazy.
func (l Lazy) ToVal(ptr interface{}) error {
	if ptr == nil {
		return errors.New("ToVal: expects a pointer, got nil")
	}
	typ := reflect2.TypeOf(ptr)
	if typ.Kind() != reflect.Ptr {
		return fmt.Errorf("ToVal: expects a pointer, got %s", typ.String())
	}
	if reflect2.IsNil(ptr) {
		return fmt.Errorf("ToVal: nil %s", typ.String())
	}
	if l.valueType == InvalidValue {
		return l.convertError(typ.String())
	}

	var err error
	switch p := ptr.(type) {
	case *string:
		*p, err = l.ToString()
	case *float64:
		*p, err = l.ToFloat64()
	case *int64:
		*p, err = l.ToInt64()
	case *int:
		var val int64
		val, err = l.ToInt64()
		*p = int(val)
	case *bool:
		*p, err = l.ToBool()
	case *Lazy:
		*p = l
	case *[]Lazy:
		elems := (*p)[:0]
		err = l.ForEachElement(func(elem Lazy) bool {
			elems = append(elems, elem)
			return true
		})
		*p = elems
	case *map[string]Lazy:
		if *p == nil {
			*p = map[string]Lazy{}
		}
		err = l.ForEachField(func(key string, value Lazy) bool {
			(*p)[key] = value
			return true
		})
	default:
		return fmt.Errorf("ToVal: unsupported type %s", typ.String())
	}
	return err
}
