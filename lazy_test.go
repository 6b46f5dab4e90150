package jsoniter

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

const lazyDoc = `{
	"name": "jsoniter",
	"escaped": "a\"b\\",
	"version": 1.5,
	"count": 42,
	"stable": true,
	"parent": null,
	"tags": ["json", "lazy", {"nested": [10, 20]}],
	"Mixed": {"Case": "yes"},
	"empty": []
}`

func TestReadLazy(t *testing.T) {
	iter := ParseString(ConfigDefault, " [1, \"two\"] ")
	value := iter.ReadLazy()
	require.NoError(t, value.LastError())
	require.Equal(t, ArrayValue, value.ValueType())
	require.Equal(t, `[1, "two"]`, string(value.Bytes()))
	require.True(t, value.Mem().EqualString(`[1, "two"]`))

	iter = ParseString(ConfigDefault, `?`)
	value = iter.ReadLazy()
	require.Equal(t, InvalidValue, value.ValueType())
	require.True(t, errors.Is(value.LastError(), ErrUnknownValueStart))
}

func TestLazyGet(t *testing.T) {
	doc := []byte(lazyDoc)

	name, err := ConfigDefault.Get(doc, "name").ToString()
	require.NoError(t, err)
	require.Equal(t, "jsoniter", name)

	escaped, err := ConfigDefault.Get(doc, "escaped").ToString()
	require.NoError(t, err)
	require.Equal(t, `a"b\`, escaped)

	nested, err := ConfigDefault.Get(doc, "tags", 2, "nested", 1).ToInt64()
	require.NoError(t, err)
	require.EqualValues(t, 20, nested)

	require.True(t, ConfigDefault.Get(doc, "parent").IsNil())
	require.Equal(t, `["json", "lazy", {"nested": [10, 20]}]`, string(ConfigDefault.Get(doc, "tags").Bytes()))

	missing := ConfigDefault.Get(doc, "tags", 7)
	require.Equal(t, InvalidValue, missing.ValueType())
	require.True(t, errors.Is(missing.LastError(), ErrNotFound))

	missing = ConfigDefault.Get(doc, "nope", "deeper")
	require.True(t, errors.Is(missing.LastError(), ErrNotFound))

	require.Error(t, ConfigDefault.Get(doc, "name", 0).LastError())
	require.Error(t, ConfigDefault.Get(doc, 1.5).LastError())
}

func TestLazyGetCaseSensitivity(t *testing.T) {
	doc := []byte(lazyDoc)

	value, err := ConfigDefault.Get(doc, "mixed", "case").ToString()
	require.NoError(t, err)
	require.Equal(t, "yes", value)

	require.True(t, errors.Is(ConfigCaseSensitive.Get(doc, "mixed").LastError(), ErrNotFound))
	value, err = ConfigCaseSensitive.Get(doc, "Mixed", "Case").ToString()
	require.NoError(t, err)
	require.Equal(t, "yes", value)
}

func TestLazyConversions(t *testing.T) {
	doc := ConfigDefault.Get([]byte(lazyDoc))
	require.Equal(t, ObjectValue, doc.ValueType())

	version, err := doc.Get("version").ToFloat64()
	require.NoError(t, err)
	require.Equal(t, 1.5, version)

	count, err := doc.Get("count").ToInt64()
	require.NoError(t, err)
	require.EqualValues(t, 42, count)

	stable, err := doc.Get("stable").ToBool()
	require.NoError(t, err)
	require.True(t, stable)

	asFloat, err := doc.Get("stable").ToFloat64()
	require.NoError(t, err)
	require.Equal(t, 1.0, asFloat)

	nonEmpty, err := doc.Get("tags").ToBool()
	require.NoError(t, err)
	require.True(t, nonEmpty)

	nonEmpty, err = doc.Get("empty").ToBool()
	require.NoError(t, err)
	require.False(t, nonEmpty)

	raw, err := doc.Get("count").ToString()
	require.NoError(t, err)
	require.Equal(t, "42", raw)

	_, err = doc.Get("tags").ToFloat64()
	require.Error(t, err)

	size, err := doc.Size()
	require.NoError(t, err)
	require.Equal(t, 9, size)
}

func TestLazyFromNumericString(t *testing.T) {
	value := ParseString(ConfigDefault, `"12"`).ReadLazy()
	n, err := value.ToInt64()
	require.NoError(t, err)
	require.EqualValues(t, 12, n)
}

func TestLazyIteration(t *testing.T) {
	tags := ConfigDefault.Get([]byte(lazyDoc), "tags")

	var types []ValueType
	require.NoError(t, tags.ForEachElement(func(elem Lazy) bool {
		types = append(types, elem.ValueType())
		return true
	}))
	require.Equal(t, []ValueType{StringValue, StringValue, ObjectValue}, types)

	var keys []string
	require.NoError(t, ConfigDefault.Get([]byte(lazyDoc)).ForEachField(func(key string, _ Lazy) bool {
		keys = append(keys, key)
		return len(keys) < 3
	}))
	require.Equal(t, []string{"name", "escaped", "version"}, keys)

	require.Error(t, tags.ForEachField(func(string, Lazy) bool { return true }))
}

func TestLazyTruncatedValueFailsOnUse(t *testing.T) {
	// skipping is permissive, reading the value is not
	value := ParseString(ConfigDefault, `[1, 2`).ReadLazy()
	require.NoError(t, value.LastError())
	require.Equal(t, ArrayValue, value.ValueType())
	_, err := value.Size()
	require.Error(t, err)

	_, err = ParseString(ConfigDefault, `"abc`).ReadLazy().ToString()
	require.Error(t, err)
}

func TestLazyRealize(t *testing.T) {
	input := `{"a": [1, 2, 3]} "next"`
	iter := Parse(ConfigDefault, iotest.OneByteReader(strings.NewReader(input)), 4)
	value := iter.ReadLazy()
	value.Realize()

	// reading on compacts the iterator buffer
	next, err := iter.ReadLazy().ToString()
	require.NoError(t, err)
	require.Equal(t, "next", next)

	second, err := value.Get("a", 1).ToInt64()
	require.NoError(t, err)
	require.EqualValues(t, 2, second)
}

func TestLazyToVal(t *testing.T) {
	doc := ConfigDefault.Get([]byte(lazyDoc))

	var name string
	require.NoError(t, doc.Get("name").ToVal(&name))
	require.Equal(t, "jsoniter", name)

	var count int
	require.NoError(t, doc.Get("count").ToVal(&count))
	require.Equal(t, 42, count)

	var tags []Lazy
	require.NoError(t, doc.Get("tags").ToVal(&tags))
	require.Len(t, tags, 3)

	var fields map[string]Lazy
	require.NoError(t, doc.Get("Mixed").ToVal(&fields))
	require.Contains(t, fields, "Case")

	var nilPtr *string
	require.Error(t, doc.Get("name").ToVal(nilPtr))
	require.Error(t, doc.Get("name").ToVal(name))
	require.Error(t, doc.Get("name").ToVal(nil))
	var unsupported complex128
	require.Error(t, doc.Get("name").ToVal(&unsupported))
	require.Error(t, doc.Get("missing").ToVal(&name))
}
