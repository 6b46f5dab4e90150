package jsoniter

import (
	"sync"

	"github.com/modern-go/concurrent"
)

// Config customize how the API should behave.
// The API is created from Config by Froze.
type Config struct {
	// CaseSensitive makes Lazy.Get match object keys exactly.
	CaseSensitive bool
	// MaxDepth limits the nesting accepted by the validating readers.
	// Skip and SkipCapturing count brackets and are not limited.
	MaxDepth int
	// BufferSize is the initial buffer of reader backed iterators.
	BufferSize int
}

// API the public interface of this package.
// Primary Skip/Valid/Get methods.
type API interface {
	BorrowIterator(data []byte) *Iterator
	ReturnIterator(iter *Iterator)
	// Skip skips the first value of data and returns its type and span.
	Skip(data []byte) (ValueType, Span, error)
	// Valid reports whether data holds exactly one well formed value.
	Valid(data []byte) bool
	// Get returns the value found at path in data, see Lazy.Get.
	Get(data []byte, path ...interface{}) Lazy
}

const (
	defaultMaxDepth   = 10000
	defaultBufferSize = 512
)

// ConfigDefault the default API
var ConfigDefault = Config{}.Froze()

// ConfigCaseSensitive matches object keys exactly
var ConfigCaseSensitive = Config{
	CaseSensitive: true,
}.Froze()

type frozenConfig struct {
	configBeforeFrozen Config
	caseSensitive      bool
	maxDepth           int
	bufferSize         int
	iteratorPool       *sync.Pool
}

var configCache = concurrent.NewMap()

func getFrozenConfigFromCache(cfg Config) *frozenConfig {
	obj, found := configCache.Load(cfg)
	if found {
		return obj.(*frozenConfig)
	}
	return nil
}

func addFrozenConfigToCache(cfg Config, frozenConfig *frozenConfig) {
	configCache.Store(cfg, frozenConfig)
}

// Froze forge API from config
func (cfg Config) Froze() API {
	if frozen := getFrozenConfigFromCache(cfg); frozen != nil {
		return frozen
	}
	api := &frozenConfig{
		configBeforeFrozen: cfg,
		caseSensitive:      cfg.CaseSensitive,
		maxDepth:           cfg.MaxDepth,
		bufferSize:         cfg.BufferSize,
	}
	if api.maxDepth <= 0 {
		api.maxDepth = defaultMaxDepth
	}
	if api.bufferSize <= 0 {
		api.bufferSize = defaultBufferSize
	}
	api.iteratorPool = &sync.Pool{
		New: func() interface{} {
			return NewIterator(api)
		},
	}
	addFrozenConfigToCache(cfg, api)
	return api
}

func (cfg *frozenConfig) BorrowIterator(data []byte) *Iterator {
	iter := cfg.iteratorPool.Get().(*Iterator)
	iter.ResetBytes(data)
	return iter
}

func (cfg *frozenConfig) ReturnIterator(iter *Iterator) {
	iter.Error = nil
	iter.reader = nil
	iter.buf = nil
	iter.external = false
	cfg.iteratorPool.Put(iter)
}

func (cfg *frozenConfig) Skip(data []byte) (ValueType, Span, error) {
	iter := cfg.BorrowIterator(data)
	defer cfg.ReturnIterator(iter)
	valueType, span := iter.SkipCapturing()
	return valueType, span, iter.failure()
}

func (cfg *frozenConfig) Valid(data []byte) bool {
	iter := cfg.BorrowIterator(data)
	defer cfg.ReturnIterator(iter)
	iter.SkipStrict()
	if iter.failure() != nil {
		return false
	}
	// nothing but whitespace may follow
	return iter.nextToken() == 0 && iter.failure() == nil
}

func (cfg *frozenConfig) Get(data []byte, path ...interface{}) Lazy {
	iter := cfg.BorrowIterator(data)
	defer cfg.ReturnIterator(iter)
	return iter.ReadLazy().Get(path...)
}
