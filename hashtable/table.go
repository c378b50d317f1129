package hashtable

import (
	"fmt"

	"github.com/npillmayer/csdb/digest"
)

// DefaultBuckets is the bucket count used when a Config leaves it unset.
const DefaultBuckets = 1 << 14

// Config configures a hash table.
type Config[K comparable] struct {
	// Buckets is the fixed number of hash buckets. Zero selects DefaultBuckets.
	Buckets int
	// Digest maps the encoded key to a bucket. Nil selects digest.CRC64.
	Digest digest.Func
	// Seed is passed to every call of Digest.
	Seed uint64
	// Encode returns the bytes of a key fed to Digest. It is required.
	Encode func(key K) []byte
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Buckets == 0 {
		cfg.Buckets = DefaultBuckets
	}
	if cfg.Digest == nil {
		cfg.Digest = digest.CRC64
		cfg.Seed = digest.Seed64
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Buckets < 0 {
		return fmt.Errorf("%w: bucket count must be positive, is %d", ErrInvalidConfig, cfg.Buckets)
	}
	if cfg.Encode == nil {
		return fmt.Errorf("%w: key encoder is required", ErrInvalidConfig)
	}
	return nil
}

// StringBytes is the key encoder for string keys.
func StringBytes(s string) []byte {
	return []byte(s)
}

type node[K comparable, V any] struct {
	hash  uint64
	key   K
	value V
	next  *node[K, V]
}

// Table is a chained hash table.
type Table[K comparable, V any] struct {
	cfg     Config[K]
	buckets []*node[K, V]
	count   int
}

// New creates an empty table with validated configuration.
func New[K comparable, V any](cfg Config[K]) (*Table[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	tracer().Debugf("hashtable: storage of %d buckets created", cfg.Buckets)
	return &Table[K, V]{
		cfg:     cfg,
		buckets: make([]*node[K, V], cfg.Buckets),
	}, nil
}

// NewStrings creates a table for string keys. cfg.Encode may be left unset.
func NewStrings[V any](cfg Config[string]) (*Table[string, V], error) {
	if cfg.Encode == nil {
		cfg.Encode = StringBytes
	}
	return New[string, V](cfg)
}

// Len returns the number of stored keys.
func (t *Table[K, V]) Len() int {
	return t.count
}

func (t *Table[K, V]) locate(key K) (uint64, int) {
	h := t.cfg.Digest(t.cfg.Encode(key), t.cfg.Seed)
	return h, int(h % uint64(len(t.buckets)))
}

// Get returns the value stored for key. The boolean result is false if the
// key is not present.
func (t *Table[K, V]) Get(key K) (V, bool) {
	h, b := t.locate(key)
	for n := t.buckets[b]; n != nil; n = n.next {
		if n.hash == h && n.key == key {
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Set stores value for key, overwriting an existing value. It reports
// whether key has been newly inserted.
func (t *Table[K, V]) Set(key K, value V) bool {
	h, b := t.locate(key)
	link := &t.buckets[b]
	for *link != nil {
		if n := *link; n.hash == h && n.key == key {
			n.value = value
			return false
		}
		link = &(*link).next
	}
	*link = &node[K, V]{hash: h, key: key, value: value}
	t.count++
	return true
}

// Erase removes key from the table and reports whether it was present.
func (t *Table[K, V]) Erase(key K) bool {
	h, b := t.locate(key)
	for link := &t.buckets[b]; *link != nil; link = &(*link).next {
		if n := *link; n.hash == h && n.key == key {
			*link = n.next
			t.count--
			return true
		}
	}
	return false
}

// ForEach calls fn for every entry, in bucket order. Iteration stops early
// if fn returns false.
func (t *Table[K, V]) ForEach(fn func(key K, value V) bool) {
	for _, head := range t.buckets {
		for n := head; n != nil; n = n.next {
			if !fn(n.key, n.value) {
				return
			}
		}
	}
}

// Stats describes the bucket usage of a table.
type Stats struct {
	Buckets int // bucket count
	Used    int // non-empty buckets
	Longest int // longest chain
	Keys    int
}

// Stats collects bucket usage by visiting every bucket.
func (t *Table[K, V]) Stats() Stats {
	s := Stats{Buckets: len(t.buckets), Keys: t.count}
	for _, head := range t.buckets {
		if head == nil {
			continue
		}
		s.Used++
		l := 0
		for n := head; n != nil; n = n.next {
			l++
		}
		s.Longest = max(s.Longest, l)
	}
	return s
}
