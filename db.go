package csdb

import (
	"io"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/csdb/bptree"
	"github.com/npillmayer/csdb/digest"
	"github.com/npillmayer/csdb/hashtable"
)

// Config configures a database.
type Config struct {
	// Fanout of the ordered index; zero selects bptree.DefaultFanout.
	Fanout int
	// Buckets of the hash table; zero selects hashtable.DefaultBuckets.
	Buckets int
	// Digest names the bucket digest, one of digest.Names(). Empty selects crc64.
	Digest string
}

// DB is an in-memory key/value database with ordered scans.
//
// All methods are safe for concurrent use. Callbacks passed to Scan and
// Ascend run while the database is locked and must not call back into it.
type DB struct {
	mu     sync.Mutex
	pubMu  sync.Mutex // held from mutation to publication; orders events
	cfg    Config
	table  *hashtable.Table[string, []byte]
	index  *bptree.Tree[string, []byte]
	cast   *caster.Caster
	done   chan struct{} // closed by Close
	closed bool
}

// Open creates an empty database.
func Open(cfg Config) (*DB, error) {
	fn, seed, err := digest.ByName(cfg.Digest)
	if err != nil {
		return nil, err
	}
	table, err := hashtable.NewStrings[[]byte](hashtable.Config[string]{
		Buckets: cfg.Buckets,
		Digest:  fn,
		Seed:    seed,
	})
	if err != nil {
		return nil, err
	}
	index, err := bptree.NewOrdered[string, []byte](cfg.Fanout)
	if err != nil {
		return nil, err
	}
	T().Debugf("csdb: opened database, fanout=%d, buckets=%d, digest=%s",
		index.Fanout(), table.Stats().Buckets, cfg.Digest)
	return &DB{
		cfg:   cfg,
		table: table,
		index: index,
		cast:  caster.New(nil),
		done:  make(chan struct{}),
	}, nil
}

// Set stores value for key, replacing an existing value.
//
// Events of concurrent calls are published in the order the calls changed
// the database.
func (db *DB) Set(key string, value []byte) error {
	if key == "" {
		return ErrIllegalArguments
	}
	db.mu.Lock()
	if db.closed {
		db.mu.Unlock()
		return ErrClosed
	}
	op := OpUpdate
	if db.table.Set(key, value) {
		op = OpInsert
	}
	db.index.Insert(key, value)
	db.pubMu.Lock()
	db.mu.Unlock()
	db.cast.Pub(Event{Op: op, Key: key})
	db.pubMu.Unlock()
	return nil
}

// Get returns the value stored for key.
func (db *DB) Get(key string) ([]byte, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return nil, false
	}
	return db.table.Get(key)
}

// Scan calls fn for every key k with from <= k < to, in ascending order.
// An empty to means no upper bound. Iteration stops early if fn returns false.
func (db *DB) Scan(from, to string, fn func(key string, value []byte) bool) error {
	if fn == nil {
		return ErrIllegalArguments
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return ErrClosed
	}
	var it *bptree.Iterator[string, []byte]
	if to == "" {
		it = db.index.Scan(from)
	} else {
		it = db.index.Range(from, to)
	}
	for it.Next() {
		if !fn(it.Key(), it.Value()) {
			break
		}
	}
	return nil
}

// Ascend calls fn for every record in ascending key order.
func (db *DB) Ascend(fn func(key string, value []byte) bool) error {
	return db.Scan("", "", fn)
}

// Len returns the number of records.
func (db *DB) Len() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.index.Len()
}

// Stats combines the shape of the ordered index and the hash table.
type Stats struct {
	Index bptree.Stats
	Table hashtable.Stats
}

// Stats returns statistics about the database's internal structures.
func (db *DB) Stats() Stats {
	db.mu.Lock()
	defer db.mu.Unlock()
	return Stats{
		Index: db.index.Stats(),
		Table: db.table.Stats(),
	}
}

// Check validates the invariants of the ordered index and its consistency
// with the hash table.
func (db *DB) Check() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if err := db.index.Check(); err != nil {
		return err
	}
	if db.index.Len() != db.table.Len() {
		return DBError("index and table disagree on the number of records")
	}
	return nil
}

// Dot writes the ordered index in Graphviz DOT format to w.
func (db *DB) Dot(w io.Writer) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return bptree.Tree2Dot(db.index, w)
}

// Close releases the database. Subscriptions are terminated and further
// operations fail with ErrClosed.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return ErrClosed
	}
	db.closed = true
	close(db.done) // releases forwarders of lagging subscribers
	db.cast.Close()
	db.index.Clear()
	T().Debugf("csdb: database closed")
	return nil
}
