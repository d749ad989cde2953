package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/grexie/labelnoise/pkg/noise"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Cache stores noisy label vectors keyed by everything that determines them.
type Cache struct {
	db *leveldb.DB
}

type Key struct {
	Type    noise.NoiseType
	Classes int
	Rate    float64
	Seed    uint64
	Digest  string
}

type entry struct {
	Labels       []int   `json:"labels"`
	RealizedRate float64 `json:"realized_rate"`
}

func Open(path string) (*Cache, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", path, err)
	}
	return New(db), nil
}

func New(db *leveldb.DB) *Cache {
	return &Cache{db: db}
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// NewKey digests labels so that any change to the input misses the cache.
func NewKey(t noise.NoiseType, classes int, rate float64, seed uint64, labels []int) Key {
	h := sha256.New()
	b := make([]byte, 8)
	for _, label := range labels {
		binary.LittleEndian.PutUint64(b, uint64(label))
		h.Write(b)
	}
	return Key{
		Type:    t,
		Classes: classes,
		Rate:    rate,
		Seed:    seed,
		Digest:  fmt.Sprintf("%x", h.Sum(nil)),
	}
}

func (k Key) bytes() []byte {
	return fmt.Appendf([]byte{}, "%s-%d-%v-%d-%s", k.Type, k.Classes, k.Rate, k.Seed, k.Digest)
}

func (c *Cache) Get(k Key) (*noise.Result, bool, error) {
	b, err := c.db.Get(k.bytes(), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	var e entry
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached labels: %v", err)
	}

	p, err := noise.BuildMatrix(k.Type, k.Classes, k.Rate)
	if err != nil {
		return nil, false, err
	}

	return &noise.Result{Labels: e.Labels, RealizedRate: e.RealizedRate, Matrix: p}, true, nil
}

func (c *Cache) Put(k Key, r *noise.Result) error {
	if b, err := json.Marshal(entry{Labels: r.Labels, RealizedRate: r.RealizedRate}); err != nil {
		return fmt.Errorf("failed to cache labels: %v", err)
	} else if err := c.db.Put(k.bytes(), b, nil); err != nil {
		return fmt.Errorf("failed to cache labels: %v", err)
	}
	return nil
}

// Len counts the cached entries for a noise type.
func (c *Cache) Len(t noise.NoiseType) int {
	iter := c.db.NewIterator(util.BytesPrefix(fmt.Appendf([]byte{}, "%s-", t)), nil)
	defer iter.Release()

	n := 0
	for iter.Next() {
		n++
	}
	return n
}
