package cache_test

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/grexie/labelnoise/pkg/cache"
	"github.com/grexie/labelnoise/pkg/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
)

var db *leveldb.DB

func TestMain(m *testing.M) {
	path := fmt.Sprintf("%s/labelnoise-cache.db-test", os.TempDir())
	if err := os.RemoveAll(path); err != nil {
		log.Fatalf("failed to remove %s", path)
	} else if d, err := leveldb.OpenFile(path, nil); err != nil {
		log.Fatalf("failed to open %s: %v", path, err)
	} else {
		db = d
	}
	code := m.Run()
	db.Close()
	os.RemoveAll(path)
	os.Exit(code)
}

func TestCacheRoundTrip(t *testing.T) {
	c := cache.New(db)
	labels := []int{0, 1, 2, 0, 1, 2}
	opts := noise.Options{Type: noise.NoiseTypePairFlip, Classes: 3, Rate: 0.5, Seed: 9}

	key := cache.NewKey(opts.Type, opts.Classes, opts.Rate, opts.Seed, labels)
	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)

	result, err := noise.Noisify(labels, opts)
	require.NoError(t, err)
	require.NoError(t, c.Put(key, result))

	cached, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, result.Labels, cached.Labels)
	assert.Equal(t, result.RealizedRate, cached.RealizedRate)
	assert.Equal(t, result.Matrix.RawMatrix().Data, cached.Matrix.RawMatrix().Data)
	assert.Equal(t, 1, c.Len(noise.NoiseTypePairFlip))
}

func TestCacheKeys(t *testing.T) {
	a := cache.NewKey(noise.NoiseTypeSymmetric, 3, 0.2, 0, []int{0, 1, 2})
	b := cache.NewKey(noise.NoiseTypeSymmetric, 3, 0.2, 0, []int{0, 1, 2})
	c := cache.NewKey(noise.NoiseTypeSymmetric, 3, 0.2, 0, []int{0, 2, 1})
	d := cache.NewKey(noise.NoiseTypeSymmetric, 3, 0.2, 1, []int{0, 1, 2})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Digest, c.Digest)
	assert.NotEqual(t, a, d)
}
