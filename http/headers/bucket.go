package headers

import (
	"github.com/indigo-web/iter"
	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Bucket stores headers no classification table recognizes. Keys are unique
// and matched case-insensitively; setting an existing key overwrites its
// value in place.
type Bucket struct {
	pairs []Pair
}

// NewBucketPreAlloc returns a Bucket with pre-allocated underlying storage.
func NewBucketPreAlloc(n int) Bucket {
	return Bucket{
		pairs: make([]Pair, 0, n),
	}
}

// Set inserts the pair, overwriting the value of an already present key.
// The key keeps the spelling it was first seen with.
func (b *Bucket) Set(key, value string) {
	for i := range b.pairs {
		if strcomp.EqualFold(key, b.pairs[i].Key) {
			b.pairs[i].Value = value
			return
		}
	}

	b.pairs = append(b.pairs, Pair{Key: key, Value: value})
}

// Get returns a value corresponding to the key and a bool, indicating
// whether the key exists.
func (b *Bucket) Get(key string) (string, bool) {
	for _, pair := range b.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Value returns the value corresponding to the key, or an empty string.
func (b *Bucket) Value(key string) string {
	value, _ := b.Get(key)
	return value
}

// Has indicates whether there's an entry of the key.
func (b *Bucket) Has(key string) bool {
	_, found := b.Get(key)
	return found
}

func (b *Bucket) Len() int {
	return len(b.pairs)
}

// Keys returns all the stored keys in their first-seen spelling.
func (b *Bucket) Keys() []string {
	keys := make([]string, 0, len(b.pairs))
	for _, pair := range b.pairs {
		keys = append(keys, pair.Key)
	}

	return keys
}

// Iter returns an iterator over the stored pairs.
func (b *Bucket) Iter() iter.Iterator[Pair] {
	return iter.Slice(b.pairs)
}
