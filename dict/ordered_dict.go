package dict

import (
	"fmt"
	"iter"

	"github.com/arloliu/spanx/errs"
	"github.com/arloliu/spanx/sorting"
	"github.com/arloliu/spanx/vec"
)

// OrderedDict is an immutable map that iterates in insertion order.
//
// Methods that change the contents return a new OrderedDict and leave the
// receiver untouched, so an OrderedDict is safe for concurrent reads. The zero
// value is an empty dictionary.
type OrderedDict[K comparable, V any] struct {
	keys   []K
	values []V
	index  map[K]int
}

// EmptyOrderedDict returns an empty OrderedDict.
func EmptyOrderedDict[K comparable, V any]() *OrderedDict[K, V] {
	return &OrderedDict[K, V]{}
}

// Len returns the number of entries.
func (d *OrderedDict[K, V]) Len() int {
	return len(d.keys)
}

// Get returns the value of key and whether it is present.
func (d *OrderedDict[K, V]) Get(key K) (V, bool) {
	i, ok := d.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	return d.values[i], true
}

// MustGet returns the value of key. It panics with errs.ErrKeyNotFound if key
// is absent.
func (d *OrderedDict[K, V]) MustGet(key K) V {
	v, ok := d.Get(key)
	if !ok {
		panic(fmt.Errorf("%w: %v", errs.ErrKeyNotFound, key))
	}

	return v
}

// ContainsKey reports whether key is present.
func (d *OrderedDict[K, V]) ContainsKey(key K) bool {
	_, ok := d.index[key]
	return ok
}

// IndexOf returns the insertion position of key, or -1.
func (d *OrderedDict[K, V]) IndexOf(key K) int {
	i, ok := d.index[key]
	if !ok {
		return -1
	}

	return i
}

// At returns the entry at insertion position i.
func (d *OrderedDict[K, V]) At(i int) (K, V) {
	if uint(i) >= uint(len(d.keys)) {
		panic(fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, i, len(d.keys)))
	}

	return d.keys[i], d.values[i]
}

// Keys returns an iterator over the keys in insertion order.
func (d *OrderedDict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range d.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in insertion order.
func (d *OrderedDict[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range d.values {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over the entries in insertion order.
func (d *OrderedDict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range d.keys {
			if !yield(k, d.values[i]) {
				return
			}
		}
	}
}

// With returns a dictionary with key set to value. An existing key keeps its
// position; a new key is appended.
func (d *OrderedDict[K, V]) With(key K, value V) *OrderedDict[K, V] {
	b := d.ToBuilder()
	b.Set(key, value)

	return b.Build()
}

// Without returns a dictionary without key. The receiver is returned as is
// when key is absent.
func (d *OrderedDict[K, V]) Without(key K) *OrderedDict[K, V] {
	if !d.ContainsKey(key) {
		return d
	}

	b := d.ToBuilder()
	b.Remove(key)

	return b.Build()
}

// SortedByKey returns a dictionary holding the same entries ordered by
// compare. A failing comparer is reported as an error wrapping
// errs.ErrSortComparer.
func (d *OrderedDict[K, V]) SortedByKey(compare func(a, b K) int) (*OrderedDict[K, V], error) {
	keys := append([]K(nil), d.keys...)
	values := append([]V(nil), d.values...)
	if err := sorting.SortPairs(keys, values, compare); err != nil {
		return nil, err
	}

	return newOrderedDict(keys, values), nil
}

// ToBuilder returns a builder seeded with the entries of d.
func (d *OrderedDict[K, V]) ToBuilder() *OrderedDictBuilder[K, V] {
	b := NewOrderedDictBuilder[K, V](d.Len())
	for i, k := range d.keys {
		b.Set(k, d.values[i])
	}

	return b
}

func newOrderedDict[K comparable, V any](keys []K, values []V) *OrderedDict[K, V] {
	index := make(map[K]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}

	return &OrderedDict[K, V]{keys: keys, values: values, index: index}
}

// OrderedDictBuilder accumulates entries for an OrderedDict.
//
// A builder is not safe for concurrent use.
type OrderedDictBuilder[K comparable, V any] struct {
	keys   *vec.Vec[K]
	values *vec.Vec[V]
	index  map[K]int
}

// NewOrderedDictBuilder returns a builder with room for capacity entries.
func NewOrderedDictBuilder[K comparable, V any](capacity int) *OrderedDictBuilder[K, V] {
	capacity = max(capacity, 0)

	return &OrderedDictBuilder[K, V]{
		keys:   vec.New[K](capacity),
		values: vec.New[V](capacity),
		index:  make(map[K]int, capacity),
	}
}

// Len returns the number of entries added so far.
func (b *OrderedDictBuilder[K, V]) Len() int {
	return b.keys.Len()
}

// Add appends a new entry. It fails with errs.ErrInvalidArgument if key is
// already present.
func (b *OrderedDictBuilder[K, V]) Add(key K, value V) error {
	if _, ok := b.index[key]; ok {
		return fmt.Errorf("%w: duplicate key %v", errs.ErrInvalidArgument, key)
	}
	b.append(key, value)

	return nil
}

// Set adds key or replaces its value in place.
func (b *OrderedDictBuilder[K, V]) Set(key K, value V) {
	if i, ok := b.index[key]; ok {
		b.values.Set(i, value)
		return
	}
	b.append(key, value)
}

func (b *OrderedDictBuilder[K, V]) append(key K, value V) {
	b.index[key] = b.keys.Len()
	b.keys.Add(key)
	b.values.Add(value)
}

// Remove deletes key and reports whether it was present. Later entries move
// up one position.
func (b *OrderedDictBuilder[K, V]) Remove(key K) bool {
	i, ok := b.index[key]
	if !ok {
		return false
	}

	b.keys.RemoveAt(i)
	b.values.RemoveAt(i)
	delete(b.index, key)
	for j := i; j < b.keys.Len(); j++ {
		b.index[b.keys.Get(j)] = j
	}

	return true
}

// Build returns an OrderedDict of the entries added so far. The builder stays
// usable and later changes do not affect the result.
func (b *OrderedDictBuilder[K, V]) Build() *OrderedDict[K, V] {
	if b.keys.Len() == 0 {
		return EmptyOrderedDict[K, V]()
	}

	return newOrderedDict(b.keys.ToArray(), b.values.ToArray())
}
