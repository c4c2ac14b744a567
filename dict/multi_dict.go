package dict

import (
	"iter"

	"github.com/arloliu/spanx/tiny"
)

// MultiDict maps each key to an ordered list of values. The zero value is an
// empty MultiDict ready to use.
//
// A MultiDict is not safe for concurrent use.
type MultiDict[K comparable, V any] struct {
	m      map[K]*tiny.Vec[V]
	values int
}

// NewMultiDict returns an empty MultiDict with room for capacity keys.
func NewMultiDict[K comparable, V any](capacity int) *MultiDict[K, V] {
	return &MultiDict[K, V]{m: make(map[K]*tiny.Vec[V], max(capacity, 0))}
}

func (d *MultiDict[K, V]) list(key K) *tiny.Vec[V] {
	if d.m == nil {
		d.m = make(map[K]*tiny.Vec[V])
	}
	l, ok := d.m[key]
	if !ok {
		l = &tiny.Vec[V]{}
		d.m[key] = l
	}

	return l
}

// Add appends value to the list of key.
func (d *MultiDict[K, V]) Add(key K, value V) {
	d.list(key).Add(value)
	d.values++
}

// AddRange appends values to the list of key. An empty values adds nothing
// and does not create the key.
func (d *MultiDict[K, V]) AddRange(key K, values ...V) {
	if len(values) == 0 {
		return
	}
	d.list(key).AddRange(values...)
	d.values += len(values)
}

// Values returns the values of key, or an empty Span if key is absent.
//
// A key with more than four values yields a Span aliasing the list; it is
// invalidated by the next change to that key.
func (d *MultiDict[K, V]) Values(key K) tiny.Span[V] {
	s, _ := d.TryGetValues(key)
	return s
}

// TryGetValues returns the values of key and whether key is present.
func (d *MultiDict[K, V]) TryGetValues(key K) (tiny.Span[V], bool) {
	l, ok := d.m[key]
	if !ok {
		return tiny.Span[V]{}, false
	}

	return l.Span(), true
}

// ContainsKey reports whether key has at least one value.
func (d *MultiDict[K, V]) ContainsKey(key K) bool {
	_, ok := d.m[key]
	return ok
}

// Remove deletes key and all of its values. It reports whether key was
// present.
func (d *MultiDict[K, V]) Remove(key K) bool {
	l, ok := d.m[key]
	if !ok {
		return false
	}
	d.values -= l.Len()
	delete(d.m, key)

	return true
}

// RemoveFunc removes the values of key for which del returns true and returns
// how many were removed. A key left without values is deleted.
func (d *MultiDict[K, V]) RemoveFunc(key K, del func(V) bool) int {
	l, ok := d.m[key]
	if !ok {
		return 0
	}

	n := l.RemoveFunc(del)
	d.values -= n
	if l.IsEmpty() {
		delete(d.m, key)
	}

	return n
}

// RemoveValue removes the first occurrence of value from the list of key and
// reports whether it was found. A key left without values is deleted.
func RemoveValue[K comparable, V comparable](d *MultiDict[K, V], key K, value V) bool {
	l, ok := d.m[key]
	if !ok {
		return false
	}

	i := l.IndexFunc(func(v V) bool { return v == value })
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	d.values--
	if l.IsEmpty() {
		delete(d.m, key)
	}

	return true
}

// Len returns the number of keys.
func (d *MultiDict[K, V]) Len() int {
	return len(d.m)
}

// ValueCount returns the number of values across all keys.
func (d *MultiDict[K, V]) ValueCount() int {
	return d.values
}

// Clear removes every key.
func (d *MultiDict[K, V]) Clear() {
	clear(d.m)
	d.values = 0
}

// Keys returns an iterator over the keys in unspecified order.
func (d *MultiDict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range d.m {
			if !yield(k) {
				return
			}
		}
	}
}

// All returns an iterator over each key and its values, in unspecified key
// order.
func (d *MultiDict[K, V]) All() iter.Seq2[K, tiny.Span[V]] {
	return func(yield func(K, tiny.Span[V]) bool) {
		for k, l := range d.m {
			if !yield(k, l.Span()) {
				return
			}
		}
	}
}
