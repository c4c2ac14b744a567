package vec

import "slices"

// Add appends item.
func (v *Vec[T]) Add(item T) {
	v.checkLive()

	if v.count == len(v.buf) {
		v.grow(1)
	}
	v.buf[v.count] = item
	v.count++
}

// AddRange appends items.
func (v *Vec[T]) AddRange(items ...T) {
	v.checkLive()
	if len(items) == 0 {
		return
	}
	if overlaps(items, v.buf) {
		items = slices.Clone(items)
	}

	v.ensureFree(len(items))
	v.count += copy(v.buf[v.count:], items)
}

// Insert inserts item at index, shifting [index, Len()) one slot right.
// index must lie in [0, Len()].
func (v *Vec[T]) Insert(index int, item T) {
	v.checkLive()
	checkInsertIndex(index, v.count)

	if v.count == len(v.buf) {
		v.grow(1)
	}
	if index < v.count {
		copy(v.buf[index+1:], v.buf[index:v.count])
	}
	v.buf[index] = item
	v.count++
}

// InsertRange inserts items at index, shifting [index, Len()) right by
// len(items). items may alias the vector's own elements.
func (v *Vec[T]) InsertRange(index int, items ...T) {
	v.checkLive()
	checkInsertIndex(index, v.count)
	if len(items) == 0 {
		return
	}
	if overlaps(items, v.buf) {
		items = slices.Clone(items)
	}

	n := len(items)
	v.ensureFree(n)
	if index < v.count {
		copy(v.buf[index+n:], v.buf[index:v.count])
	}
	copy(v.buf[index:], items)
	v.count += n
}

// RemoveAt removes the element at index, shifting the tail left.
func (v *Vec[T]) RemoveAt(index int) {
	v.checkLive()
	checkIndex(index, v.count)

	v.count--
	if index < v.count {
		copy(v.buf[index:], v.buf[index+1:v.count+1])
	}
	var zero T
	v.buf[v.count] = zero
}

// RemoveRange removes count elements starting at start.
func (v *Vec[T]) RemoveRange(start, count int) {
	v.checkLive()
	CheckRange(start, count, v.count)
	if count == 0 {
		return
	}

	copy(v.buf[start:], v.buf[start+count:v.count])
	clear(v.buf[v.count-count : v.count])
	v.count -= count
}

// RemoveFunc removes every element for which del returns true, preserving the
// order of the rest, and returns the number removed.
func (v *Vec[T]) RemoveFunc(del func(T) bool) int {
	v.checkLive()

	w := 0
	for r := 0; r < v.count; r++ {
		if del(v.buf[r]) {
			continue
		}
		if w != r {
			v.buf[w] = v.buf[r]
		}
		w++
	}

	removed := v.count - w
	clear(v.buf[w:v.count])
	v.count = w

	return removed
}

// Clear removes all elements and keeps the buffer.
func (v *Vec[T]) Clear() {
	v.checkLive()

	clear(v.buf[:v.count])
	v.count = 0
}
