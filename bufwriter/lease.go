package bufwriter

import "github.com/arloliu/spanx/vec"

// Lease is a buffer detached from a Writer. The holder owns it until Release.
//
//	lease := w.Detach()
//	defer lease.Release()
//	send(lease.Data())
type Lease[T any] struct {
	data  []T
	alloc vec.Allocator[T]
	owned bool
}

// Data returns the leased elements. It is nil after Release.
func (l *Lease[T]) Data() []T {
	return l.data
}

// Len returns the number of leased elements.
func (l *Lease[T]) Len() int {
	return len(l.data)
}

// Release hands the buffer back to the allocator it came from. It is
// idempotent, and Data must not be used afterwards.
func (l *Lease[T]) Release() {
	if l.data == nil {
		return
	}

	buf, owned := l.data, l.owned
	l.data = nil
	l.owned = false
	if owned {
		l.alloc.Release(buf[:cap(buf)])
	}
}
