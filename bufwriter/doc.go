// Package bufwriter provides a sequential buffer writer over growable storage.
//
// A producer asks for writable room with GetSpan, fills a prefix of it, and
// commits what it wrote with Advance:
//
//	w := bufwriter.NewPooled[byte]()
//	defer w.Dispose()
//
//	dst := w.GetSpan(64)
//	n := copy(dst, payload)
//	w.Advance(n)
//
// Committed elements can then be read, edited, and searched like a vec.Vec.
//
// # Ownership
//
// ToArray copies the committed elements out. Detach moves the live buffer out
// of the writer into a Lease that the caller must Release; the writer is left
// empty. Reset returns the buffer to its pool and leaves the writer usable.
// Dispose does the same and retires the writer.
//
// ByteWriter specializes Writer[byte] with the io interfaces, fixed-width
// integer encoding, checksums, and compression of the committed bytes.
package bufwriter
