// Package tiny provides sequences that keep up to four elements inline and
// spill to external storage beyond that.
//
// Span is an immutable value. Its constructors make the storage choice
// explicit:
//
//   - Of1 through Of4 store their arguments inline without allocating.
//   - Wrap aliases the caller's slice. Later writes to that slice are visible
//     through the Span.
//   - Copy and CopyFrom take a private copy.
//
// # Equality
//
// Identical is a cheap structural check. For spans of up to four elements it
// compares the elements; for longer spans it only reports whether both wrap the
// same memory. Two spans over separately allocated but equal slices are NOT
// Identical. Use Equal or SequenceEqual to compare contents.
//
// Vec is the mutable counterpart. It moves its elements into a heap vector the
// first time it grows past four elements, or on any multi-element insert, and
// never moves back.
package tiny
