// Package dict provides two map types built on the spanx containers.
//
// MultiDict maps a key to a list of values. Each list is a tiny.Vec, so keys
// with four or fewer values need no allocation beyond the map entry.
//
// OrderedDict is an immutable map that remembers insertion order. Build one
// with an OrderedDictBuilder; With and Without return modified copies.
package dict
