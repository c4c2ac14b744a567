package tiny

import (
	"fmt"

	"github.com/arloliu/spanx/errs"
)

// InlineCapacity is the number of elements stored without a backing slice.
const InlineCapacity = 4

// shape records where a sequence keeps its elements. A Vec only ever moves from
// inline to spilled.
type shape uint8

const (
	shapeInline shape = iota
	shapeSpilled
)

func (s shape) String() string {
	switch s {
	case shapeInline:
		return "inline"
	case shapeSpilled:
		return "spilled"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// noCopy makes go vet's copylocks check flag copies of the embedding struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func checkIndex(index, length int) {
	if uint(index) >= uint(length) {
		panic(fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, index, length))
	}
}
