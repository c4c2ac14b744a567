// Package endian provides the byte-order engines used by bufwriter.ByteWriter
// and bounds-checked readers for the bytes it produces.
//
// An EndianEngine is both a binary.ByteOrder and a binary.AppendByteOrder, so
// binary.LittleEndian and binary.BigEndian satisfy it directly:
//
//	w := bufwriter.NewByteWriter(bufwriter.WithEndian(endian.GetBigEndianEngine()))
//	w.WriteUint32(0xCAFEBABE)
//	v, err := endian.ReadUint32(endian.GetBigEndianEngine(), w.Bytes(), 0)
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/spanx/errs"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

func checkBounds(data []byte, offset, size int) error {
	if offset < 0 || offset > len(data)-size {
		return fmt.Errorf("%w: read of %d bytes at offset %d exceeds length %d",
			errs.ErrInvalidArgument, size, offset, len(data))
	}

	return nil
}

// ReadUint16 decodes the uint16 at data[offset:].
func ReadUint16(engine EndianEngine, data []byte, offset int) (uint16, error) {
	if err := checkBounds(data, offset, 2); err != nil {
		return 0, err
	}

	return engine.Uint16(data[offset:]), nil
}

// ReadUint32 decodes the uint32 at data[offset:].
func ReadUint32(engine EndianEngine, data []byte, offset int) (uint32, error) {
	if err := checkBounds(data, offset, 4); err != nil {
		return 0, err
	}

	return engine.Uint32(data[offset:]), nil
}

// ReadUint64 decodes the uint64 at data[offset:].
func ReadUint64(engine EndianEngine, data []byte, offset int) (uint64, error) {
	if err := checkBounds(data, offset, 8); err != nil {
		return 0, err
	}

	return engine.Uint64(data[offset:]), nil
}
