// Package format defines identifiers shared by serialized spanx payloads.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/spanx/errs"
)

// CompressionType identifies the codec applied to a byte payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone leaves the payload as written.
	CompressionZstd CompressionType = 0x2 // CompressionZstd is Zstandard.
	CompressionS2   CompressionType = 0x3 // CompressionS2 is S2, a Snappy extension.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 is LZ4 block format.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType returns the CompressionType named s, as produced by
// String. Matching ignores case.
func ParseCompressionType(s string) (CompressionType, error) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown compression type %q", errs.ErrInvalidArgument, s)
}
