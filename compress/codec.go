// Package compress provides the block compression codecs a wlinknet graph
// store can use for its adjacency blocks: a thin wrapper over a standard
// deflate/inflate primitive, deterministic bytes out given bytes in. The
// interfaces and factory shape are adapted directly from mebo's
// compress package (compress/codec.go), widened from a fixed four-algorithm
// set to one mandatory baseline (deflate) plus the rest of mebo's
// algorithms as opt-in store-wide alternatives.
package compress

import (
	"fmt"

	"github.com/wlinknet/wlinknet/errs"
	"github.com/wlinknet/wlinknet/section"
)

// Compressor compresses a single block's encoded bytes.
//
// The writer calls Compress independently per node, with no cross-block
// dictionary, so implementations must not carry state between calls that
// would make two blocks' compressed bytes depend on each other.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a single block's compressed bytes.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. A store records exactly one Codec choice
// in its header version field (section.Version) and uses it for every
// block.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the Codec a store of the given version uses.
//
// Returns errs.ErrUnknownCodec, wrapped with the target description, for any
// version this package does not implement — callers needing the raw
// sentinel should use errors.Is.
func CreateCodec(version section.Version, target string) (Codec, error) {
	switch version {
	case section.VersionDeflate:
		return NewDeflateCodec(), nil
	case section.VersionZstd:
		return NewZstdCodec(), nil
	case section.VersionS2:
		return NewS2Codec(), nil
	case section.VersionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("%s: %w: version %d", target, errs.ErrUnknownCodec, version)
	}
}
