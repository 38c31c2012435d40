package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec is an optional store-wide codec for operators who prioritize
// decompression speed over ratio. Adapted from mebo's
// compress/lz4.go, same block-level (frame-less) API.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// lz4CompressorPool pools lz4.Compressor instances; the type carries
// internal state that benefits from reuse across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress compresses data with LZ4.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses LZ4-compressed data.
//
// LZ4's block API does not record the decompressed size, so this method
// grows a scratch buffer geometrically (starting at 4x the compressed size,
// the common expansion ratio for this store's edge-list blocks) until
// UncompressBlock succeeds or a 128MB safety limit is hit.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	const maxSize = 128 * 1024 * 1024

	bufSize := len(data) * 4
	for bufSize <= maxSize {
		buf := make([]byte, bufSize)

		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
