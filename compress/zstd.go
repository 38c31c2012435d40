package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCodec is an optional store-wide alternative to DeflateCodec for
// operators who prefer Zstandard's compression ratio over deflate's
// baseline. Built on the pure-Go klauspost/compress/zstd package — the
// same algorithm mebo wraps in compress/zstd_pure.go — so no cgo
// toolchain is required (see DESIGN.md for why mebo's cgo-backed
// gozstd binding was dropped rather than adopted here).
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// zstdDecoderPool and zstdEncoderPool pool zstd encoders/decoders for reuse,
// following mebo's pooling rationale verbatim: the klauspost/
// compress/zstd package is explicitly designed to avoid allocations after a
// warmup only when the encoder/decoder is kept around and reused.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("compress: failed to create zstd decoder: %v", err))
		}

		return d
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		e, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			panic(fmt.Sprintf("compress: failed to create zstd encoder: %v", err))
		}

		return e
	},
}

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Compress compresses data with Zstandard using a pooled encoder.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	e, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(e)

	return e.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data with a pooled decoder.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	d, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(d)

	out, err := d.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}

	return out, nil
}
