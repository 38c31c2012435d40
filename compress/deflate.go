package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"
)

// DeflateCodec is the default block compressor: a deterministic
// deflate/inflate primitive. Built on klauspost/compress/flate, a drop-in,
// faster reimplementation of the standard library's compress/flate that
// mebo already pulls in transitively through github.com/klauspost/compress.
type DeflateCodec struct{}

var _ Codec = (*DeflateCodec)(nil)

// deflateWriterPool pools flate.Writer instances, following mebo's
// pooled-encoder pattern for stateful compressors (compress/zstd_pure.go).
var deflateWriterPool = sync.Pool{
	New: func() any {
		w, _ := flate.NewWriter(io.Discard, flate.DefaultCompression)
		return w
	},
}

// NewDeflateCodec creates a new deflate codec.
func NewDeflateCodec() DeflateCodec {
	return DeflateCodec{}
}

// Compress deflates data. Compression level is fixed at
// flate.DefaultCompression so identical input always produces identical
// output bytes.
func (c DeflateCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer

	w, _ := deflateWriterPool.Get().(*flate.Writer)
	defer deflateWriterPool.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("deflate compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("deflate compress: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates data.
func (c DeflateCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("deflate decompress: %w", err)
	}

	return out, nil
}
