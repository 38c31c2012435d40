package section

import (
	"encoding/binary"

	"github.com/wlinknet/wlinknet/errs"
)

// Header is the fixed-size record at the start of a wlinknet binary graph
// file:
//
//	offset 0  : "WLINKNET"        (8 bytes, Magic)
//	offset 8  : u32_le version
//	offset 12 : u32_le node_count
//
// This mirrors the shape of mebo's NumericHeader (section/
// numeric_header.go), trimmed to the three fields this format's bit-exact
// contract requires — there is no flag byte or payload-offset bookkeeping
// here, since a graph store has no columnar sub-payloads to offset.
type Header struct {
	Version   Version
	NodeCount uint32
}

// NewHeader creates a header for a store about to be written. NodeCount is
// zero until Finalize patches it in.
func NewHeader(version Version) Header {
	return Header{Version: version}
}

// Bytes serializes the header into a new HeaderSize-byte slice, little-endian
// throughout.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	copy(b[0:8], Magic)
	binary.LittleEndian.PutUint32(b[8:12], uint32(h.Version))
	binary.LittleEndian.PutUint32(b[12:16], h.NodeCount)

	return b
}

// ParseHeader parses a Header from the first HeaderSize bytes of data.
//
// Returns errs.ErrTruncated if data is shorter than HeaderSize,
// errs.ErrInvalidFormat if the magic bytes don't match, and
// errs.ErrUnsupportedVersion if the version field is not one this
// implementation understands.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrTruncated
	}

	if string(data[0:8]) != Magic {
		return Header{}, errs.ErrInvalidFormat
	}

	version := Version(binary.LittleEndian.Uint32(data[8:12]))
	if !version.Valid() {
		return Header{}, errs.ErrUnsupportedVersion
	}

	return Header{
		Version:   version,
		NodeCount: binary.LittleEndian.Uint32(data[12:16]),
	}, nil
}

// PatchNodeCount overwrites the node-count field (offset 12..16) of a
// previously written header in place, the on-disk equivalent of mebo's
// Finish()-time header clone-and-recompute step (blob/
// numeric_encoder.go), adapted here to an in-place seek-and-overwrite
// rather than a full header rewrite.
func PatchNodeCount(data []byte, n uint32) {
	binary.LittleEndian.PutUint32(data[12:16], n)
}
