package section

import (
	"encoding/binary"

	"github.com/wlinknet/wlinknet/errs"
)

// IndexEntry records where one source node's block begins in the binary
// file: a node id and the absolute byte offset of that block's length
// prefix. Fixed 16-byte layout, mirroring mebo's
// NumericIndexEntry (section/numeric_index_entry.go) but without delta-
// offset packing — a graph store's offsets routinely exceed uint16 range,
// so both fields are stored as full uint64s rather than mebo's
// space-optimized uint16 deltas.
type IndexEntry struct {
	ID     uint64
	Offset uint64
}

// WriteTo writes the entry's 16-byte encoding to data at offset, returning
// the next write position, following mebo's WriteToSlice shape
// (section/numeric_index_entry.go) for allocation-free sequential writes.
func (e IndexEntry) WriteTo(data []byte, offset int) int {
	binary.LittleEndian.PutUint64(data[offset:offset+8], e.ID)
	binary.LittleEndian.PutUint64(data[offset+8:offset+16], e.Offset)

	return offset + IndexEntrySize
}

// ParseIndexEntry reads one IndexEntry from the first IndexEntrySize bytes
// of data.
func ParseIndexEntry(data []byte) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, errs.ErrTruncated
	}

	return IndexEntry{
		ID:     binary.LittleEndian.Uint64(data[0:8]),
		Offset: binary.LittleEndian.Uint64(data[8:16]),
	}, nil
}
