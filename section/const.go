// Package section defines the fixed-size, bit-exact on-disk records of a
// wlinknet graph store: the header, the index entry, and the shared layout
// constants, grounded in mebo's section package (section/
// numeric_header.go, section/numeric_index_entry.go, section/const.go).
package section

// Fixed on-disk layout constants shared by the writer and reader.
const (
	// Magic is the 8-byte ASCII tag at offset 0 of every store's binary
	// file.
	Magic = "WLINKNET"

	// HeaderSize is the fixed byte length of the header: 8-byte magic,
	// 4-byte version, 4-byte node count.
	HeaderSize = 16

	// IndexEntrySize is the fixed byte length of one (id, offset) index
	// entry: two little-endian uint64 fields.
	IndexEntrySize = 16

	// TrailerSize is the fixed byte length of the trailing index_pos
	// field.
	TrailerSize = 8
)

// Version identifies which codec a store's blocks were compressed with.
// The header's byte layout never changes across versions — only the
// interpretation of this field does — so the 16-byte header stays
// bit-exact regardless of which codec a store uses.
type Version uint32

const (
	// VersionDeflate is the baseline version: blocks are compressed with
	// the deflate codec. This is the mandatory bit-exact format; the
	// other versions are a wlinknet extension.
	VersionDeflate Version = 1

	// VersionZstd, VersionS2, and VersionLZ4 select an alternate block
	// codec store-wide. The header's byte layout is identical across all
	// four versions.
	VersionZstd Version = 2
	VersionS2   Version = 3
	VersionLZ4  Version = 4
)

// Valid reports whether v is a version this implementation understands.
func (v Version) Valid() bool {
	switch v {
	case VersionDeflate, VersionZstd, VersionS2, VersionLZ4:
		return true
	default:
		return false
	}
}
