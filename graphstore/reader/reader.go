// Package reader implements the mmap-backed, random-access query engine
// over a wlinknet binary graph file: header validation, index load,
// binary-search neighbor lookup, and title<->id resolution via the
// sidecar. Modeled on mebo's random-access blob decoder (blob/
// numeric_decoder.go, blob/numeric_blob.go), generalized from columnar
// metric-point access to per-node adjacency blocks.
package reader

import (
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"github.com/RoaringBitmap/roaring"
	"github.com/edsrzf/mmap-go"

	"github.com/wlinknet/wlinknet/compress"
	"github.com/wlinknet/wlinknet/edgelist"
	"github.com/wlinknet/wlinknet/errs"
	"github.com/wlinknet/wlinknet/internal/options"
	"github.com/wlinknet/wlinknet/section"
	"github.com/wlinknet/wlinknet/titlemap"
)

// Reader provides read-only, random access to a finalized graph store.
// Neighbors, HasEdges, TitleOf, IDOf and NodeCount are safe for concurrent
// use by multiple goroutines once Open returns; the only state they mutate
// is the optional block cache, which guards itself with a mutex. Close sets
// the Reader's closed flag and unmaps the file, so it must not run
// concurrently with other calls.
type Reader struct {
	binFile *os.File
	data    mmap.MMap

	header section.Header
	index  []section.IndexEntry
	ids    *roaring.Bitmap

	titles *titlemap.TitleMap
	codec  compress.Codec

	cache *blockCache

	closed bool
}

// Open memory-maps binPath, validates the header and index, loads the
// sidecar at sidecarPath, and returns a ready Reader.
func Open(binPath, sidecarPath string, opts ...Option) (*Reader, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("reader: apply option: %w", err)
	}

	f, err := os.Open(binPath)
	if err != nil {
		return nil, fmt.Errorf("reader: open binary file: %w", err)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reader: mmap binary file: %w", err)
	}

	header, index, ids, err := parseStore(data)
	if err != nil {
		data.Unmap()
		f.Close()
		return nil, err
	}

	codec, err := compress.CreateCodec(header.Version, "reader open")
	if err != nil {
		data.Unmap()
		f.Close()
		return nil, err
	}

	sidecarFile, err := os.Open(sidecarPath)
	if err != nil {
		data.Unmap()
		f.Close()
		return nil, fmt.Errorf("reader: open sidecar file: %w", err)
	}
	defer sidecarFile.Close()

	titles, err := titlemap.LoadSidecar(sidecarFile, nil)
	if err != nil {
		data.Unmap()
		f.Close()
		return nil, fmt.Errorf("reader: load sidecar: %w", err)
	}

	return &Reader{
		binFile: f,
		data:    data,
		header:  header,
		index:   index,
		ids:     ids,
		titles:  titles,
		codec:   codec,
		cache:   newBlockCache(cfg.blockCacheSize),
	}, nil
}

func parseStore(data []byte) (section.Header, []section.IndexEntry, *roaring.Bitmap, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return section.Header{}, nil, nil, err
	}

	if len(data) < section.HeaderSize+section.TrailerSize {
		return section.Header{}, nil, nil, errs.ErrTruncated
	}

	indexPos := binary.LittleEndian.Uint64(data[len(data)-section.TrailerSize:])
	if indexPos > uint64(len(data)-section.TrailerSize) {
		return section.Header{}, nil, nil, errs.ErrIndexCorrupt
	}

	indexRegion := data[indexPos : len(data)-section.TrailerSize]
	if len(indexRegion)%section.IndexEntrySize != 0 {
		return section.Header{}, nil, nil, errs.ErrIndexCorrupt
	}

	count := len(indexRegion) / section.IndexEntrySize
	index := make([]section.IndexEntry, count)
	ids := roaring.New()

	var prevID uint64
	for i := 0; i < count; i++ {
		entry, err := section.ParseIndexEntry(indexRegion[i*section.IndexEntrySize:])
		if err != nil {
			return section.Header{}, nil, nil, err
		}

		if i > 0 && entry.ID < prevID {
			return section.Header{}, nil, nil, errs.ErrIndexCorrupt
		}
		prevID = entry.ID

		index[i] = entry
		ids.Add(uint32(entry.ID))
	}

	return header, index, ids, nil
}

// NodeCount returns the number of titles interned, per the store's header.
func (r *Reader) NodeCount() uint32 {
	return r.header.NodeCount
}

// HasEdges reports whether id has at least one outgoing edge, in O(1) via
// the in-memory presence bitmap rather than a binary search of the index.
func (r *Reader) HasEdges(id uint64) bool {
	return id <= uint64(^uint32(0)) && r.ids.Contains(uint32(id))
}

// Neighbors returns the sorted, de-duplicated destination ids for id. A
// miss (no index entry for id) returns an empty, error-free slice: a
// no-out-edges node is indistinguishable from an id that was never seen.
func (r *Reader) Neighbors(id uint64) ([]uint64, error) {
	if r.closed {
		return nil, errs.ErrClosed
	}

	if dsts, ok := r.cache.get(id); ok {
		return dsts, nil
	}

	i := sort.Search(len(r.index), func(i int) bool { return r.index[i].ID >= id })
	if i >= len(r.index) || r.index[i].ID != id {
		return nil, nil
	}

	offset := r.index[i].Offset
	if offset+4 > uint64(len(r.data)) {
		return nil, errs.ErrTruncated
	}

	length := binary.LittleEndian.Uint32(r.data[offset : offset+4])
	start := offset + 4
	end := start + uint64(length)
	if end > uint64(len(r.data)) {
		return nil, errs.ErrTruncated
	}

	decompressed, err := r.codec.Decompress(r.data[start:end])
	if err != nil {
		return nil, fmt.Errorf("reader: decompress block for node %d: %w: %w", id, errs.ErrBlockCorrupt, err)
	}

	dsts, err := edgelist.Decode(decompressed)
	if err != nil {
		return nil, fmt.Errorf("reader: decode block for node %d: %w", id, err)
	}

	r.cache.put(id, dsts)

	return dsts, nil
}

// TitleOf returns the title assigned to id.
func (r *Reader) TitleOf(id uint64) (string, bool) {
	return r.titles.TitleOf(id)
}

// IDOf returns the id assigned to title.
func (r *Reader) IDOf(title string) (uint64, bool) {
	return r.titles.IDOf(title)
}

// Close unmaps the binary file and closes its handle. The sidecar file is
// already closed by the time Open returns, since its contents are loaded
// into memory. Safe to call more than once.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if err := r.data.Unmap(); err != nil {
		r.binFile.Close()
		return fmt.Errorf("reader: unmap binary file: %w", err)
	}

	return r.binFile.Close()
}
