// Package writer implements the two-pass graph store builder: pass one
// interns titles and collects per-source adjacency in memory, pass two
// (Finalize) encodes, compresses, and writes the binary blocks and index,
// then patches the header's node count. This mirrors mebo's
// accumulate-then-Finish shape (blob/numeric_encoder.go), generalized
// from columnar metric points to per-node adjacency lists.
package writer

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"slices"

	"github.com/wlinknet/wlinknet/compress"
	"github.com/wlinknet/wlinknet/edgelist"
	"github.com/wlinknet/wlinknet/errs"
	"github.com/wlinknet/wlinknet/internal/options"
	"github.com/wlinknet/wlinknet/internal/pool"
	"github.com/wlinknet/wlinknet/section"
	"github.com/wlinknet/wlinknet/titlemap"
)

// Writer builds a wlinknet binary graph file and its text title-map
// sidecar. Not safe for concurrent use; the format has no concurrent-writer
// support, matching mebo's exclusive-access encoder lifecycle.
type Writer struct {
	cfg *Config

	binFile     *os.File
	sidecarPath string

	builder  *titlemap.Builder
	adjacent map[uint64][]uint64

	closed bool
}

// Open creates binPath (truncating it if it exists) and returns a Writer
// ready for Ingest calls. Open does not touch sidecarPath: the Writer holds
// only the binary file handle, and the sidecar file is created (or
// truncated) and written by Finalize.
func Open(binPath, sidecarPath string, opts ...Option) (*Writer, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("writer: apply option: %w", err)
	}

	f, err := os.Create(binPath)
	if err != nil {
		return nil, fmt.Errorf("writer: create binary file: %w", err)
	}

	return &Writer{
		cfg:         cfg,
		binFile:     f,
		sidecarPath: sidecarPath,
		builder:     titlemap.NewBuilder(),
		adjacent:    make(map[uint64][]uint64),
	}, nil
}

// Ingest interns srcTitle and every entry of dstTitles, then records the
// destination ids under srcTitle's id. Source nodes with an empty
// dstTitles are interned into the title map but never get an adjacency
// entry, matching the no-block contract for nodes without outgoing edges.
func (w *Writer) Ingest(srcTitle string, dstTitles []string) error {
	if w.closed {
		return errs.ErrClosed
	}

	srcID, _, err := w.builder.Intern(srcTitle)
	if err != nil {
		return fmt.Errorf("writer: ingest %q: %w", srcTitle, err)
	}

	if len(dstTitles) == 0 {
		return nil
	}

	dstIDs := make([]uint64, 0, len(dstTitles))
	for _, dstTitle := range dstTitles {
		dstID, _, err := w.builder.Intern(dstTitle)
		if err != nil {
			return fmt.Errorf("writer: ingest %q -> %q: %w", srcTitle, dstTitle, err)
		}
		dstIDs = append(dstIDs, dstID)
	}

	w.adjacent[srcID] = append(w.adjacent[srcID], dstIDs...)

	return nil
}

// Finalize writes every block and the index, patches the header's node
// count, flushes and closes the binary file, then writes the sidecar. The
// per-block edge-list scratch buffer and the index/trailer assembly buffer
// both come from internal/pool, reused across blocks instead of allocated
// fresh per node. After Finalize, the Writer must not be used for further
// Ingest calls.
func (w *Writer) Finalize() error {
	if w.closed {
		return errs.ErrClosed
	}

	codec, err := compress.CreateCodec(w.cfg.version, "writer finalize")
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w.binFile)

	header := section.NewHeader(w.cfg.version)
	if _, err := bw.Write(header.Bytes()); err != nil {
		return fmt.Errorf("writer: write header: %w", err)
	}

	srcIDs := make([]uint64, 0, len(w.adjacent))
	for id := range w.adjacent {
		srcIDs = append(srcIDs, id)
	}
	slices.Sort(srcIDs)

	offset := uint64(section.HeaderSize)
	index := make([]section.IndexEntry, 0, len(srcIDs))

	blockBuf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(blockBuf)

	lenBuf := make([]byte, 4)
	for _, id := range srcIDs {
		blockBuf.B = edgelist.EncodeInto(blockBuf.B, w.adjacent[id])

		compressed, err := codec.Compress(blockBuf.Bytes())
		if err != nil {
			return fmt.Errorf("writer: compress block for node %d: %w", id, err)
		}

		index = append(index, section.IndexEntry{ID: id, Offset: offset})

		binary.LittleEndian.PutUint32(lenBuf, uint32(len(compressed)))
		if _, err := bw.Write(lenBuf); err != nil {
			return fmt.Errorf("writer: write block length for node %d: %w", id, err)
		}
		if _, err := bw.Write(compressed); err != nil {
			return fmt.Errorf("writer: write block for node %d: %w", id, err)
		}

		offset += uint64(len(lenBuf)) + uint64(len(compressed))
	}

	indexPos := offset

	fileBuf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(fileBuf)

	entryBuf := make([]byte, section.IndexEntrySize)
	for _, e := range index {
		e.WriteTo(entryBuf, 0)
		fileBuf.MustWrite(entryBuf)
	}

	trailer := make([]byte, section.TrailerSize)
	binary.LittleEndian.PutUint64(trailer, indexPos)
	fileBuf.MustWrite(trailer)

	if _, err := bw.Write(fileBuf.Bytes()); err != nil {
		return fmt.Errorf("writer: write index and trailer: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writer: flush binary file: %w", err)
	}

	patchBuf := make([]byte, section.HeaderSize)
	section.PatchNodeCount(patchBuf, w.builder.NodeCount())
	if _, err := w.binFile.WriteAt(patchBuf[12:16], 12); err != nil {
		return fmt.Errorf("writer: patch node count: %w", err)
	}

	if err := w.binFile.Close(); err != nil {
		return fmt.Errorf("writer: close binary file: %w", err)
	}

	sidecarFile, err := os.Create(w.sidecarPath)
	if err != nil {
		return fmt.Errorf("writer: create sidecar file: %w", err)
	}
	defer sidecarFile.Close()

	if err := titlemap.WriteSidecar(sidecarFile, w.builder.Titles()); err != nil {
		return fmt.Errorf("writer: write sidecar: %w", err)
	}

	w.closed = true

	return nil
}

// Close releases the Writer's resources without finalizing. Callers that
// successfully call Finalize do not need to call Close; Finalize already
// closes the binary file handle. Close exists for the error path, where a
// caller abandons a Writer before Finalize and still wants its file handle
// released.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	return w.binFile.Close()
}
