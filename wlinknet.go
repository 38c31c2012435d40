// Package wlinknet provides a binary graph store for a directed,
// unweighted inter-article link graph: who links to whom, stored as a
// compact memory-mappable file plus a human-readable title sidecar.
//
// # Core Features
//
//   - Two-pass writer: interns titles into dense integer ids while
//     collecting adjacency, then emits delta+varint-encoded, deflate-
//     compressed blocks and a sorted offset index
//   - mmap-backed reader with O(log M) binary-search neighbor lookup and
//     an O(1) presence check via an in-memory roaring bitmap
//   - Pluggable block codec (deflate by default; zstd, S2, and LZ4 as
//     store-wide alternatives)
//   - Bidirectional title<->id resolution backed by a plain-text sidecar
//
// # Basic Usage
//
// Building a store:
//
//	w, _ := wlinknet.Create("wikigraph.bin", "wikigraph.titles")
//	_ = w.Ingest("Apple", []string{"Fruit", "Tree"})
//	_ = w.Ingest("Fruit", nil)
//	_ = w.Finalize()
//
// Querying it:
//
//	r, _ := wlinknet.Open("wikigraph.bin", "wikigraph.titles")
//	defer r.Close()
//
//	id, _ := r.IDOf("Apple")
//	dstIDs, _ := r.Neighbors(id)
//	for _, dst := range dstIDs {
//	    title, _ := r.TitleOf(dst)
//	    fmt.Println(title)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around graphstore/
// writer and graphstore/reader. For fine-grained control over block codec
// selection or block caching, use those packages directly.
package wlinknet

import (
	"github.com/wlinknet/wlinknet/graphstore/reader"
	"github.com/wlinknet/wlinknet/graphstore/writer"
)

// Create opens a new store builder at binPath, truncating it if it already
// exists; the sidecar at sidecarPath is created (or truncated) only when
// the builder's Finalize runs. See graphstore/writer for available
// options, such as writer.WithVersion to select a non-default block codec.
func Create(binPath, sidecarPath string, opts ...writer.Option) (*writer.Writer, error) {
	return writer.Open(binPath, sidecarPath, opts...)
}

// Open memory-maps an existing store for random-access queries. See
// graphstore/reader for available options, such as reader.WithBlockCache
// to enable a decoded-block LRU cache.
func Open(binPath, sidecarPath string, opts ...reader.Option) (*reader.Reader, error) {
	return reader.Open(binPath, sidecarPath, opts...)
}
