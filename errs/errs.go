// Package errs defines the sentinel errors returned across wlinknet's
// packages. Callers should compare with errors.Is; most call sites wrap a
// sentinel with additional context via fmt.Errorf("...: %w", errs.ErrX, ...).
package errs

import "errors"

var (
	// ErrMalformedVarint is returned when a varint cannot be decoded: the
	// input ends before the terminating byte, or more than 10 bytes would
	// be required to represent a 64-bit value.
	ErrMalformedVarint = errors.New("wlinknet: malformed varint")

	// ErrTrailingGarbage is returned when bytes remain in a decompressed
	// edge-list block after decoding the declared number of deltas.
	ErrTrailingGarbage = errors.New("wlinknet: trailing garbage after edge list")

	// ErrBlockCorrupt is returned when a block fails to decompress, or when
	// it decompresses but its declared edge count cannot possibly fit the
	// bytes that follow.
	ErrBlockCorrupt = errors.New("wlinknet: block corrupt")

	// ErrInvalidTitle is returned by intern when a title contains a tab or
	// newline byte, which the sidecar line format forbids.
	ErrInvalidTitle = errors.New("wlinknet: invalid title")

	// ErrInvalidFormat is returned when the binary file's magic bytes do
	// not match.
	ErrInvalidFormat = errors.New("wlinknet: invalid format")

	// ErrUnsupportedVersion is returned when the binary file declares a
	// version this reader does not recognize.
	ErrUnsupportedVersion = errors.New("wlinknet: unsupported version")

	// ErrIndexCorrupt is returned when the index region is not a multiple
	// of the index entry size, or is not sorted ascending by id.
	ErrIndexCorrupt = errors.New("wlinknet: index corrupt")

	// ErrTruncated is returned when the binary file is too short to hold
	// a valid header or trailer.
	ErrTruncated = errors.New("wlinknet: file truncated")

	// ErrClosed is returned by Reader.Neighbors after Close, and by
	// Writer.Ingest and Writer.Finalize after Close or a successful
	// Finalize. Methods without an error result do not report it.
	ErrClosed = errors.New("wlinknet: already closed")

	// ErrUnknownCodec is returned when CreateCodec receives a compression
	// identifier it does not recognize.
	ErrUnknownCodec = errors.New("wlinknet: unknown compression codec")
)
