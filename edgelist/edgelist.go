// Package edgelist encodes and decodes the per-node adjacency block: a
// varint count followed by ascending-delta varints. It adapts mebo's
// TimestampDeltaEncoder shape (internal state machine over a running
// previous value, emitting zigzag+varint deltas) to an unsigned, always-
// ascending sequence, so no zigzag step is needed here — destination ids
// only ever increase once sorted.
package edgelist

import (
	"slices"

	"github.com/wlinknet/wlinknet/errs"
	"github.com/wlinknet/wlinknet/varint"
)

// Encode sorts and de-duplicates dstIDs, then emits varint(count) followed
// by count ascending-delta varints with a running prev starting at 0.
//
// The input slice is not mutated; a sorted copy is encoded.
func Encode(dstIDs []uint64) []byte {
	sorted := sortedUnique(dstIDs)
	buf := make([]byte, 0, varint.Size(uint64(len(sorted)))+len(sorted)*2)

	return encodeSorted(buf, sorted)
}

// EncodeInto behaves like Encode but writes into dst[:0], reusing its
// backing array when it has enough capacity. Callers that reuse a scratch
// buffer across many blocks (see internal/pool) pass that buffer's slice as
// dst to avoid an allocation per block.
func EncodeInto(dst []byte, dstIDs []uint64) []byte {
	sorted := sortedUnique(dstIDs)

	return encodeSorted(dst[:0], sorted)
}

func sortedUnique(dstIDs []uint64) []uint64 {
	sorted := slices.Clone(dstIDs)
	slices.Sort(sorted)

	return slices.Compact(sorted)
}

func encodeSorted(buf []byte, sorted []uint64) []byte {
	buf = varint.Encode(buf, uint64(len(sorted)))

	var prev uint64
	for _, id := range sorted {
		buf = varint.Encode(buf, id-prev)
		prev = id
	}

	return buf
}

// Decode reads a varint count followed by that many ascending deltas,
// reconstructing the sorted id sequence the block holds. Blocks written by
// Encode are de-duplicated; a block that holds duplicate ids (zero deltas)
// decodes with those duplicates kept.
//
// Returns errs.ErrTrailingGarbage if bytes remain after the last delta;
// this is an encoding error, not a tolerated trailer.
func Decode(data []byte) ([]uint64, error) {
	count, n, err := varint.Decode(data)
	if err != nil {
		return nil, err
	}
	data = data[n:]

	// count comes straight from the block's own bytes with no independent
	// check; a flipped bit can turn it into an enormous value with far
	// fewer bytes actually following it. Each remaining delta needs at
	// least one byte, so count can never legitimately exceed len(data).
	if count > uint64(len(data)) {
		return nil, errs.ErrBlockCorrupt
	}

	ids := make([]uint64, 0, count)
	var prev uint64
	for i := uint64(0); i < count; i++ {
		delta, n, err := varint.Decode(data)
		if err != nil {
			return nil, err
		}
		data = data[n:]

		prev += delta
		ids = append(ids, prev)
	}

	if len(data) != 0 {
		return nil, errs.ErrTrailingGarbage
	}

	return ids, nil
}
