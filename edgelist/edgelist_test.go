package edgelist_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlinknet/wlinknet/edgelist"
	"github.com/wlinknet/wlinknet/errs"
)

func TestEncodeDecode_Basic(t *testing.T) {
	got, err := edgelist.Decode(edgelist.Encode([]uint64{5, 1, 3}))
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3, 5}, got)
}

func TestEncodeDecode_Dedup(t *testing.T) {
	got, err := edgelist.Decode(edgelist.Encode([]uint64{7, 7, 2, 7, 2}))
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 7}, got)
}

func TestEncodeDecode_Empty(t *testing.T) {
	got, err := edgelist.Decode(edgelist.Encode(nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecode_TrailingGarbage(t *testing.T) {
	buf := edgelist.Encode([]uint64{1, 2, 3})
	buf = append(buf, 0xff)

	_, err := edgelist.Decode(buf)
	assert.ErrorIs(t, err, errs.ErrTrailingGarbage)
}

func TestDecode_RejectsCountExceedingRemainingBytes(t *testing.T) {
	// A single flipped bit in the count varint can turn it into a huge
	// value with far fewer delta bytes actually following it (simulating
	// what an undetected deflate-stream corruption can produce). Decode
	// must reject this rather than pass count straight into make([]uint64,
	// 0, count).
	var buf []byte
	buf = append(buf, 0xff, 0xff, 0xff, 0xff, 0x0f) // count = huge
	buf = append(buf, 0x01, 0x02)                   // far fewer bytes than count requires

	_, err := edgelist.Decode(buf)
	assert.ErrorIs(t, err, errs.ErrBlockCorrupt)
}

func TestEncodeInto_ReusesBuffer(t *testing.T) {
	dst := make([]byte, 0, 64)
	out := edgelist.EncodeInto(dst, []uint64{5, 1, 3})

	got, err := edgelist.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3, 5}, got)
}

func TestDecode_TolerantOfUndedupedInput(t *testing.T) {
	// Hand-build a block as a non-deduping encoder would: count=3, deltas for [2, 2, 5].
	var buf []byte
	buf = append(buf, 0x03)       // count = 3
	buf = append(buf, 0x02)       // delta -> 2
	buf = append(buf, 0x00)       // delta -> 2 (duplicate)
	buf = append(buf, 0x03)       // delta -> 5

	got, err := edgelist.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 2, 5}, got)
}

func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 9))
	for i := 0; i < 500; i++ {
		n := rng.IntN(200)
		ids := make([]uint64, n)
		for j := range ids {
			ids[j] = rng.Uint64N(1_000_000)
		}

		encoded := edgelist.Encode(ids)
		decoded, err := edgelist.Decode(encoded)
		require.NoError(t, err)

		assert.True(t, ascendingAndDeduped(decoded))
	}
}

func ascendingAndDeduped(ids []uint64) bool {
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			return false
		}
	}

	return true
}
