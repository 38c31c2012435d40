package reader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlinknet/wlinknet/errs"
	"github.com/wlinknet/wlinknet/graphstore/reader"
	"github.com/wlinknet/wlinknet/graphstore/writer"
	"github.com/wlinknet/wlinknet/section"
)

func buildStore(t *testing.T, records map[string][]string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	binPath := filepath.Join(dir, "wikigraph.bin")
	sidecarPath := filepath.Join(dir, "wikigraph.sidecar")

	w, err := writer.Open(binPath, sidecarPath)
	require.NoError(t, err)

	for _, src := range []string{"A", "B", "C"} {
		if dsts, ok := records[src]; ok {
			require.NoError(t, w.Ingest(src, dsts))
		}
	}
	require.NoError(t, w.Finalize())

	return binPath, sidecarPath
}

func TestReader_NeighborsAndTitleLookup(t *testing.T) {
	binPath, sidecarPath := buildStore(t, map[string][]string{
		"A": {"B", "C"},
		"B": {},
	})

	r, err := reader.Open(binPath, sidecarPath)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, uint32(3), r.NodeCount())

	aID, ok := r.IDOf("A")
	require.True(t, ok)
	assert.Equal(t, uint64(0), aID)

	dsts, err := r.Neighbors(aID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, dsts)

	bID, ok := r.IDOf("B")
	require.True(t, ok)
	dsts, err = r.Neighbors(bID)
	require.NoError(t, err)
	assert.Empty(t, dsts)

	title, ok := r.TitleOf(2)
	require.True(t, ok)
	assert.Equal(t, "C", title)

	assert.True(t, r.HasEdges(aID))
	assert.False(t, r.HasEdges(bID))
}

func TestReader_NeighborsMissReturnsEmptyNoError(t *testing.T) {
	binPath, sidecarPath := buildStore(t, map[string][]string{"A": {"B"}})

	r, err := reader.Open(binPath, sidecarPath)
	require.NoError(t, err)
	defer r.Close()

	dsts, err := r.Neighbors(999)
	require.NoError(t, err)
	assert.Empty(t, dsts)
	assert.False(t, r.HasEdges(999))
}

func TestReader_InvalidMagic(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "bad.bin")
	sidecarPath := filepath.Join(dir, "bad.sidecar")

	require.NoError(t, os.WriteFile(binPath, []byte("NOTWLINK\x01\x00\x00\x00\x00\x00\x00\x00"), 0o644))
	require.NoError(t, os.WriteFile(sidecarPath, nil, 0o644))

	_, err := reader.Open(binPath, sidecarPath)
	assert.Error(t, err)
}

func TestReader_Truncated(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "short.bin")
	sidecarPath := filepath.Join(dir, "short.sidecar")

	require.NoError(t, os.WriteFile(binPath, []byte("WLINKNET"), 0o644))
	require.NoError(t, os.WriteFile(sidecarPath, nil, 0o644))

	_, err := reader.Open(binPath, sidecarPath)
	assert.Error(t, err)
}

func TestReader_CorruptBlock_OtherIDsStillSucceed(t *testing.T) {
	binPath, sidecarPath := buildStore(t, map[string][]string{
		"A": {"B"},
		"C": {"A"},
	})

	// A (id 0) sorts before C (id 2), so A's block is the first one
	// written, starting right after the fixed header.
	bin, err := os.ReadFile(binPath)
	require.NoError(t, err)
	require.Greater(t, len(bin), section.HeaderSize+4)
	bin[section.HeaderSize+4] ^= 0xFF
	require.NoError(t, os.WriteFile(binPath, bin, 0o644))

	r, err := reader.Open(binPath, sidecarPath)
	require.NoError(t, err)
	defer r.Close()

	aID, ok := r.IDOf("A")
	require.True(t, ok)
	_, err = r.Neighbors(aID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrBlockCorrupt))

	cID, ok := r.IDOf("C")
	require.True(t, ok)
	dsts, err := r.Neighbors(cID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{aID}, dsts)
}

func TestReader_BlockCache(t *testing.T) {
	binPath, sidecarPath := buildStore(t, map[string][]string{"A": {"B", "C"}})

	r, err := reader.Open(binPath, sidecarPath, reader.WithBlockCache(4))
	require.NoError(t, err)
	defer r.Close()

	first, err := r.Neighbors(0)
	require.NoError(t, err)

	second, err := r.Neighbors(0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
