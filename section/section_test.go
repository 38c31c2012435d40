package section_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlinknet/wlinknet/errs"
	"github.com/wlinknet/wlinknet/section"
)

func TestHeader_RoundTrip(t *testing.T) {
	h := section.NewHeader(section.VersionDeflate)
	h.NodeCount = 42

	parsed, err := section.ParseHeader(h.Bytes())
	require.NoError(t, err)
	assert.Equal(t, h, parsed)
}

func TestHeader_Magic(t *testing.T) {
	b := section.NewHeader(section.VersionDeflate).Bytes()
	assert.Equal(t, "WLINKNET", string(b[0:8]))
}

func TestParseHeader_InvalidMagic(t *testing.T) {
	b := section.NewHeader(section.VersionDeflate).Bytes()
	b[0] = 'X'

	_, err := section.ParseHeader(b)
	assert.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestParseHeader_UnsupportedVersion(t *testing.T) {
	h := section.NewHeader(section.Version(99))
	_, err := section.ParseHeader(h.Bytes())
	assert.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestParseHeader_Truncated(t *testing.T) {
	_, err := section.ParseHeader(make([]byte, 4))
	assert.ErrorIs(t, err, errs.ErrTruncated)
}

func TestPatchNodeCount(t *testing.T) {
	b := section.NewHeader(section.VersionDeflate).Bytes()
	section.PatchNodeCount(b, 1000)

	parsed, err := section.ParseHeader(b)
	require.NoError(t, err)
	assert.Equal(t, uint32(1000), parsed.NodeCount)
}

func TestIndexEntry_RoundTrip(t *testing.T) {
	b := make([]byte, section.IndexEntrySize)
	e := section.IndexEntry{ID: 7, Offset: 123456789}
	e.WriteTo(b, 0)

	parsed, err := section.ParseIndexEntry(b)
	require.NoError(t, err)
	assert.Equal(t, e, parsed)
}

func TestParseIndexEntry_Truncated(t *testing.T) {
	_, err := section.ParseIndexEntry(make([]byte, 8))
	assert.ErrorIs(t, err, errs.ErrTruncated)
}
