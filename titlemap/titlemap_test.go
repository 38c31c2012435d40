package titlemap_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlinknet/wlinknet/errs"
	"github.com/wlinknet/wlinknet/titlemap"
)

func TestBuilder_Intern_AssignsDenseIDsInOrder(t *testing.T) {
	b := titlemap.NewBuilder()

	idA, freshA, err := b.Intern("A")
	require.NoError(t, err)
	assert.True(t, freshA)
	assert.Equal(t, uint64(0), idA)

	idB, freshB, err := b.Intern("B")
	require.NoError(t, err)
	assert.True(t, freshB)
	assert.Equal(t, uint64(1), idB)

	idA2, freshA2, err := b.Intern("A")
	require.NoError(t, err)
	assert.False(t, freshA2)
	assert.Equal(t, uint64(0), idA2)

	assert.Equal(t, uint32(2), b.NodeCount())
}

func TestBuilder_Intern_RejectsTabAndNewline(t *testing.T) {
	b := titlemap.NewBuilder()

	_, _, err := b.Intern("bad\ttitle")
	assert.ErrorIs(t, err, errs.ErrInvalidTitle)

	_, _, err = b.Intern("bad\ntitle")
	assert.ErrorIs(t, err, errs.ErrInvalidTitle)
}

func TestBuilder_TitleOf(t *testing.T) {
	b := titlemap.NewBuilder()
	id, _, err := b.Intern("Hello World")
	require.NoError(t, err)

	assert.Equal(t, "Hello World", b.TitleOf(id))
}

func TestWriteSidecar_LoadSidecar_RoundTrip(t *testing.T) {
	b := titlemap.NewBuilder()
	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		_, _, err := b.Intern(title)
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, titlemap.WriteSidecar(&buf, b.Titles()))

	assert.Equal(t, "0\tAlpha\n1\tBeta\n2\tGamma\n", buf.String())

	m, err := titlemap.LoadSidecar(&buf, nil)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), m.NodeCount())

	for i, want := range []string{"Alpha", "Beta", "Gamma"} {
		got, ok := m.TitleOf(uint64(i))
		assert.True(t, ok)
		assert.Equal(t, want, got)

		id, ok := m.IDOf(want)
		assert.True(t, ok)
		assert.Equal(t, uint64(i), id)
	}

	_, ok := m.IDOf("Nonexistent")
	assert.False(t, ok)

	_, ok = m.TitleOf(99)
	assert.False(t, ok)
}

func TestLoadSidecar_SkipsMalformedLines(t *testing.T) {
	input := "0\tAlpha\n" +
		"not a valid line\n" +
		"abc\tBeta\n" +
		"1\tBeta\n"

	m, err := titlemap.LoadSidecar(bytes.NewBufferString(input), slog.Default())
	require.NoError(t, err)

	assert.Equal(t, uint32(2), m.NodeCount())

	id, ok := m.IDOf("Alpha")
	assert.True(t, ok)
	assert.Equal(t, uint64(0), id)

	id, ok = m.IDOf("Beta")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), id)
}

func TestLoadSidecar_EmptyInput(t *testing.T) {
	m, err := titlemap.LoadSidecar(bytes.NewBufferString(""), nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), m.NodeCount())
}
