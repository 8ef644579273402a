package journey

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJourneyWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airy.yaml")

	require.NoError(t, WriteFile(Airy(), path))

	read, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Airy().Sections(), read.Sections())
	assert.Equal(t, Airy().Locate(0.63), read.Locate(0.63))
}

func TestDecodeRejectsInvalidTable(t *testing.T) {
	src := `
version: "1.0"
sections:
  - name: hero
    start: 0
    end: 0.4
    pose: {scale: 1}
  - name: cta
    start: 0.5
    end: 1
    pose: {scale: 1}
`
	_, err := Decode(strings.NewReader(src))
	require.ErrorIs(t, err, ErrGap)
	assert.Contains(t, err.Error(), "hero")
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	_, err := Decode(strings.NewReader("version: \"9\"\nsections: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPreset(t *testing.T) {
	for _, name := range []string{"airy", "orbit", "identity", ""} {
		j, ok := Preset(name)
		require.True(t, ok, name)
		assert.Equal(t, 1.0, j.Keyframe(j.Len()-1).End)
	}
	_, ok := Preset("nope")
	assert.False(t, ok)
}
