package director

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJourneyPath(t *testing.T) {
	path := GenerateJourneyPath()

	assert.True(t, strings.HasPrefix(path, JourneysDir+string(filepath.Separator)))
	assert.Contains(t, filepath.Base(path), "journey_")
	assert.Equal(t, ".yaml", filepath.Ext(path))
}

func TestFindLatestJourney(t *testing.T) {
	dir := t.TempDir()

	files := []string{
		filepath.Join(dir, "journey_2026-02-12_10-00-00.yaml"),
		filepath.Join(dir, "journey_2026-02-13_01-00-00.yaml"),
		filepath.Join(dir, "journey_2026-02-11_15-30-00.yaml"),
	}
	for i, f := range files {
		require.NoError(t, os.WriteFile(f, []byte("version: \"1.0\"\n"), 0644))
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		require.NoError(t, os.Chtimes(f, modTime, modTime))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	latest, err := FindLatestJourney(dir)
	require.NoError(t, err)
	assert.Equal(t, files[len(files)-1], latest)
}

func TestFindLatestJourneyEmpty(t *testing.T) {
	_, err := FindLatestJourney(t.TempDir())
	assert.Error(t, err)

	_, err = FindLatestJourney(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
