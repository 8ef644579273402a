package director

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// JourneysDir is where generated journeys are written and looked up.
const JourneysDir = "journeys"

// GenerateJourneyPath creates a timestamped journey filename
func GenerateJourneyPath() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(JourneysDir, fmt.Sprintf("journey_%s.yaml", timestamp))
}

// FindLatestJourney finds the most recently modified journey file in dir
func FindLatestJourney(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read journeys directory: %w", err)
	}

	var journeys []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			journeys = append(journeys, filepath.Join(dir, entry.Name()))
		}
	}

	if len(journeys) == 0 {
		return "", fmt.Errorf("no journey files found in %s", dir)
	}

	// Newest first
	sort.Slice(journeys, func(i, j int) bool {
		infoI, _ := os.Stat(journeys[i])
		infoJ, _ := os.Stat(journeys[j])
		return infoI.ModTime().After(infoJ.ModTime())
	})

	return journeys[0], nil
}
