package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment results as CSV files under a timestamped
// subfolder of the base directory.
type Writer struct {
	baseDir string
}

func NewWriter(resultsDir string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(resultsDir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory records are written into.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "seed", "players", "territories", "turns", "winner", "winner_color", "mission", "mission_stub", "eliminations", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Players),
			strconv.Itoa(record.Territories),
			strconv.Itoa(record.Turns),
			record.Winner,
			record.WinnerColor,
			record.Mission,
			strconv.FormatBool(record.MissionStub),
			strconv.Itoa(record.Eliminations),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

// MissionSummary aggregates win counts per mission across a batch.
type MissionSummary struct {
	Mission string
	Wins    int
	Stub    bool
}

func (w *Writer) WriteMissionSummary(summaries []MissionSummary) error {
	path := filepath.Join(w.baseDir, "mission_summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create mission summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"mission", "wins", "stub"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write mission summary header: %w", err)
	}

	for _, summary := range summaries {
		row := []string{
			summary.Mission,
			strconv.Itoa(summary.Wins),
			strconv.FormatBool(summary.Stub),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write mission summary row: %w", err)
		}
	}

	return nil
}
