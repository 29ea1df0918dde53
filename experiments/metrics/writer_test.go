package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, dir, name string) [][]string {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteGameRecords(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	records := []GameRecord{
		{
			ID: 0, Seed: 42, Players: 2, Territories: 5, Turns: 12,
			Winner: "Player1", WinnerColor: "Red", Mission: "Emperor",
			Eliminations: 1, Duration: 3 * time.Millisecond,
		},
		{ID: 1, Seed: 43, Players: 2, Territories: 5, Turns: 500},
	}
	require.NoError(t, writer.WriteGameRecords(records))

	rows := readCSV(t, writer.Dir(), "game_records.csv")
	require.Len(t, rows, 3, "header plus one row per game")
	require.Equal(t, "winner", rows[0][5])
	require.Equal(t, "Player1", rows[1][5])
	require.Equal(t, "Emperor", rows[1][7])
	require.Equal(t, "", rows[2][5], "stalled game has no winner")
}

func TestWriteMissionSummary(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	summaries := []MissionSummary{
		{Mission: "Conqueror", Wins: 4},
		{Mission: "Liberator", Wins: 0, Stub: true},
	}
	require.NoError(t, writer.WriteMissionSummary(summaries))

	rows := readCSV(t, writer.Dir(), "mission_summary.csv")
	require.Len(t, rows, 3)
	require.Equal(t, []string{"mission", "wins", "stub"}, rows[0])
	require.Equal(t, []string{"Conqueror", "4", "false"}, rows[1])
	require.Equal(t, []string{"Liberator", "0", "true"}, rows[2])
}
