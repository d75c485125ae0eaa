package tournament

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, "tournament", timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory the writer stores files in.
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

	header := []string{"id", "map", "game", "winner", "leader", "rounds", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			record.Map,
			strconv.Itoa(record.Game),
			record.Winner,
			record.Leader,
			strconv.Itoa(record.Rounds),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

// WriteSummary writes one row per map with the winner of each game.
func (w *Writer) WriteSummary(records []GameRecord, games int) error {
	path := filepath.Join(w.baseDir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"map"}
	for i := 1; i <= games; i++ {
		header = append(header, fmt.Sprintf("game_%d", i))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	for _, row := range Summarize(records, games) {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return nil
}

// Summarize lays out winners as rows of map name followed by one cell per game, maps in order of
// first appearance.
func Summarize(records []GameRecord, games int) [][]string {
	var rows [][]string
	rowByMap := map[string]int{}
	for _, record := range records {
		i, ok := rowByMap[record.Map]
		if !ok {
			i = len(rows)
			rowByMap[record.Map] = i
			row := make([]string, games+1)
			row[0] = record.Map
			rows = append(rows, row)
		}
		if record.Game >= 1 && record.Game <= games {
			rows[i][record.Game] = record.Winner
		}
	}
	return rows
}
