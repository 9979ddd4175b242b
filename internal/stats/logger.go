package stats

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"zole/internal/engine"
)

var csvFields = []string{
	"large_win_0", "large_win_1", "large_win_2",
	"small_win_0", "small_win_1", "small_win_2",
	"as_large_0", "as_large_1", "as_large_2",
	"score_0", "score_1", "score_2",
}

// Logger appends per-seat performance rows to performance.csv in logDir.
type Logger struct {
	file   *os.File
	writer *csv.Writer
}

func NewLogger(logDir string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(filepath.Join(logDir, "performance.csv"))
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if err := w.Write(csvFields); err != nil {
		f.Close()
		return nil, err
	}
	return &Logger{file: f, writer: w}, nil
}

// LogPerformance writes one row from the tracker's current rates plus the
// accumulated score per seat.
func (l *Logger) LogPerformance(t *Tracker, scores [engine.NumPlayers]float64) error {
	row := make([]string, 0, len(csvFields))
	for seat := 0; seat < engine.NumPlayers; seat++ {
		row = append(row, formatRate(t.LargeWinRate(seat)))
	}
	for seat := 0; seat < engine.NumPlayers; seat++ {
		row = append(row, formatRate(t.SmallWinRate(seat)))
	}
	for seat := 0; seat < engine.NumPlayers; seat++ {
		row = append(row, formatRate(t.AsLargeRate(seat)))
	}
	for seat := 0; seat < engine.NumPlayers; seat++ {
		row = append(row, formatRate(scores[seat]))
	}
	return l.writer.Write(row)
}

func (l *Logger) Close() error {
	l.writer.Flush()
	if err := l.writer.Error(); err != nil {
		l.file.Close()
		return err
	}
	return l.file.Close()
}

func formatRate(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
