package recorder

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"TradeSentinel/internal/model"
)

// WriteRunCSV exports one pass's result set as a tabular report, one row per
// instrument. The file is named after the pass ID inside dir.
func WriteRunCSV(dir string, run *model.RunResult) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("run_%s_%s.csv", run.StartedAt.Format("20060102_150405"), run.ID[:8]))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"name", "code", "price", "rsi", "action", "take_profit", "stop_loss", "order_ok", "order_msg", "error"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for _, row := range run.Rows {
		execOK, execMsg := "", ""
		if row.Exec != nil {
			execOK = strconv.FormatBool(row.Exec.Success)
			execMsg = row.Exec.Message
		}
		record := []string{
			row.Name,
			row.Code,
			csvFloat(row.Price),
			csvFloat(row.RSI),
			string(row.Action),
			csvFloat(row.TakeProfit),
			csvFloat(row.StopLoss),
			execOK,
			execMsg,
			row.Err,
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush report: %w", err)
	}
	return path, nil
}

func csvFloat(v float64) string {
	if v == 0 || math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
