package recorder

import (
	"encoding/csv"
	"math"
	"os"
	"testing"
	"time"

	"TradeSentinel/internal/model"

	"github.com/google/uuid"
)

func TestWriteRunCSV(t *testing.T) {
	run := &model.RunResult{
		ID:        uuid.NewString(),
		StartedAt: time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
		Rows: []model.RunRow{
			{
				Name: "삼성전자", Code: "005930.KS", Price: 71000, RSI: 27.5,
				Action: model.ActionEnter, TakeProfit: 74550, StopLoss: 68870,
				Exec: &model.ExecutionResult{Success: true, Message: "[paper] buy order filled (simulated)"},
			},
			{Name: "카카오", Code: "035720.KS", Price: 42000, RSI: math.NaN(), Action: model.ActionHold},
			{Name: "네이버", Code: "035420.KS", Err: "fetch: connection refused"},
		},
		ExpectedProfit: 3550,
	}

	path, err := WriteRunCSV(t.TempDir(), run)
	if err != nil {
		t.Fatalf("write csv: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d records", len(records))
	}
	if records[1][0] != "삼성전자" || records[1][4] != "ENTER" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	if records[2][3] != "" {
		t.Errorf("NaN oscillator should export as empty, got %q", records[2][3])
	}
	if records[3][9] != "fetch: connection refused" {
		t.Errorf("error marker missing: %v", records[3])
	}
}
