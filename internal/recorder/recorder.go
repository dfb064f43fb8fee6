package recorder

import "TradeSentinel/internal/model"

// Recorder persists each pass's result set for offline inspection.
type Recorder interface {
	RecordRun(run *model.RunResult, account model.Account) error
	Close() error
}
