package recorder

import "MarketDash/internal/model"

// Recorder persists run history for later analysis.
type Recorder interface {
	RecordRun(rec *model.RunRecord) error
	Close() error
}
