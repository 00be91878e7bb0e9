package staff

import "time"

const (
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
)

// ImportRun is the audit record written around every import, file or
// directory sourced.
type ImportRun struct {
	ID           int64
	Source       string
	Mode         string
	SourcePath   string
	Status       string
	Processed    int64
	Created      int64
	Resurrected  int64
	ErrorMessage string
	StartedAt    time.Time
	FinishedAt   time.Time
}
