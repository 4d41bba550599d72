package domain

import "time"

// Export run statuses.
const (
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// ExportRun is the audit record of one export run, persisted in server mode.
type ExportRun struct {
	ID            string
	IdentityID    string
	AccountIDs    []string
	TimeframeDays int
	Filename      string
	RowCount      int
	Status        string
	Error         string
	StartedAt     time.Time
	Duration      time.Duration
}
