package dto

import (
	"time"

	"github.com/eaglesemanation/wsexport/internal/domain"
)

// RunResponse represents an export run record in API responses.
type RunResponse struct {
	ID            string    `json:"id"`
	IdentityID    string    `json:"identity_id"`
	AccountIDs    []string  `json:"account_ids,omitempty"`
	TimeframeDays int       `json:"timeframe_days"`
	Filename      string    `json:"filename,omitempty"`
	RowCount      int       `json:"row_count"`
	Status        string    `json:"status"`
	Error         string    `json:"error,omitempty"`
	StartedAt     time.Time `json:"started_at"`
	DurationMs    int64     `json:"duration_ms"`
}

// RunFromDomain converts a domain run record to a response.
func RunFromDomain(run *domain.ExportRun) *RunResponse {
	return &RunResponse{
		ID:            run.ID,
		IdentityID:    run.IdentityID,
		AccountIDs:    run.AccountIDs,
		TimeframeDays: run.TimeframeDays,
		Filename:      run.Filename,
		RowCount:      run.RowCount,
		Status:        run.Status,
		Error:         run.Error,
		StartedAt:     run.StartedAt,
		DurationMs:    run.Duration.Milliseconds(),
	}
}

// RunsFromDomain converts domain run records to responses.
func RunsFromDomain(runs []*domain.ExportRun) []*RunResponse {
	result := make([]*RunResponse, len(runs))
	for i, run := range runs {
		result[i] = RunFromDomain(run)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
