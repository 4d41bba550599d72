package dto

import (
	"github.com/eaglesemanation/wsexport/internal/domain"
	"github.com/eaglesemanation/wsexport/internal/usecase"
)

// ExportRequest represents a request to run an export.
type ExportRequest struct {
	IdentityID string   `json:"identity_id"`
	AccountIDs []string `json:"account_ids,omitempty"`
	Timeframe  string   `json:"timeframe"`
}

// ToUseCaseInput converts to use case input.
func (r *ExportRequest) ToUseCaseInput() (usecase.ExportInput, error) {
	timeframe, err := domain.ParseTimeframe(r.Timeframe)
	if err != nil {
		return usecase.ExportInput{}, err
	}
	return usecase.ExportInput{
		IdentityID: r.IdentityID,
		AccountIDs: r.AccountIDs,
		Timeframe:  timeframe,
	}, nil
}
