package handler

import (
	"net/http"

	"github.com/eaglesemanation/wsexport/internal/adapter/http/dto"
	"github.com/eaglesemanation/wsexport/internal/usecase"
)

const defaultRunsLimit = 20

// RunsHandler serves export run history.
type RunsHandler struct {
	lister usecase.RunLister
}

// NewRunsHandler creates a new RunsHandler.
func NewRunsHandler(lister usecase.RunLister) *RunsHandler {
	return &RunsHandler{lister: lister}
}

// List returns recent export runs, newest first.
func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", defaultRunsLimit)
	if limit < 1 || limit > 100 {
		limit = defaultRunsLimit
	}

	runs, err := h.lister.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list runs", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"runs": dto.RunsFromDomain(runs),
	})
}
