package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/eaglesemanation/wsexport/internal/adapter/graphql"
	"github.com/eaglesemanation/wsexport/internal/adapter/http/dto"
	"github.com/eaglesemanation/wsexport/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidTimeframe):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNoAccountTypeLabel):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNoCustodianAccounts):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrPayoutAccountNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrFundsTransferNotResolved):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSpendTransactionNotResolved):
		return http.StatusUnprocessableEntity
	case errors.Is(err, graphql.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
