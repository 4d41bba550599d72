package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eaglesemanation/wsexport/internal/adapter/http/dto"
	rediscache "github.com/eaglesemanation/wsexport/internal/adapter/repository/redis"
	"github.com/eaglesemanation/wsexport/internal/infrastructure/metrics"
	"github.com/eaglesemanation/wsexport/internal/infrastructure/session"
	"github.com/eaglesemanation/wsexport/internal/usecase"
)

// ExportService runs exports on behalf of one session.
type ExportService interface {
	Export(ctx context.Context, input usecase.ExportInput) (*usecase.ExportResult, error)
}

// ServiceFactory builds a session-bound export service for a bearer token.
type ServiceFactory func(token string) ExportService

// ExportHandler handles export requests.
type ExportHandler struct {
	newService ServiceFactory
	cache      usecase.DocumentCache // optional
	cacheTTL   time.Duration
	metrics    *metrics.Metrics // optional
	logger     zerolog.Logger
}

// NewExportHandler creates a new ExportHandler. cache and metrics may be nil.
func NewExportHandler(newService ServiceFactory, cache usecase.DocumentCache, cacheTTL time.Duration, m *metrics.Metrics, logger zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		newService: newService,
		cache:      cache,
		cacheTTL:   cacheTTL,
		metrics:    m,
		logger:     logger.With().Str("component", "export_handler").Logger(),
	}
}

// cachedExport is the cache envelope; the filename must survive alongside the
// document bytes.
type cachedExport struct {
	RunID    string `json:"run_id"`
	Filename string `json:"filename"`
	Document []byte `json:"document"`
}

// Create runs an export and returns the CSV document.
func (h *ExportHandler) Create(w http.ResponseWriter, r *http.Request) {
	token, cookieIdentity, ok := credentials(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing credentials", "provide a bearer token or session cookie")
		return
	}

	var req dto.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.IdentityID == "" {
		req.IdentityID = cookieIdentity
	}
	if req.IdentityID == "" {
		writeError(w, http.StatusBadRequest, "missing identity_id", "identity_id is required when no session cookie is present")
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid timeframe", err.Error())
		return
	}

	var cacheKey string
	if h.cache != nil {
		cacheKey = rediscache.CacheKey(token, req.IdentityID, req.AccountIDs, req.Timeframe)
		if h.serveCached(w, r, cacheKey) {
			return
		}
	}

	started := time.Now()
	result, err := h.newService(token).Export(r.Context(), input)
	if err != nil {
		h.observeExport(started, 0, err)
		writeError(w, mapDomainError(err), "export failed", err.Error())
		return
	}
	h.observeExport(started, result.RowCount, nil)

	if h.cache != nil {
		h.storeCached(r.Context(), cacheKey, result)
	}

	writeDocument(w, result.RunID, result.Filename, result.Document, false)
}

func (h *ExportHandler) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	raw, hit, err := h.cache.Get(r.Context(), key)
	if err != nil {
		if h.metrics != nil {
			h.metrics.CacheErrors.Inc()
		}
		h.logger.Warn().Err(err).Msg("document cache get failed")
		return false
	}
	if !hit {
		if h.metrics != nil {
			h.metrics.CacheMisses.Inc()
		}
		return false
	}

	var cached cachedExport
	if err := json.Unmarshal(raw, &cached); err != nil {
		h.logger.Warn().Err(err).Msg("discarding undecodable cached document")
		return false
	}
	if h.metrics != nil {
		h.metrics.CacheHits.Inc()
	}
	writeDocument(w, cached.RunID, cached.Filename, cached.Document, true)
	return true
}

func (h *ExportHandler) storeCached(ctx context.Context, key string, result *usecase.ExportResult) {
	raw, err := json.Marshal(cachedExport{
		RunID:    result.RunID,
		Filename: result.Filename,
		Document: result.Document,
	})
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, key, raw, h.cacheTTL); err != nil {
		if h.metrics != nil {
			h.metrics.CacheErrors.Inc()
		}
		h.logger.Warn().Err(err).Msg("document cache set failed")
	}
}

func (h *ExportHandler) observeExport(started time.Time, rows int, err error) {
	if h.metrics == nil {
		return
	}
	if err != nil {
		h.metrics.ExportsFailed.Inc()
		return
	}
	h.metrics.ExportsCompleted.Inc()
	h.metrics.ExportDuration.Observe(time.Since(started).Seconds())
	h.metrics.ExportRows.Observe(float64(rows))
}

func writeDocument(w http.ResponseWriter, runID, filename string, document []byte, fromCache bool) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.csv"`)
	if runID != "" {
		w.Header().Set("X-Export-Run-Id", runID)
	}
	if fromCache {
		w.Header().Set("X-Export-Cache", "hit")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}

// credentials extracts the bearer token, preferring the Authorization header
// over the session cookie. The cookie also carries the identity id.
func credentials(r *http.Request) (token, identityID string, ok bool) {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer "), "", true
	}

	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return "", "", false
	}
	s, err := session.ParseCookieValue(cookie.Value)
	if err != nil {
		return "", "", false
	}
	return s.AccessToken, s.IdentityID, true
}
