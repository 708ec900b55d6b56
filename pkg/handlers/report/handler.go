package report

import (
	"encoding/json"
	"net/http"

	"github.com/cosmo-tools/astro-atlas/pkg/adapters"
	"github.com/cosmo-tools/astro-atlas/pkg/models/api"
	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
	engine "github.com/cosmo-tools/astro-atlas/pkg/services/report"
	"github.com/cosmo-tools/astro-atlas/pkg/store/memory"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Service is the engine surface the handler depends on.
type Service interface {
	Generate(p domain.Profile, durationYears int) (domain.AstrologyReport, error)
}

// Handler serves the report API. Generated reports are cached by the
// engine's cache key, and concurrent requests for the same key are
// collapsed into a single generation through the singleflight group.
type Handler struct {
	service Service
	cache   *memory.Store
	group   singleflight.Group
}

func NewHandler(service Service, cache *memory.Store) *Handler {
	return &Handler{service: service, cache: cache}
}

// GenerateReport handles POST /api/v1/reports.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile := adapters.MapProfileApiToDomain(req.Profile)
	if violations := engine.ValidateProfile(profile); len(violations) > 0 {
		writeJSON(w, logger, http.StatusBadRequest, api.ValidateProfileResponse{
			Valid:      false,
			Violations: adapters.MapViolationsDomainToApi(violations),
		})
		return
	}

	key := engine.CacheKey(profile, req.Duration)
	if cached, ok := h.cache.Get(key); ok {
		writeJSON(w, logger, http.StatusOK, adapters.MapAstrologyReportDomainToApi(cached))
		return
	}

	result, err, _ := h.group.Do(key, func() (any, error) {
		generated, err := h.service.Generate(profile, req.Duration)
		if err != nil {
			return nil, err
		}
		h.cache.Set(key, generated)
		return generated, nil
	})
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("report generation failed")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, logger, http.StatusOK, adapters.MapAstrologyReportDomainToApi(result.(domain.AstrologyReport)))
}

// ValidateProfile handles POST /api/v1/reports/validate.
func (h *Handler) ValidateProfile(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var profile api.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	violations := engine.ValidateProfile(adapters.MapProfileApiToDomain(profile))
	writeJSON(w, logger, http.StatusOK, api.ValidateProfileResponse{
		Valid:      len(violations) == 0,
		Violations: adapters.MapViolationsDomainToApi(violations),
	})
}

// GetCacheKey handles POST /api/v1/reports/key.
func (h *Handler) GetCacheKey(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req api.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	key := engine.CacheKey(adapters.MapProfileApiToDomain(req.Profile), req.Duration)
	writeJSON(w, logger, http.StatusOK, api.CacheKeyResponse{Key: key})
}

// ListDomains handles GET /api/v1/content/domains.
func (h *Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	names := make([]string, 0, len(domain.Domains))
	for _, d := range domain.Domains {
		names = append(names, string(d))
	}
	writeJSON(w, logger, http.StatusOK, names)
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
