package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/de-tools/cash-atlas/pkg/adapters"
	"github.com/de-tools/cash-atlas/pkg/models/api"
	"github.com/de-tools/cash-atlas/pkg/models/domain"
	"github.com/de-tools/cash-atlas/pkg/services/config"
	"github.com/de-tools/cash-atlas/pkg/services/dashboard"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	sources dashboard.SourceService
}

func NewHandler(sources dashboard.SourceService) *Handler {
	return &Handler{sources: sources}
}

func (h *Handler) ListSources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	sources, err := h.sources.ListSources(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	response := make([]api.Source, 0, len(sources))
	for _, s := range sources {
		response = append(response, adapters.MapSourceDomainToApi(s))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode sources")
	}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	source := chi.URLParam(r, "source")

	today := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			respondStatus(ctx, w, http.StatusBadRequest, "invalid 'date' format. Expected format: YYYY-MM-DD")
			return
		}
		today = parsed
	}

	dash, err := h.sources.GetDashboard(ctx, source, today, r.URL.Query().Get("project"))
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	if err := json.NewEncoder(w).Encode(adapters.MapDashboardDomainToApi(dash)); err != nil {
		logger.Error().
			Err(err).
			Str("source", source).
			Msg("failed to encode dashboard")
	}
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	source := chi.URLParam(r, "source")

	projects, err := h.sources.ListProjects(ctx, source)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	if err := json.NewEncoder(w).Encode(projects); err != nil {
		logger.Error().
			Err(err).
			Str("source", source).
			Msg("failed to encode projects")
	}
}

// respondError translates service failures: unknown profiles map to 404,
// ledger validation errors to 422, everything else to 500.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		missingCols  *domain.MissingColumnsError
		invalidMonth *domain.InvalidMonthError
		invalidDate  *domain.InvalidDateError
	)

	switch {
	case errors.Is(err, config.ErrProfileNotFound):
		respondStatus(ctx, w, http.StatusNotFound, err.Error())
	case errors.As(err, &missingCols),
		errors.As(err, &invalidMonth),
		errors.As(err, &invalidDate):
		respondStatus(ctx, w, http.StatusUnprocessableEntity, err.Error())
	default:
		zerolog.Ctx(ctx).Error().
			Err(err).
			Msg("dashboard request failed")
		respondStatus(ctx, w, http.StatusInternalServerError, "internal error")
	}
}

func respondStatus(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(api.Error{Error: msg}); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Msg("failed to encode error response")
	}
}
