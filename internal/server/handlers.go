package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/osse101/CarloSlots_Go/internal/config"
	"github.com/osse101/CarloSlots_Go/internal/domain"
	"github.com/osse101/CarloSlots_Go/internal/logger"
	"github.com/osse101/CarloSlots_Go/internal/metrics"
	"github.com/osse101/CarloSlots_Go/internal/scenario"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status string `json:"status"`
}

// ProgressResponse reports sweep progress
type ProgressResponse struct {
	Done  int64 `json:"done"`
	Total int64 `json:"total"`
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// RunRequest asks for one synchronous scenario run
type RunRequest struct {
	Scenario string `json:"scenario" validate:"required"`
	Players  int    `json:"players" validate:"min=0,max=75"`
	Spins    int    `json:"spins" validate:"min=1,max=100000"`
	Seed     uint64 `json:"seed"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgEncodeFailed, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string, details map[string]string) {
	respondJSON(w, r, status, ErrorResponse{Error: message, Details: details})
}

// HandleHealthz reports liveness
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleProgress reports how far the current sweep has come
// @Summary Sweep progress
// @Description Runs scheduled and completed by sweeps since the process started
// @Tags runs
// @Produce json
// @Success 200 {object} ProgressResponse
// @Router /api/v1/progress [get]
func HandleProgress(p *scenario.Progress) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, ProgressResponse{Done: p.Done(), Total: p.Total()})
	}
}

// HandleListScenarios lists the catalog
// @Summary List scenarios
// @Tags scenarios
// @Produce json
// @Success 200 {array} scenario.Summary
// @Router /api/v1/scenarios/ [get]
func HandleListScenarios(reg *scenario.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, reg.Summaries())
	}
}

// HandleGetScenario returns one scenario definition
// @Summary Get a scenario
// @Tags scenarios
// @Produce json
// @Param id path string true "Scenario id"
// @Success 200 {object} scenario.Scenario
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/scenarios/{id} [get]
func HandleGetScenario(reg *scenario.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, err := reg.Get(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, r, http.StatusNotFound, ErrMsgScenarioNotFound, nil)
			return
		}
		respondJSON(w, r, http.StatusOK, sc)
	}
}

// HandleRun runs a catalog scenario and returns its result
// @Summary Run a scenario
// @Description Simulates a catalog scenario synchronously. Seed 0 draws a random seed, which is returned in the result.
// @Tags runs
// @Accept json
// @Produce json
// @Param request body RunRequest true "Run parameters"
// @Success 200 {object} scenario.Result
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/runs [post]
func HandleRun(reg *scenario.Registry, engine *scenario.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RunRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, r, http.StatusBadRequest, ErrMsgInvalidBody, nil)
			return
		}
		if err := validate.Struct(req); err != nil {
			respondError(w, r, http.StatusBadRequest, ErrMsgInvalidBody, config.FormatValidationError(err))
			return
		}

		sc, err := reg.Get(req.Scenario)
		if err != nil {
			respondError(w, r, http.StatusNotFound, ErrMsgScenarioNotFound, nil)
			return
		}

		res, err := engine.Run(r.Context(), sc, req.Players, req.Spins, req.Seed)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgRunFailed, "scenario", req.Scenario, "error", err)
			status := http.StatusInternalServerError
			if errors.Is(err, domain.ErrInvalidConfig) || errors.Is(err, domain.ErrInvalidPlayerCount) {
				status = http.StatusBadRequest
			}
			respondError(w, r, status, ErrMsgRunFailed, nil)
			return
		}
		if !res.Cached {
			metrics.RecordRun(res.ScenarioID, res.Analysis, res.CompletedAt.Sub(res.StartedAt))
		}
		respondJSON(w, r, http.StatusOK, res)
	}
}
