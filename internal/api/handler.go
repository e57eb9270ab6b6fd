package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/batch"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/config"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/database"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
	"github.com/rs/zerolog"
)

// ResultStore persists analysis results. It is optional.
type ResultStore interface {
	SaveResult(ctx context.Context, result models.AnalysisResult) error
	GetResult(ctx context.Context, id string) (*models.AnalysisResult, error)
}

type HealthResponse struct {
	Status string `json:"status"`
}

type CasesResponse struct {
	Results []models.AnalysisResult `json:"results"`
	Summary batch.Summary           `json:"summary"`
}

type Handler struct {
	executor      batch.Executor
	cases         *config.CasesConfig
	store         ResultStore
	maxInputBytes int
	logger        *zerolog.Logger
}

func NewHandler(executor batch.Executor, cases *config.CasesConfig, store ResultStore, maxInputBytes int, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor:      executor,
		cases:         cases,
		store:         store,
		maxInputBytes: maxInputBytes,
		logger:        logger,
	}
}

// GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{Status: "ok"})
}

// POST /api/v1/analyze
// Body: AnalysisRequest
// Returns: AnalysisResult
func (h *Handler) Analyze(req *restful.Request, resp *restful.Response) {
	var analysisRequest models.AnalysisRequest
	if err := req.ReadEntity(&analysisRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := h.validate(analysisRequest); err != nil {
		h.logger.Warn().Err(err).Str("case_id", analysisRequest.CaseID).Msg("Rejected request")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("case_id", analysisRequest.CaseID).
		Int("input_bytes", len(analysisRequest.Input)).
		Msg("Start analysis")

	ctx := req.Request.Context()
	result := h.executor.Execute(ctx, models.NewAnalysisContext(analysisRequest))
	h.save(ctx, result)

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/cases/run
// Returns: CasesResponse for every configured case
func (h *Handler) RunCases(req *restful.Request, resp *restful.Response) {
	ctx := req.Request.Context()
	response := CasesResponse{Results: make([]models.AnalysisResult, 0, len(h.cases.Cases))}

	for _, c := range h.cases.Cases {
		result := h.executor.Execute(ctx, models.NewAnalysisContext(c.Request()))
		h.save(ctx, result)
		response.Results = append(response.Results, result)
		response.Summary.Add(result)
	}

	h.logger.Info().
		Int("total", response.Summary.Total).
		Int("passed", response.Summary.Passed).
		Int("failed", response.Summary.Failed).
		Msg("Cases run complete")

	resp.WriteHeaderAndEntity(http.StatusOK, response)
}

// GET /api/v1/results/{id}
func (h *Handler) GetResult(req *restful.Request, resp *restful.Response) {
	if h.store == nil {
		middleware.HandleError(resp, errors.New("result store not configured"), http.StatusServiceUnavailable)
		return
	}

	id := req.PathParameter("id")
	result, err := h.store.GetResult(req.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		middleware.HandleError(resp, fmt.Errorf("result %q not found", id), http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("Failed to load result")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

func (h *Handler) validate(req models.AnalysisRequest) error {
	if h.maxInputBytes > 0 && len(req.Input) > h.maxInputBytes {
		return fmt.Errorf("input is %d bytes, limit is %d", len(req.Input), h.maxInputBytes)
	}
	if req.Expected != nil && *req.Expected < 0 {
		return fmt.Errorf("expected length must be non-negative, got %d", *req.Expected)
	}
	return nil
}

func (h *Handler) save(ctx context.Context, result models.AnalysisResult) {
	if h.store == nil || result.ID == "" {
		return
	}
	if err := h.store.SaveResult(ctx, result); err != nil {
		h.logger.Error().Err(err).Str("id", result.ID).Msg("Failed to save result")
	}
}
