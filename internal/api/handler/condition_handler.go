package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/midori-health/condition-tracker/internal/domain"
	"github.com/midori-health/condition-tracker/internal/llm"
	"github.com/midori-health/condition-tracker/internal/service"
	"github.com/midori-health/condition-tracker/pkg/problem"
)

// ConditionHandler handles derived-signal endpoints.
type ConditionHandler struct {
	conditionService service.ConditionService
	summaryService   service.SummaryService
}

// NewConditionHandler creates a new ConditionHandler.
func NewConditionHandler(conditionService service.ConditionService, summaryService service.SummaryService) *ConditionHandler {
	return &ConditionHandler{
		conditionService: conditionService,
		summaryService:   summaryService,
	}
}

// GetFeatures handles GET /v1/users/{userId}/condition/features
// @Summary Get derived daily features
// @Description Derive causal per-day signals from the user's full history. Each day's values use only information available before or at that day's start.
// @Tags condition
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.DerivedSeries "Derived features, one entry per logged day"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/condition/features [get]
func (h *ConditionHandler) GetFeatures(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.conditionService.Features(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to derive features").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetReadiness handles GET /v1/users/{userId}/condition/readiness
// @Summary Get readiness gate status
// @Description Evaluate how much usable history exists and which output horizons are unlocked.
// @Tags condition
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.ReadinessStatus "Readiness gate snapshot"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/condition/readiness [get]
func (h *ConditionHandler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.conditionService.Readiness(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to evaluate readiness").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetAdvice handles GET /v1/users/{userId}/condition/advice
// @Summary Get comparative advice
// @Description Return the current advice list: a stored model snapshot when one exists for today, otherwise the built-in comparative engine's output.
// @Tags condition
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.AdviceResponse "Advice list with source marking"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/condition/advice [get]
func (h *ConditionHandler) GetAdvice(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.conditionService.Advice(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to build advice").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetSummary handles GET /v1/users/{userId}/condition/summary
// @Summary Get LLM-powered wellbeing summary
// @Description Generate a narrative summary using readiness, advice, and recent derived signals.
// @Tags condition
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.SummaryResponse "Wellbeing summary with LLM narrative"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/condition/summary [get]
func (h *ConditionHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.summaryService.Generate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate summary from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate summary").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
