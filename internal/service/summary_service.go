package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/midori-health/condition-tracker/internal/domain"
	"github.com/midori-health/condition-tracker/internal/llm"
)

// Number of derived days handed to the LLM as short-term context.
const summaryRecentDays = 14

// SummaryService generates a narrative wellbeing summary.
type SummaryService interface {
	// Generate creates a wellbeing summary for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.SummaryResponse, error)
}

type summaryService struct {
	conditionService ConditionService
	llmClient        llm.SummaryLLM
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(conditionService ConditionService, llmClient llm.SummaryLLM) SummaryService {
	return &summaryService{
		conditionService: conditionService,
		llmClient:        llmClient,
	}
}

func (s *summaryService) Generate(ctx context.Context, userID uuid.UUID) (*domain.SummaryResponse, error) {
	readiness, err := s.conditionService.Readiness(ctx, userID)
	if err != nil {
		return nil, err
	}

	advice, err := s.conditionService.Advice(ctx, userID)
	if err != nil {
		return nil, err
	}

	series, err := s.conditionService.Features(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent := series.Days
	if len(recent) > summaryRecentDays {
		recent = recent[len(recent)-summaryRecentDays:]
	}

	conditionCtx := &domain.ConditionContext{
		Readiness:  *readiness,
		Advice:     *advice,
		RecentDays: recent,
	}

	narrative, err := s.llmClient.GenerateSummary(ctx, conditionCtx)
	if err != nil {
		return nil, err
	}

	return &domain.SummaryResponse{
		Readiness: *readiness,
		Advice:    *advice,
		Narrative: *narrative,
	}, nil
}
