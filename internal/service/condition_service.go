package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/midori-health/condition-tracker/internal/domain"
	"github.com/midori-health/condition-tracker/internal/insight"
	"github.com/midori-health/condition-tracker/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ConditionService exposes the derived-signal core over a user's stored
// history: causal features, the readiness gate, and comparative advice.
type ConditionService interface {
	Features(ctx context.Context, userID uuid.UUID) (*domain.DerivedSeries, error)
	Readiness(ctx context.Context, userID uuid.UUID) (*domain.ReadinessStatus, error)
	Advice(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error)
}

type conditionService struct {
	recordRepo     repository.DailyRecordRepository
	userRepo       repository.UserRepository
	predictionRepo repository.PredictionRepository
}

func NewConditionService(
	recordRepo repository.DailyRecordRepository,
	userRepo repository.UserRepository,
	predictionRepo repository.PredictionRepository,
) ConditionService {
	return &conditionService{
		recordRepo:     recordRepo,
		userRepo:       userRepo,
		predictionRepo: predictionRepo,
	}
}

func (s *conditionService) Features(ctx context.Context, userID uuid.UUID) (*domain.DerivedSeries, error) {
	records, _, err := s.loadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return insight.Derive(records)
}

func (s *conditionService) Readiness(ctx context.Context, userID uuid.UUID) (*domain.ReadinessStatus, error) {
	tracer := otel.Tracer("condition-tracker-api/condition")
	ctx, span := tracer.Start(ctx, "ConditionService.Readiness",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
		),
	)
	defer span.End()

	records, user, err := s.loadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now().In(user.Location())
	status, err := insight.Evaluate(records, today)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("gate.days_collected", status.DaysCollected),
		attribute.Bool("gate.ready", status.Ready),
		attribute.String("gate.tier", string(status.Tier)),
	)
	if statusJSON, err := json.Marshal(status); err == nil {
		span.SetAttributes(attribute.String("gate.output", string(statusJSON)))
	}

	return status, nil
}

func (s *conditionService) Advice(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error) {
	tracer := otel.Tracer("condition-tracker-api/condition")
	ctx, span := tracer.Start(ctx, "ConditionService.Advice",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
		),
	)
	defer span.End()

	records, user, err := s.loadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	// A stored snapshot for today is authoritative when the external
	// model wrote it; baseline snapshots from the nightly batch are
	// served too so repeated calls stay stable within a day.
	today := time.Now().In(user.Location()).Format(domain.DateKeyLayout)
	stored, err := s.predictionRepo.GetByDate(ctx, userID, today)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if stored != nil {
		span.SetAttributes(attribute.String("advice.source", string(stored.Source)))
		return &domain.AdviceResponse{
			Source:      stored.Source,
			Advices:     stored.Advices,
			GeneratedAt: stored.GeneratedAt,
		}, nil
	}

	advices, err := insight.Advise(records, insight.DefaultMaxAdvices)
	if err != nil {
		return nil, err
	}

	// The external model may know a user the local history can't advise
	// on yet. When the live comparison has nothing to say, the newest
	// stored snapshot is still better than an empty list.
	if len(advices) == 0 {
		latest, err := s.predictionRepo.Latest(ctx, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if latest != nil && len(latest.Advices) > 0 {
			span.SetAttributes(attribute.String("advice.source", string(latest.Source)))
			return &domain.AdviceResponse{
				Source:      latest.Source,
				Advices:     latest.Advices,
				GeneratedAt: latest.GeneratedAt,
			}, nil
		}
	}

	span.SetAttributes(
		attribute.String("advice.source", string(domain.AdviceSourceBaseline)),
		attribute.Int("advice.count", len(advices)),
	)

	return &domain.AdviceResponse{
		Source:      domain.AdviceSourceBaseline,
		Advices:     advices,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func (s *conditionService) loadHistory(ctx context.Context, userID uuid.UUID) ([]domain.DailyRecord, *domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.recordRepo.ListAscending(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return records, user, nil
}
