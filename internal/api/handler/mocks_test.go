package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/midori-health/condition-tracker/internal/domain"
)

// MockRecordService is a mock implementation of RecordService
type MockRecordService struct {
	upsertFunc    func(ctx context.Context, userID uuid.UUID, dateKey string, req *domain.UpsertDailyRecordRequest) (*domain.DailyRecord, error)
	getByDateFunc func(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.DailyRecord, error)
	listFunc      func(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) (*domain.DailyRecordListResponse, error)
}

func (m *MockRecordService) Upsert(ctx context.Context, userID uuid.UUID, dateKey string, req *domain.UpsertDailyRecordRequest) (*domain.DailyRecord, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, dateKey, req)
	}
	if _, err := domain.ParseDateKey(dateKey); err != nil {
		return nil, err
	}
	return &domain.DailyRecord{
		ID:         uuid.New(),
		UserID:     userID,
		DateKey:    dateKey,
		Mood:       req.Mood,
		SleepHours: req.SleepHours,
		Steps:      req.Steps,
		Stress:     req.Stress,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}, nil
}

func (m *MockRecordService) GetByDate(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.DailyRecord, error) {
	if m.getByDateFunc != nil {
		return m.getByDateFunc(ctx, userID, dateKey)
	}
	return nil, domain.ErrNotFound
}

func (m *MockRecordService) List(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) (*domain.DailyRecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.DailyRecordListResponse{
		Data:       []domain.DailyRecordResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockConditionService is a mock implementation of ConditionService
type MockConditionService struct {
	featuresFunc  func(ctx context.Context, userID uuid.UUID) (*domain.DerivedSeries, error)
	readinessFunc func(ctx context.Context, userID uuid.UUID) (*domain.ReadinessStatus, error)
	adviceFunc    func(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error)
}

func (m *MockConditionService) Features(ctx context.Context, userID uuid.UUID) (*domain.DerivedSeries, error) {
	if m.featuresFunc != nil {
		return m.featuresFunc(ctx, userID)
	}
	return &domain.DerivedSeries{Days: []domain.DerivedDay{}}, nil
}

func (m *MockConditionService) Readiness(ctx context.Context, userID uuid.UUID) (*domain.ReadinessStatus, error) {
	if m.readinessFunc != nil {
		return m.readinessFunc(ctx, userID)
	}
	return &domain.ReadinessStatus{
		DaysRequired:   14,
		ConfidenceTier: domain.ConfidenceLow,
		Tier:           domain.TierCollecting,
	}, nil
}

func (m *MockConditionService) Advice(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error) {
	if m.adviceFunc != nil {
		return m.adviceFunc(ctx, userID)
	}
	return &domain.AdviceResponse{
		Source:      domain.AdviceSourceBaseline,
		Advices:     []domain.Advice{},
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// MockSummaryService is a mock implementation of SummaryService
type MockSummaryService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.SummaryResponse, error)
}

func (m *MockSummaryService) Generate(ctx context.Context, userID uuid.UUID) (*domain.SummaryResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.SummaryResponse{}, nil
}
