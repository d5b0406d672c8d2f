package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/midori-health/condition-tracker/internal/domain"
	"github.com/midori-health/condition-tracker/internal/repository"
	"github.com/midori-health/condition-tracker/pkg/pagination"
)

// RecordService owns the daily record write/read path. One row per user
// per calendar day; writes are upserts, missing days stay absent.
type RecordService interface {
	Upsert(ctx context.Context, userID uuid.UUID, dateKey string, req *domain.UpsertDailyRecordRequest) (*domain.DailyRecord, error)
	GetByDate(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.DailyRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) (*domain.DailyRecordListResponse, error)
}

type recordService struct {
	recordRepo repository.DailyRecordRepository
	userRepo   repository.UserRepository
}

func NewRecordService(recordRepo repository.DailyRecordRepository, userRepo repository.UserRepository) RecordService {
	return &recordService{recordRepo: recordRepo, userRepo: userRepo}
}

func (s *recordService) Upsert(ctx context.Context, userID uuid.UUID, dateKey string, req *domain.UpsertDailyRecordRequest) (*domain.DailyRecord, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if _, err := domain.ParseDateKey(dateKey); err != nil {
		return nil, err
	}

	record := &domain.DailyRecord{
		ID:         uuid.New(),
		UserID:     userID,
		DateKey:    dateKey,
		Mood:       req.Mood,
		SleepHours: req.SleepHours,
		Steps:      req.Steps,
		Stress:     req.Stress,
	}

	if err := s.recordRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	// Read back so callers see the persisted row (the upsert may have
	// kept an earlier row's identity).
	return s.recordRepo.GetByDate(ctx, userID, dateKey)
}

func (s *recordService) GetByDate(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.DailyRecord, error) {
	if _, err := domain.ParseDateKey(dateKey); err != nil {
		return nil, err
	}
	return s.recordRepo.GetByDate(ctx, userID, dateKey)
}

func (s *recordService) List(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) (*domain.DailyRecordListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	records, err := s.recordRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	resp := &domain.DailyRecordListResponse{
		Data: make([]domain.DailyRecordResponse, len(records)),
	}
	for i := range records {
		resp.Data[i] = records[i].ToResponse()
	}
	resp.Pagination.HasMore = hasMore
	if hasMore && len(records) > 0 {
		cursor := pagination.Cursor{DateKey: records[len(records)-1].DateKey}
		resp.Pagination.NextCursor = cursor.Encode()
	}

	return resp, nil
}
