package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/midori-health/condition-tracker/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockDailyRecordRepository is a mock implementation of DailyRecordRepository
type MockDailyRecordRepository struct {
	records map[uuid.UUID]map[string]*domain.DailyRecord
	err     error
}

func NewMockDailyRecordRepository() *MockDailyRecordRepository {
	return &MockDailyRecordRepository{
		records: make(map[uuid.UUID]map[string]*domain.DailyRecord),
	}
}

func (m *MockDailyRecordRepository) Upsert(ctx context.Context, record *domain.DailyRecord) error {
	if m.err != nil {
		return m.err
	}
	byDate, ok := m.records[record.UserID]
	if !ok {
		byDate = make(map[string]*domain.DailyRecord)
		m.records[record.UserID] = byDate
	}
	if existing, ok := byDate[record.DateKey]; ok {
		existing.Mood = record.Mood
		existing.SleepHours = record.SleepHours
		existing.Steps = record.Steps
		existing.Stress = record.Stress
		existing.UpdatedAt = time.Now()
		return nil
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	byDate[record.DateKey] = record
	return nil
}

func (m *MockDailyRecordRepository) GetByDate(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.DailyRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record, ok := m.records[userID][dateKey]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *MockDailyRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) ([]domain.DailyRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	records := m.sorted(userID)
	// Newest first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	var result []domain.DailyRecord
	for _, record := range records {
		if filter.From != "" && record.DateKey < filter.From {
			continue
		}
		if filter.To != "" && record.DateKey > filter.To {
			continue
		}
		result = append(result, record)
	}
	return result, nil
}

func (m *MockDailyRecordRepository) ListAscending(ctx context.Context, userID uuid.UUID) ([]domain.DailyRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sorted(userID), nil
}

func (m *MockDailyRecordRepository) ActiveUserIDs(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	if m.err != nil {
		return nil, m.err
	}
	var ids []uuid.UUID
	for userID, byDate := range m.records {
		for _, record := range byDate {
			if !record.UpdatedAt.Before(since) {
				ids = append(ids, userID)
				break
			}
		}
	}
	return ids, nil
}

func (m *MockDailyRecordRepository) sorted(userID uuid.UUID) []domain.DailyRecord {
	var records []domain.DailyRecord
	for _, record := range m.records[userID] {
		records = append(records, *record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].DateKey < records[j].DateKey
	})
	return records
}

func (m *MockDailyRecordRepository) SetError(err error) {
	m.err = err
}

// MockPredictionRepository is a mock implementation of PredictionRepository
type MockPredictionRepository struct {
	predictions map[uuid.UUID]map[string]*domain.Prediction
	err         error
}

func NewMockPredictionRepository() *MockPredictionRepository {
	return &MockPredictionRepository{
		predictions: make(map[uuid.UUID]map[string]*domain.Prediction),
	}
}

func (m *MockPredictionRepository) Upsert(ctx context.Context, prediction *domain.Prediction) error {
	if m.err != nil {
		return m.err
	}
	byDate, ok := m.predictions[prediction.UserID]
	if !ok {
		byDate = make(map[string]*domain.Prediction)
		m.predictions[prediction.UserID] = byDate
	}
	byDate[prediction.DateKey] = prediction
	return nil
}

func (m *MockPredictionRepository) GetByDate(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.Prediction, error) {
	if m.err != nil {
		return nil, m.err
	}
	prediction, ok := m.predictions[userID][dateKey]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return prediction, nil
}

func (m *MockPredictionRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.Prediction, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *domain.Prediction
	for _, prediction := range m.predictions[userID] {
		if latest == nil || prediction.DateKey > latest.DateKey {
			latest = prediction
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	return latest, nil
}

// MockSummaryLLM is a mock implementation of llm.SummaryLLM
type MockSummaryLLM struct {
	output *domain.SummaryOutput
	err    error
	gotCtx *domain.ConditionContext
	called int
}

func (m *MockSummaryLLM) GenerateSummary(ctx context.Context, conditionCtx *domain.ConditionContext) (*domain.SummaryOutput, error) {
	m.called++
	m.gotCtx = conditionCtx
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return &domain.SummaryOutput{Summary: "ok"}, nil
}
