package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/midori-health/condition-tracker/internal/domain"
	"github.com/midori-health/condition-tracker/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyRecordRepository interface {
	// Upsert writes a day's record, replacing any existing row for the
	// same (user, date key).
	Upsert(ctx context.Context, record *domain.DailyRecord) error
	GetByDate(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.DailyRecord, error)
	// List returns records newest-first with cursor pagination.
	List(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) ([]domain.DailyRecord, error)
	// ListAscending returns a user's full history oldest-first: the input
	// contract of the insight core.
	ListAscending(ctx context.Context, userID uuid.UUID) ([]domain.DailyRecord, error)
	// ActiveUserIDs returns users with a record updated since the cutoff.
	ActiveUserIDs(ctx context.Context, since time.Time) ([]uuid.UUID, error)
}

type dailyRecordRepository struct {
	db *gorm.DB
}

func NewDailyRecordRepository(db *gorm.DB) DailyRecordRepository {
	return &dailyRecordRepository{db: db}
}

func (r *dailyRecordRepository) Upsert(ctx context.Context, record *domain.DailyRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date_key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"mood", "sleep_hours", "steps", "stress", "updated_at",
			}),
		}).
		Create(record).Error
}

func (r *dailyRecordRepository) GetByDate(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.DailyRecord, error) {
	var record domain.DailyRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date_key = ?", userID, dateKey).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *dailyRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DailyRecordFilter) ([]domain.DailyRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_key DESC")

	if filter.From != "" {
		query = query.Where("date_key >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date_key <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where("date_key < ?", cursor.DateKey)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.DailyRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *dailyRecordRepository) ListAscending(ctx context.Context, userID uuid.UUID) ([]domain.DailyRecord, error) {
	var records []domain.DailyRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_key ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *dailyRecordRepository) ActiveUserIDs(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&domain.DailyRecord{}).
		Where("updated_at >= ?", since).
		Distinct().
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
