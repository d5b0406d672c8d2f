package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/midori-health/condition-tracker/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PredictionRepository interface {
	// Upsert writes the snapshot for (user, date key), replacing any
	// earlier baseline row for the same day.
	Upsert(ctx context.Context, prediction *domain.Prediction) error
	// GetByDate returns the snapshot for one day, or domain.ErrNotFound.
	GetByDate(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.Prediction, error)
	// Latest returns the newest snapshot for a user, or domain.ErrNotFound.
	Latest(ctx context.Context, userID uuid.UUID) (*domain.Prediction, error)
}

type predictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) Upsert(ctx context.Context, prediction *domain.Prediction) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date_key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"ready", "confidence_tier", "extended_horizon_unlocked",
				"source", "advices", "generated_at",
			}),
		}).
		Create(prediction).Error
}

func (r *predictionRepository) GetByDate(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.Prediction, error) {
	var prediction domain.Prediction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date_key = ?", userID, dateKey).
		First(&prediction).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &prediction, nil
}

func (r *predictionRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.Prediction, error) {
	var prediction domain.Prediction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_key DESC").
		First(&prediction).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &prediction, nil
}
