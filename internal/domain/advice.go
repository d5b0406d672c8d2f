package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdviceSource marks where an advice list came from.
type AdviceSource string

const (
	// AdviceSourceModel is an authoritative list written by the external
	// prediction job.
	AdviceSourceModel AdviceSource = "model"
	// AdviceSourceBaseline is the built-in comparative engine's fallback
	// output.
	AdviceSourceBaseline AdviceSource = "baseline"
)

// Advice is one actionable recommendation derived from comparing the
// user's own good and bad periods. Ephemeral; produced per invocation.
type Advice struct {
	// Feature the advice targets: sleep, steps, or stress
	FeatureKey string `json:"feature_key" example:"sleep"`
	// Human-readable recommendation
	Message string `json:"message" example:"Your good days average 7.5 hours of sleep. Try to be in bed by 23:30 tonight."`
}

// AdviceResponse is the response body for the advice endpoint.
// @Description Ranked advice list with its source marking.
type AdviceResponse struct {
	// model (authoritative) or baseline (fallback engine)
	Source AdviceSource `json:"source" example:"baseline"`
	// Ranked advice, sleep before steps before stress
	Advices []Advice `json:"advices"`
	// When the list was produced
	GeneratedAt time.Time `json:"generated_at"`
}

// Prediction is the per-day snapshot persisted by the nightly batch. The
// external model job overwrites rows with source=model; rows written by
// this service always carry source=baseline.
type Prediction struct {
	ID                      uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_predictions_user_date" json:"user_id"`
	DateKey                 string         `gorm:"type:varchar(10);not null;uniqueIndex:idx_predictions_user_date" json:"date_key"`
	Ready                   bool           `gorm:"not null" json:"ready"`
	ConfidenceTier          ConfidenceTier `gorm:"type:varchar(10);not null" json:"confidence_tier"`
	ExtendedHorizonUnlocked bool           `gorm:"not null" json:"extended_horizon_unlocked"`
	Source                  AdviceSource   `gorm:"type:varchar(10);not null" json:"source"`
	Advices                 []Advice       `gorm:"serializer:json" json:"advices"`
	GeneratedAt             time.Time      `gorm:"not null" json:"generated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Prediction) TableName() string {
	return "predictions"
}
