package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateKeyLayout is the canonical calendar-day key format. A record's date
// key marks the local wake day it belongs to.
const DateKeyLayout = "2006-01-02"

// ParseDateKey parses a canonical date key into a UTC midnight time.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	return t, nil
}

// DailyRecord holds one calendar day of wellbeing signals for a user.
// Every signal is optional: a nil field means "not logged", never zero.
type DailyRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_records_user_date" json:"user_id"`
	DateKey    string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_records_user_date" json:"date_key"`
	Mood       *int      `gorm:"type:smallint" json:"mood,omitempty"`
	SleepHours *float64  `json:"sleep_hours,omitempty"`
	Steps      *int      `json:"steps,omitempty"`
	Stress     *int      `gorm:"type:smallint" json:"stress,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DailyRecord) TableName() string {
	return "daily_records"
}

// Date returns the record's calendar day as a UTC midnight time.
// The date key is validated on write, so parse failures map to zero time.
func (r *DailyRecord) Date() time.Time {
	t, _ := time.ParseInLocation(DateKeyLayout, r.DateKey, time.UTC)
	return t
}

// HasMood reports whether the day has a logged mood score. Days with only
// sleep/steps logged do not count toward readiness.
func (r *DailyRecord) HasMood() bool {
	return r.Mood != nil
}

// UpsertDailyRecordRequest is the request body for writing a day's record.
// @Description Payload for logging or updating one calendar day of signals.
type UpsertDailyRecordRequest struct {
	// Self-reported mood, 1 (worst) to 5 (best)
	Mood *int `json:"mood,omitempty" validate:"omitempty,min=1,max=5" example:"4"`
	// Sleep duration for the wake day in hours
	SleepHours *float64 `json:"sleep_hours,omitempty" validate:"omitempty,gt=0,lte=24" example:"7.5"`
	// Step count for the day
	Steps *int `json:"steps,omitempty" validate:"omitempty,min=0" example:"8200"`
	// Self-reported stress, 1 (calm) to 5 (high)
	Stress *int `json:"stress,omitempty" validate:"omitempty,min=1,max=5" example:"2"`
}

// DailyRecordResponse is the response body for daily record endpoints.
type DailyRecordResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	DateKey    string    `json:"date_key"`
	Mood       *int      `json:"mood,omitempty"`
	SleepHours *float64  `json:"sleep_hours,omitempty"`
	Steps      *int      `json:"steps,omitempty"`
	Stress     *int      `json:"stress,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r *DailyRecord) ToResponse() DailyRecordResponse {
	return DailyRecordResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		DateKey:    r.DateKey,
		Mood:       r.Mood,
		SleepHours: r.SleepHours,
		Steps:      r.Steps,
		Stress:     r.Stress,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// DailyRecordListResponse is the response body for listing records.
type DailyRecordListResponse struct {
	Data       []DailyRecordResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// DailyRecordFilter contains filter parameters for listing records.
type DailyRecordFilter struct {
	From   string `validate:"omitempty,datekey"` // inclusive date key lower bound
	To     string `validate:"omitempty,datekey"` // inclusive date key upper bound
	Limit  int
	Cursor string
}
