package seed

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/midori-health/condition-tracker/internal/domain"
	"github.com/midori-health/condition-tracker/internal/insight"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Run seeds the database with sample users and synthetic daily records.
// Safe to call multiple times; the per-user seed offset keeps the
// generated histories distinct but reproducible.
func Run(db *gorm.DB, seed int64, totalDays int) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.DailyRecord{}, &domain.Prediction{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
	}

	for i, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
		if err := seedRecordsForUser(db, user, seed+int64(i), totalDays); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedRecordsForUser(db *gorm.DB, user domain.User, seed int64, totalDays int) error {
	records := insight.Generate(totalDays, seed)
	for i := range records {
		records[i].ID = uuid.New()
		records[i].UserID = user.ID
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"mood", "sleep_hours", "steps", "stress", "updated_at",
		}),
	}).Create(&records).Error
	if err != nil {
		return fmt.Errorf("failed to seed records for user %s: %w", user.ID, err)
	}
	return nil
}
