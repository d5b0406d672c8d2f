package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/midori-health/condition-tracker/internal/domain"
	"github.com/midori-health/condition-tracker/internal/insight"
	"github.com/midori-health/condition-tracker/internal/repository"
)

const (
	// Users with no record updates in this many days are skipped.
	activeWindowDays = 30
	batchTimeout     = 5 * time.Minute
)

// Scheduler runs the nightly snapshot batch: for every recently active
// user it evaluates the readiness gate, computes the comparative advice
// list, and upserts the day's prediction row as a baseline snapshot.
// External model jobs overwrite these rows with source=model.
type Scheduler struct {
	scheduler      gocron.Scheduler
	recordRepo     repository.DailyRecordRepository
	predictionRepo repository.PredictionRepository
	timezone       *time.Location
}

// Config holds scheduler configuration.
type Config struct {
	Timezone string
}

// New creates the nightly batch scheduler.
func New(
	recordRepo repository.DailyRecordRepository,
	predictionRepo repository.PredictionRepository,
	cfg Config,
) (*Scheduler, error) {
	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		tz = time.UTC
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(tz))
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		scheduler:      s,
		recordRepo:     recordRepo,
		predictionRepo: predictionRepo,
		timezone:       tz,
	}, nil
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	// Nightly snapshots at 03:30, after the day's late entries settle
	_, err := s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 30, 0))),
		gocron.NewTask(s.runNightlyBatch),
		gocron.WithName("nightly-snapshots"),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	log.Println("Scheduler started")
	return nil
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) runNightlyBatch() {
	log.Println("Running nightly snapshot batch...")
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	since := time.Now().In(s.timezone).AddDate(0, 0, -activeWindowDays)
	userIDs, err := s.recordRepo.ActiveUserIDs(ctx, since)
	if err != nil {
		log.Printf("Error listing active users: %v", err)
		return
	}

	var failed int
	for _, userID := range userIDs {
		if err := s.snapshotUser(ctx, userID); err != nil {
			log.Printf("Error snapshotting user %s: %v", userID, err)
			failed++
		}
	}
	log.Printf("Nightly snapshot batch done: %d users, %d failed", len(userIDs), failed)
}

func (s *Scheduler) snapshotUser(ctx context.Context, userID uuid.UUID) error {
	now := time.Now().In(s.timezone)
	dateKey := now.Format(domain.DateKeyLayout)

	// Never clobber an authoritative model snapshot for the same day.
	existing, err := s.predictionRepo.GetByDate(ctx, userID, dateKey)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil && existing.Source == domain.AdviceSourceModel {
		return nil
	}

	records, err := s.recordRepo.ListAscending(ctx, userID)
	if err != nil {
		return err
	}
	status, err := insight.Evaluate(records, now)
	if err != nil {
		return err
	}

	advices, err := insight.Advise(records, insight.DefaultMaxAdvices)
	if err != nil {
		return err
	}

	prediction := &domain.Prediction{
		ID:                      uuid.New(),
		UserID:                  userID,
		DateKey:                 dateKey,
		Ready:                   status.Ready,
		ConfidenceTier:          status.ConfidenceTier,
		ExtendedHorizonUnlocked: status.ExtendedHorizonUnlocked,
		Source:                  domain.AdviceSourceBaseline,
		Advices:                 advices,
		GeneratedAt:             time.Now().UTC(),
	}
	return s.predictionRepo.Upsert(ctx, prediction)
}

// RunNightlyNow triggers the batch immediately (for testing and ops).
func (s *Scheduler) RunNightlyNow() {
	s.runNightlyBatch()
}
