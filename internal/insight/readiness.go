package insight

import (
	"math"
	"time"

	"github.com/midori-health/condition-tracker/internal/domain"
)

const (
	// DaysRequired is the mood-day count at which the gate opens.
	DaysRequired = 14

	// Confidence tier boundaries in total mood days.
	ConfidenceMediumDays = 30
	ConfidenceHighDays   = 60

	// Extended-horizon unlock needs both long history and enough observed
	// adverse days to calibrate against.
	ExtendedMinDays      = 60
	ExtendedMinUnhealthy = 10

	// baselineWindow is the trailing window for the unhealthy-day
	// baseline, current day included.
	baselineWindow = 14

	// missingRateWindow is the calendar span checked for recent mood gaps.
	missingRateWindow = 7
)

// Evaluate reclassifies the user's data-collection maturity from the full
// history available at call time. today anchors the recent-missing-rate
// window; every other field is a function of the record sequence alone.
//
// A day is unhealthy when its mood sits at or below its own trailing
// 14-day mean minus one, a moving baseline recomputed per historical day,
// so the counter only ever grows as history grows.
func Evaluate(records []domain.DailyRecord, today time.Time) (*domain.ReadinessStatus, error) {
	if err := validateOrdering(records); err != nil {
		return nil, err
	}

	moods := make([]float64, 0, len(records))
	moodDates := make(map[string]bool, len(records))
	for _, rec := range records {
		if !rec.HasMood() {
			continue
		}
		moods = append(moods, float64(*rec.Mood))
		moodDates[rec.DateKey] = true
	}

	status := &domain.ReadinessStatus{
		DaysCollected:     len(moods),
		DaysRequired:      DaysRequired,
		Ready:             len(moods) >= DaysRequired,
		UnhealthyCount:    countUnhealthy(moods),
		RecentMissingRate: recentMissingRate(moodDates, today),
	}

	if status.Ready {
		mean := tailMean(moods, baselineWindow)
		threshold := mean - 1
		status.MoodMean14 = &mean
		status.UnhealthyThreshold = &threshold
	}

	switch {
	case status.DaysCollected >= ConfidenceHighDays:
		status.ConfidenceTier = domain.ConfidenceHigh
	case status.DaysCollected >= ConfidenceMediumDays:
		status.ConfidenceTier = domain.ConfidenceMedium
	default:
		status.ConfidenceTier = domain.ConfidenceLow
	}

	status.ExtendedHorizonUnlocked = status.DaysCollected >= ExtendedMinDays &&
		status.UnhealthyCount >= ExtendedMinUnhealthy

	switch {
	case !status.Ready:
		status.Tier = domain.TierCollecting
	case status.ExtendedHorizonUnlocked:
		status.Tier = domain.TierExtended
	default:
		status.Tier = domain.TierShortOnly
	}

	return status, nil
}

// countUnhealthy walks the mood-day sequence and counts days at or below
// their trailing 14-day mean minus one. The first window needs all 14
// values, so counting starts at the 14th mood day.
func countUnhealthy(moods []float64) int {
	count := 0
	sum := 0.0
	for i, mood := range moods {
		sum += mood
		if i >= baselineWindow {
			sum -= moods[i-baselineWindow]
		}
		if i < baselineWindow-1 {
			continue
		}
		mean := sum / float64(baselineWindow)
		if mood <= mean-1 {
			count++
		}
	}
	return count
}

// tailMean averages the last n values (all of them when fewer exist).
func tailMean(values []float64, n int) float64 {
	if len(values) < n {
		n = len(values)
	}
	sum := 0.0
	for _, v := range values[len(values)-n:] {
		sum += v
	}
	return sum / float64(n)
}

// recentMissingRate is the fraction of the last 7 calendar days, ending
// today, without a mood entry. Rounded to three decimals.
func recentMissingRate(moodDates map[string]bool, today time.Time) float64 {
	missing := 0
	// Anchor on today's own calendar date so the window follows the
	// caller's zone, not the UTC day boundary.
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < missingRateWindow; i++ {
		key := day.AddDate(0, 0, -i).Format(domain.DateKeyLayout)
		if !moodDates[key] {
			missing++
		}
	}
	return math.Round(float64(missing)/missingRateWindow*1000) / 1000
}
