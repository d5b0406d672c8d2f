// Package insight holds the analytical core: pure, deterministic functions
// over an ordered sequence of daily records. Nothing here performs I/O or
// retains state between calls.
package insight

import (
	"fmt"
	"time"

	"github.com/midori-health/condition-tracker/internal/domain"
)

const (
	// ma14MinValues is the minimum number of lagged mood values required
	// before a 14-day moving average is emitted.
	ma14MinValues = 7

	// sleepBaselineWindow is the trailing window for the sleep deviation
	// baseline, current day included (sleep is known at wake).
	sleepBaselineWindow = 7

	// stepsBaselineWindow is the trailing window for the steps deviation
	// baseline, lagged values only.
	stepsBaselineWindow = 7
)

// Derive computes per-day derived signals from a chronologically ordered
// record sequence. Mood features are strictly causal: the value attributed
// to day i uses lags 1..window only, so the day's own mood never feeds its
// own derived values. Values whose inputs are missing stay nil.
//
// The input must be sorted ascending and unique by date key; Derive does
// not sort or deduplicate. Violations return domain.ErrInvalidOrdering.
func Derive(records []domain.DailyRecord) (*domain.DerivedSeries, error) {
	if err := validateOrdering(records); err != nil {
		return nil, err
	}

	moods := signalValues(records, func(r domain.DailyRecord) *float64 { return intSignal(r.Mood) })
	sleeps := signalValues(records, func(r domain.DailyRecord) *float64 { return r.SleepHours })
	steps := signalValues(records, func(r domain.DailyRecord) *float64 { return intSignal(r.Steps) })
	stresses := signalValues(records, func(r domain.DailyRecord) *float64 { return intSignal(r.Stress) })

	series := &domain.DerivedSeries{Days: make([]domain.DerivedDay, len(records))}
	for i, rec := range records {
		date := rec.Date()
		day := domain.DerivedDay{
			DateKey:   rec.DateKey,
			DayOfWeek: mondayIndexed(date.Weekday()),
			IsWeekend: isWeekend(date.Weekday()),
		}

		day.MoodLag1 = lag(moods, i, 1)
		day.MoodMA3 = laggedMean(moods, i, 3, 1)
		day.MoodMA7 = laggedMean(moods, i, 7, 1)
		day.MoodMA14 = laggedMean(moods, i, 14, ma14MinValues)
		day.MoodDelta1 = diff(lag(moods, i, 1), lag(moods, i, 2))
		day.MoodDev14 = diff(day.MoodLag1, day.MoodMA14)

		day.SleepMissing = sleeps[i] == nil
		day.SleepDev = diff(sleeps[i], trailingMean(sleeps, i, sleepBaselineWindow))

		day.StepsLag1 = lag(steps, i, 1)
		day.StepsMissing = day.StepsLag1 == nil
		day.StepsDev = diff(day.StepsLag1, laggedMean(steps, i, stepsBaselineWindow, 1))

		day.StressLag1 = lag(stresses, i, 1)
		day.StressMissing = day.StressLag1 == nil

		series.Days[i] = day
	}

	return series, nil
}

// validateOrdering checks the input contract: strictly ascending, unique
// date keys. Unsorted or duplicated input is a caller bug, not a data
// condition, so it fails hard.
func validateOrdering(records []domain.DailyRecord) error {
	for i, rec := range records {
		if _, err := domain.ParseDateKey(rec.DateKey); err != nil {
			return err
		}
		if i > 0 && records[i-1].DateKey >= rec.DateKey {
			return fmt.Errorf("%w: %q followed by %q at index %d",
				domain.ErrInvalidOrdering, records[i-1].DateKey, rec.DateKey, i)
		}
	}
	return nil
}

// signalValues extracts one optional signal into an index-aligned slice.
func signalValues(records []domain.DailyRecord, get func(domain.DailyRecord) *float64) []*float64 {
	out := make([]*float64, len(records))
	for i, rec := range records {
		out[i] = get(rec)
	}
	return out
}

func intSignal(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

// lag returns the value k positions before index i, or nil.
func lag(values []*float64, i, k int) *float64 {
	if i-k < 0 {
		return nil
	}
	return values[i-k]
}

// laggedMean averages the available values in [i-window, i-1]. Missing
// entries are excluded; fewer than minValues available yields nil, never
// a zero default.
func laggedMean(values []*float64, i, window, minValues int) *float64 {
	return windowMean(values, i-window, i-1, minValues)
}

// trailingMean averages the available values in [i-window+1, i], current
// index included.
func trailingMean(values []*float64, i, window int) *float64 {
	return windowMean(values, i-window+1, i, 1)
}

func windowMean(values []*float64, lo, hi, minValues int) *float64 {
	if lo < 0 {
		lo = 0
	}
	sum := 0.0
	n := 0
	for j := lo; j <= hi && j < len(values); j++ {
		if values[j] == nil {
			continue
		}
		sum += *values[j]
		n++
	}
	if n == 0 || n < minValues {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}

// diff returns a-b, or nil when either side is missing.
func diff(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	d := *a - *b
	return &d
}

// mondayIndexed maps time.Weekday (Sun=0) to Mon=0 .. Sun=6.
func mondayIndexed(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func isWeekend(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}
