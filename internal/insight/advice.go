package insight

import (
	"fmt"
	"math"
	"strconv"

	"github.com/midori-health/condition-tracker/internal/domain"
)

const (
	// DefaultMaxAdvices caps the emitted list.
	DefaultMaxAdvices = 2

	// minClusterDays is the minimum size of each mood cluster, and the
	// minimum per-feature samples within a cluster.
	minClusterDays = 3

	// Per-feature emission gaps; smaller differences are treated as noise.
	sleepGapHours  = 0.3
	stepsGapCount  = 500
	stressGapLevel = 0.5

	// referenceWakeHour anchors the recommended-bedtime arithmetic.
	referenceWakeHour = 7
)

// Advise compares the user's own good and bad mood periods and emits up to
// maxAdvices recommendations, ordered sleep, steps, stress. It is a
// fallback engine: callers must prefer an authoritative advice list when
// one is present, and its output is marked accordingly at the service
// layer.
//
// Fewer than 14 mood days, or a good or bad cluster under 3 days, yields
// an empty list; insufficient signal is a valid state, not an error.
func Advise(records []domain.DailyRecord, maxAdvices int) ([]domain.Advice, error) {
	if err := validateOrdering(records); err != nil {
		return nil, err
	}
	if maxAdvices <= 0 {
		maxAdvices = DefaultMaxAdvices
	}

	var moodDays []domain.DailyRecord
	moodSum := 0.0
	for _, rec := range records {
		if !rec.HasMood() {
			continue
		}
		moodDays = append(moodDays, rec)
		moodSum += float64(*rec.Mood)
	}
	if len(moodDays) < DaysRequired {
		return []domain.Advice{}, nil
	}

	meanMood := moodSum / float64(len(moodDays))
	var goodDays, badDays []domain.DailyRecord
	for _, rec := range moodDays {
		switch {
		case float64(*rec.Mood) >= meanMood+0.5:
			goodDays = append(goodDays, rec)
		case float64(*rec.Mood) <= meanMood-0.5:
			badDays = append(badDays, rec)
		}
	}
	if len(goodDays) < minClusterDays || len(badDays) < minClusterDays {
		return []domain.Advice{}, nil
	}

	advices := []domain.Advice{}
	if a := sleepAdvice(goodDays, badDays); a != nil {
		advices = append(advices, *a)
	}
	if a := stepsAdvice(goodDays, badDays); a != nil {
		advices = append(advices, *a)
	}
	if a := stressAdvice(goodDays, badDays); a != nil {
		advices = append(advices, *a)
	}

	if len(advices) > maxAdvices {
		advices = advices[:maxAdvices]
	}
	return advices, nil
}

func sleepAdvice(goodDays, badDays []domain.DailyRecord) *domain.Advice {
	good, okGood := clusterMean(goodDays, func(r domain.DailyRecord) *float64 { return r.SleepHours })
	bad, okBad := clusterMean(badDays, func(r domain.DailyRecord) *float64 { return r.SleepHours })
	if !okGood || !okBad || good-bad <= sleepGapHours {
		return nil
	}

	recHours := math.Round(good*10) / 10
	hour, minute := bedtimeFor(recHours)
	return &domain.Advice{
		FeatureKey: "sleep",
		Message: fmt.Sprintf(
			"Your good days average %.1f hours of sleep. Try to be in bed by %d:%02d tonight.",
			recHours, hour, minute),
	}
}

func stepsAdvice(goodDays, badDays []domain.DailyRecord) *domain.Advice {
	good, okGood := clusterMean(goodDays, func(r domain.DailyRecord) *float64 { return intSignal(r.Steps) })
	bad, okBad := clusterMean(badDays, func(r domain.DailyRecord) *float64 { return intSignal(r.Steps) })
	if !okGood || !okBad || good-bad <= stepsGapCount {
		return nil
	}

	floor := int(math.Round(good/1000)) * 1000
	return &domain.Advice{
		FeatureKey: "steps",
		Message: fmt.Sprintf(
			"Days with %s or more steps tend to be your better days.",
			groupDigits(floor)),
	}
}

func stressAdvice(goodDays, badDays []domain.DailyRecord) *domain.Advice {
	good, okGood := clusterMean(goodDays, func(r domain.DailyRecord) *float64 { return intSignal(r.Stress) })
	bad, okBad := clusterMean(badDays, func(r domain.DailyRecord) *float64 { return intSignal(r.Stress) })
	if !okGood || !okBad || bad-good <= stressGapLevel {
		return nil
	}

	level := int(math.Round(good))
	return &domain.Advice{
		FeatureKey: "stress",
		Message: fmt.Sprintf(
			"Keeping stress at level %d or below lines up with your better days.",
			level),
	}
}

// clusterMean averages a feature within a cluster, restricted to days
// where it was logged. The feature is skipped entirely when fewer than 3
// samples exist.
func clusterMean(days []domain.DailyRecord, get func(domain.DailyRecord) *float64) (float64, bool) {
	sum := 0.0
	n := 0
	for _, rec := range days {
		v := get(rec)
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n < minClusterDays {
		return 0, false
	}
	return sum / float64(n), true
}

// bedtimeFor works backward from the reference wake hour so the
// recommended bedtime actually yields recHours of sleep, to the minute.
func bedtimeFor(recHours float64) (hour, minute int) {
	minutes := int(math.Round((24+referenceWakeHour-recHours)*60)) % (24 * 60)
	return minutes / 60, minutes % 60
}

// groupDigits renders an integer with thousands separators: 8000 -> "8,000".
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
