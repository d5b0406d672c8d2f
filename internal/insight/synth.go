package insight

import (
	"math"
	"math/rand"
	"time"

	"github.com/midori-health/condition-tracker/internal/domain"
)

// slumpOffsets are the days-ago positions where multi-day slumps begin.
// The schedule is fixed relative to the end of the sequence; offsets past
// the requested length are simply truncated away.
var slumpOffsets = []int{8, 25, 48, 67, 85}

// Generate produces a reproducible synthetic daily-record sequence ending
// today. Identical (totalDays, seed) inputs yield identical output for a
// given end date; tests use GenerateFrom with a fixed anchor.
func Generate(totalDays int, seed int64) []domain.DailyRecord {
	return GenerateFrom(time.Now().UTC(), totalDays, seed)
}

// GenerateFrom produces totalDays of synthetic records ending on the
// calendar day of end. The shape mirrors real usage: mood oscillates with
// a weekend uplift, recurring 2-3 day slumps drag mood to 1-2, sleep drops
// 1-2h on slump days and gains half an hour on weekends, steps track mood,
// and stress is logged 80% of the time, running high on slump days.
func GenerateFrom(end time.Time, totalDays int, seed int64) []domain.DailyRecord {
	rng := rand.New(rand.NewSource(seed))

	slump := make(map[int]bool)
	for _, start := range slumpOffsets {
		duration := 2 + rng.Intn(2)
		for d := 0; d < duration; d++ {
			slump[start+d] = true
		}
	}

	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	records := make([]domain.DailyRecord, 0, totalDays)
	for i := 0; i < totalDays; i++ {
		daysAgo := totalDays - 1 - i
		day := endDay.AddDate(0, 0, -daysAgo)
		weekend := isWeekend(day.Weekday())

		var mood int
		switch {
		case slump[daysAgo]:
			mood = 1 + rng.Intn(2)
		case weekend:
			mood = pick(rng, 3, 4, 4, 5)
		default:
			mood = pick(rng, 2, 3, 3, 4, 4, 5)
		}

		sleep := 6.5 + rng.Float64()*2.0
		if mood <= 2 {
			sleep -= 1.0 + rng.Float64()
		}
		if weekend {
			sleep += 0.5
		}
		sleep = math.Round(sleep*10) / 10

		var steps int
		if mood <= 2 {
			steps = 2000 + rng.Intn(3001)
		} else {
			steps = 5000 + rng.Intn(8001)
		}

		var stress *int
		if rng.Float64() > 0.2 {
			var v int
			if mood <= 2 {
				v = 3 + rng.Intn(3)
			} else {
				v = 1 + rng.Intn(3)
			}
			stress = &v
		}

		m, s, st := mood, sleep, steps
		records = append(records, domain.DailyRecord{
			DateKey:    day.Format(domain.DateKeyLayout),
			Mood:       &m,
			SleepHours: &s,
			Steps:      &st,
			Stress:     stress,
		})
	}

	return records
}

func pick(rng *rand.Rand, options ...int) int {
	return options[rng.Intn(len(options))]
}
