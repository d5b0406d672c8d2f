package insight

import (
	"strings"
	"testing"

	"github.com/midori-health/condition-tracker/internal/domain"
)

// contrastHistory builds 14 mood days: five good days (mood 5), five bad
// days (mood 1), four neutral days (mood 3). Feature values per cluster
// are set by the caller.
func contrastHistory(t *testing.T, set func(rec *domain.DailyRecord, good, bad bool)) []domain.DailyRecord {
	t.Helper()
	moods := []int{5, 1, 3, 5, 1, 3, 5, 1, 3, 5, 1, 3, 5, 1}
	records := makeRecords(t, "2026-02-02", moods...)
	for i := range records {
		set(&records[i], *records[i].Mood == 5, *records[i].Mood == 1)
	}
	return records
}

func TestAdvise_InsufficientHistory(t *testing.T) {
	records := makeRecords(t, "2026-01-01", 5, 1, 5, 1, 5, 1, 5, 1, 5, 1, 5, 1, 5)
	advices, err := Advise(records, 0)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if len(advices) != 0 {
		t.Fatalf("got %d advices with 13 mood days, want 0", len(advices))
	}
}

func TestAdvise_NoVarianceNoAdvice(t *testing.T) {
	// 14 identical days: no good/bad clusters form, so no advice at all.
	moods := make([]int, 14)
	for i := range moods {
		moods[i] = 3
	}
	records := makeRecords(t, "2026-01-01", moods...)
	for i := range records {
		records[i].SleepHours = f64(7.0)
		records[i].Steps = intPtr(7000)
	}

	advices, err := Advise(records, 0)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if len(advices) != 0 {
		t.Fatalf("got %d advices from flat history, want 0", len(advices))
	}
}

func TestAdvise_SmallClustersAbort(t *testing.T) {
	// Only two bad days: bad cluster under three members, engine aborts.
	moods := []int{5, 5, 5, 5, 5, 5, 1, 1, 5, 5, 5, 5, 5, 5}
	records := makeRecords(t, "2026-01-01", moods...)
	for i := range records {
		if *records[i].Mood == 5 {
			records[i].SleepHours = f64(8.0)
		} else {
			records[i].SleepHours = f64(5.0)
		}
	}

	advices, err := Advise(records, 0)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if len(advices) != 0 {
		t.Fatalf("got %d advices with a 2-day bad cluster, want 0", len(advices))
	}
}

func TestAdvise_SleepGap(t *testing.T) {
	records := contrastHistory(t, func(rec *domain.DailyRecord, good, bad bool) {
		if good {
			rec.SleepHours = f64(8.0)
		}
		if bad {
			rec.SleepHours = f64(6.0)
		}
	})

	advices, err := Advise(records, 0)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if len(advices) != 1 {
		t.Fatalf("got %d advices, want 1 sleep advice", len(advices))
	}
	if advices[0].FeatureKey != "sleep" {
		t.Fatalf("featureKey = %s, want sleep", advices[0].FeatureKey)
	}
	// 8.0h before a 7:00 wake puts bedtime at 23:00.
	if !strings.Contains(advices[0].Message, "8.0 hours") || !strings.Contains(advices[0].Message, "23:00") {
		t.Errorf("unexpected sleep message: %q", advices[0].Message)
	}
}

func TestAdvise_SleepGapBelowThreshold(t *testing.T) {
	records := contrastHistory(t, func(rec *domain.DailyRecord, good, bad bool) {
		if good {
			rec.SleepHours = f64(7.1)
		}
		if bad {
			rec.SleepHours = f64(7.0)
		}
	})

	advices, err := Advise(records, 0)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if len(advices) != 0 {
		t.Fatalf("got %d advices from a 0.1h gap, want 0", len(advices))
	}
}

func TestAdvise_StepsGap(t *testing.T) {
	records := contrastHistory(t, func(rec *domain.DailyRecord, good, bad bool) {
		if good {
			rec.Steps = intPtr(9600)
		}
		if bad {
			rec.Steps = intPtr(4000)
		}
	})

	advices, err := Advise(records, 0)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if len(advices) != 1 || advices[0].FeatureKey != "steps" {
		t.Fatalf("advices = %+v, want single steps advice", advices)
	}
	// 9600 rounds to the nearest thousand: 10,000.
	if !strings.Contains(advices[0].Message, "10,000") {
		t.Errorf("unexpected steps message: %q", advices[0].Message)
	}
}

func TestAdvise_StressGap(t *testing.T) {
	records := contrastHistory(t, func(rec *domain.DailyRecord, good, bad bool) {
		if good {
			rec.Stress = intPtr(2)
		}
		if bad {
			rec.Stress = intPtr(4)
		}
	})

	advices, err := Advise(records, 0)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if len(advices) != 1 || advices[0].FeatureKey != "stress" {
		t.Fatalf("advices = %+v, want single stress advice", advices)
	}
	if !strings.Contains(advices[0].Message, "level 2") {
		t.Errorf("unexpected stress message: %q", advices[0].Message)
	}
}

func TestAdvise_FeatureNeedsThreeSamplesPerCluster(t *testing.T) {
	// Big sleep gap, but only two good days have sleep logged.
	logged := 0
	records := contrastHistory(t, func(rec *domain.DailyRecord, good, bad bool) {
		if good && logged < 2 {
			rec.SleepHours = f64(9.0)
			logged++
		}
		if bad {
			rec.SleepHours = f64(5.0)
		}
	})

	advices, err := Advise(records, 0)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if len(advices) != 0 {
		t.Fatalf("got %d advices with 2 sleep samples in good cluster, want 0", len(advices))
	}
}

func TestAdvise_OrderingAndTruncation(t *testing.T) {
	// All three features have large gaps.
	records := contrastHistory(t, func(rec *domain.DailyRecord, good, bad bool) {
		if good {
			rec.SleepHours = f64(8.0)
			rec.Steps = intPtr(11000)
			rec.Stress = intPtr(1)
		}
		if bad {
			rec.SleepHours = f64(6.0)
			rec.Steps = intPtr(3000)
			rec.Stress = intPtr(5)
		}
	})

	advices, err := Advise(records, 0)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if len(advices) != 2 {
		t.Fatalf("got %d advices with default cap, want 2", len(advices))
	}
	if advices[0].FeatureKey != "sleep" || advices[1].FeatureKey != "steps" {
		t.Errorf("order = [%s, %s], want [sleep, steps]", advices[0].FeatureKey, advices[1].FeatureKey)
	}

	advices, err = Advise(records, 3)
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if len(advices) != 3 || advices[2].FeatureKey != "stress" {
		t.Fatalf("advices = %+v, want sleep, steps, stress", advices)
	}
}

func TestBedtimeFor(t *testing.T) {
	tests := []struct {
		hours      float64
		wantHour   int
		wantMinute int
	}{
		{8.0, 23, 0},
		{7.5, 23, 30},
		{6.4, 0, 36}, // past midnight: 7:00 wake minus 6.4h
		{7.0, 0, 0},  // exactly midnight
	}
	for _, tt := range tests {
		h, m := bedtimeFor(tt.hours)
		if h != tt.wantHour || m != tt.wantMinute {
			t.Errorf("bedtimeFor(%v) = %d:%02d, want %d:%02d",
				tt.hours, h, m, tt.wantHour, tt.wantMinute)
		}
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{900, "900"},
		{8000, "8,000"},
		{12500, "12,500"},
		{1000000, "1,000,000"},
	}
	for _, tt := range tests {
		if got := groupDigits(tt.in); got != tt.want {
			t.Errorf("groupDigits(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
