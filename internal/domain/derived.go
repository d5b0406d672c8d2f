package domain

// DerivedDay holds the derived signals for one input day. Slices of
// DerivedDay stay index-aligned with the input record sequence. Pointer
// fields are nil where the required inputs are missing; downstream
// consumers must treat absence as unknown, not neutral.
type DerivedDay struct {
	DateKey string `json:"date_key"`

	// Calendar derivations, always present (Mon=0 .. Sun=6).
	DayOfWeek int  `json:"day_of_week"`
	IsWeekend bool `json:"is_weekend"`

	// Mood features use lags 1..window only; the day's own mood never
	// feeds its own derived values.
	MoodLag1   *float64 `json:"mood_lag1,omitempty"`
	MoodMA3    *float64 `json:"mood_ma3,omitempty"`
	MoodMA7    *float64 `json:"mood_ma7,omitempty"`
	MoodMA14   *float64 `json:"mood_ma14,omitempty"`
	MoodDelta1 *float64 `json:"mood_delta1,omitempty"`
	MoodDev14  *float64 `json:"mood_dev14,omitempty"`

	// Sleep is known at wake, so the same day's value is allowed; the
	// deviation baseline is the trailing 7-day mean.
	SleepDev     *float64 `json:"sleep_dev,omitempty"`
	SleepMissing bool     `json:"sleep_missing"`

	// Steps for the current day are still accumulating, so only the
	// prior day's count is used.
	StepsLag1    *float64 `json:"steps_lag1,omitempty"`
	StepsDev     *float64 `json:"steps_dev,omitempty"`
	StepsMissing bool     `json:"steps_missing"`

	StressLag1    *float64 `json:"stress_lag1,omitempty"`
	StressMissing bool     `json:"stress_missing"`
}

// DerivedSeries is the output of the feature deriver: one DerivedDay per
// input record, in the same order.
type DerivedSeries struct {
	Days []DerivedDay `json:"days"`
}
