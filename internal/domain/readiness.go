package domain

// ReadinessTier classifies how much usable history exists.
// @Description Data-collection maturity: collecting, short_only, or extended.
type ReadinessTier string

const (
	// TierCollecting means fewer than the required mood days exist.
	TierCollecting ReadinessTier = "collecting"
	// TierShortOnly allows short-horizon output only.
	TierShortOnly ReadinessTier = "short_only"
	// TierExtended additionally unlocks the extended horizon.
	TierExtended ReadinessTier = "extended"
)

// ConfidenceTier labels how much total history backs the gate.
type ConfidenceTier string

const (
	ConfidenceLow    ConfidenceTier = "low"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceHigh   ConfidenceTier = "high"
)

// ReadinessStatus is a snapshot of gate state, always derived fresh from
// the full history available at call time, never partially mutated.
// @Description Readiness gate snapshot for a user.
type ReadinessStatus struct {
	// Count of days with a logged mood score
	DaysCollected int `json:"days_collected" example:"42"`
	// Mood days required before the gate opens
	DaysRequired int `json:"days_required" example:"14"`
	// True once DaysCollected reaches DaysRequired
	Ready bool `json:"ready" example:"true"`
	// Days at or below their own trailing 14-day baseline minus one
	UnhealthyCount int `json:"unhealthy_count" example:"6"`
	// low / medium / high by total mood days
	ConfidenceTier ConfidenceTier `json:"confidence_tier" example:"medium"`
	// Mean mood over the most recent 14 mood days; nil while collecting
	MoodMean14 *float64 `json:"mood_mean_14,omitempty" example:"3.6"`
	// MoodMean14 minus one; nil while collecting
	UnhealthyThreshold *float64 `json:"unhealthy_threshold,omitempty" example:"2.6"`
	// True when history and adverse-event counts both suffice
	ExtendedHorizonUnlocked bool `json:"extended_horizon_unlocked" example:"false"`
	// Overall gate tier
	Tier ReadinessTier `json:"tier" example:"short_only"`
	// Fraction of the last 7 calendar days without a mood entry.
	// Descriptive only; does not affect the tier.
	RecentMissingRate float64 `json:"recent_missing_rate" example:"0.143"`
}
