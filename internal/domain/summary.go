package domain

// SummaryOutput contains the structured narrative from the LLM.
// @Description LLM-generated wellbeing summary.
type SummaryOutput struct {
	// Summary of the user's recent condition (2-3 sentences)
	Summary string `json:"summary" example:"Your mood has been steady this month with a brief dip last week..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations" example:"[\"Mood dips tend to follow nights under 6.5 hours of sleep\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Aim to be in bed by 23:00 on weeknights\"]"`
}

// ConditionContext is the context object sent to the LLM.
// @Description Context data for LLM summary generation.
type ConditionContext struct {
	Readiness ReadinessStatus `json:"readiness"`
	Advice    AdviceResponse  `json:"advice"`
	// Most recent derived days, newest last
	RecentDays []DerivedDay `json:"recent_days"`
}

// SummaryResponse is the response for the summary endpoint.
// @Description Complete wellbeing summary response.
type SummaryResponse struct {
	// Readiness gate snapshot the narrative was built from
	Readiness ReadinessStatus `json:"readiness"`
	// Advice list the narrative was built from
	Advice AdviceResponse `json:"advice"`
	// LLM-generated narrative
	Narrative SummaryOutput `json:"narrative"`
}
