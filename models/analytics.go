package models

// WeeklyActivity is one day of the rolling weekly performance series. The
// series is exogenous: the pipeline has no notion of "contact" or "response"
// events, so callers supply it (or the simulated default is used).
type WeeklyActivity struct {
	Day        string `json:"day" validate:"required"`
	Discovered int    `json:"discovered" validate:"min=0"`
	Contacted  int    `json:"contacted" validate:"min=0"`
	Responded  int    `json:"responded" validate:"min=0"`
}

// KeyCount is a single bucket of a distribution, ordered by first appearance
// in the lead collection.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// AnalyticsSummary aggregates the current lead collection plus the weekly
// activity series into the dashboard metrics.
type AnalyticsSummary struct {
	TotalLeads           int                `json:"totalLeads"`
	StatusDistribution   map[LeadStatus]int `json:"statusDistribution"`
	IndustryDistribution []KeyCount         `json:"industryDistribution"`
	CountryDistribution  []KeyCount         `json:"countryDistribution"`
	AverageRelevance     float64            `json:"averageRelevance"`
	ResponseRate         float64            `json:"responseRate"`
	BestIndustry         string             `json:"bestIndustry"`
	WeeklyActivity       []WeeklyActivity   `json:"weeklyActivity"`
}

// DefaultWeeklyActivity returns the simulated series the dashboard ships
// when no real activity data is available.
func DefaultWeeklyActivity() []WeeklyActivity {
	return []WeeklyActivity{
		{Day: "Mon", Discovered: 12, Contacted: 8, Responded: 3},
		{Day: "Tue", Discovered: 15, Contacted: 11, Responded: 5},
		{Day: "Wed", Discovered: 18, Contacted: 13, Responded: 7},
		{Day: "Thu", Discovered: 14, Contacted: 9, Responded: 4},
		{Day: "Fri", Discovered: 20, Contacted: 15, Responded: 8},
		{Day: "Sat", Discovered: 8, Contacted: 5, Responded: 2},
		{Day: "Sun", Discovered: 5, Contacted: 3, Responded: 1},
	}
}
