package utils

import (
	"math"

	"truleadai/models"
)

// Aggregate derives the dashboard summary from the current lead collection
// plus the caller-supplied weekly activity series. Total over well-formed
// input: empty collections and unknown values never panic or divide by zero.
func Aggregate(leads []models.Lead, weekly []models.WeeklyActivity) models.AnalyticsSummary {
	summary := models.AnalyticsSummary{
		TotalLeads:           len(leads),
		StatusDistribution:   StatusCounts(leads),
		IndustryDistribution: distribution(leads, func(l models.Lead) string { return l.Industry }),
		CountryDistribution:  distribution(leads, func(l models.Lead) string { return l.Location.Country }),
		WeeklyActivity:       weekly,
	}

	if len(leads) > 0 {
		var total int
		for _, lead := range leads {
			total += lead.RelevanceScore
		}
		summary.AverageRelevance = round1(float64(total) / float64(len(leads)))
	}

	var contacted, responded int
	for _, day := range weekly {
		contacted += day.Contacted
		responded += day.Responded
	}
	if contacted > 0 {
		summary.ResponseRate = round1(float64(responded) / float64(contacted) * 100)
	}

	// First entry with the maximum count wins ties, so the result follows
	// first appearance in the collection.
	best := 0
	for _, entry := range summary.IndustryDistribution {
		if entry.Count > best {
			best = entry.Count
			summary.BestIndustry = entry.Key
		}
	}

	return summary
}

// distribution counts leads per distinct key, ordered by first appearance.
func distribution(leads []models.Lead, key func(models.Lead) string) []models.KeyCount {
	index := make(map[string]int, len(leads))
	var out []models.KeyCount
	for _, lead := range leads {
		k := key(lead)
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, models.KeyCount{Key: k, Count: 1})
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
