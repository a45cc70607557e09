package utils

import (
	"sort"
	"strings"

	"truleadai/models"
)

// ApplyView runs the display pipeline over the stored collection: free-text
// search, then status filter, then industry filter, then sort. Pure function;
// the input slice is never mutated. Unknown filter values simply match
// nothing, and an empty collection flows through untouched.
func ApplyView(leads []models.Lead, criteria models.ViewCriteria) []models.Lead {
	filtered := make([]models.Lead, 0, len(leads))

	search := strings.ToLower(strings.TrimSpace(criteria.Search))
	for _, lead := range leads {
		if search != "" && !matchesSearch(lead, search) {
			continue
		}
		if criteria.Status != "" && criteria.Status != models.FilterAll &&
			string(lead.Status) != criteria.Status {
			continue
		}
		if criteria.Industry != "" && criteria.Industry != models.FilterAll &&
			lead.Industry != criteria.Industry {
			continue
		}
		filtered = append(filtered, lead)
	}

	sortLeads(filtered, criteria.SortBy, criteria.SortOrder)
	return filtered
}

// matchesSearch checks a case-insensitive substring against company,
// industry, city and country (OR across fields).
func matchesSearch(lead models.Lead, search string) bool {
	return strings.Contains(strings.ToLower(lead.Company), search) ||
		strings.Contains(strings.ToLower(lead.Industry), search) ||
		strings.Contains(strings.ToLower(lead.Location.City), search) ||
		strings.Contains(strings.ToLower(lead.Location.Country), search)
}

// sortLeads orders the slice in place by the given key and direction. Ties
// keep input order (stable sort). An unrecognized key falls back to
// relevance score, the default ranking.
func sortLeads(leads []models.Lead, sortBy, sortOrder string) {
	desc := sortOrder == models.SortDesc

	var less func(a, b models.Lead) bool
	switch sortBy {
	case models.SortByCompany:
		less = func(a, b models.Lead) bool {
			return strings.ToLower(a.Company) < strings.ToLower(b.Company)
		}
	case models.SortByFounded:
		less = func(a, b models.Lead) bool { return a.Founded < b.Founded }
	case models.SortByEmployeeCount:
		// Brackets compare by their rank in the ordered enumeration, not
		// lexicographically ("1000+" sorts after "11-50").
		less = func(a, b models.Lead) bool {
			return models.EmployeeCountRank(a.EmployeeCount) < models.EmployeeCountRank(b.EmployeeCount)
		}
	default:
		less = func(a, b models.Lead) bool { return a.RelevanceScore < b.RelevanceScore }
	}

	sort.SliceStable(leads, func(i, j int) bool {
		if desc {
			return less(leads[j], leads[i])
		}
		return less(leads[i], leads[j])
	})
}

// StatusCounts tallies the unfiltered collection per status. Every known
// status is present in the result, defaulting to zero, so the UI can render
// all tabs.
func StatusCounts(leads []models.Lead) map[models.LeadStatus]int {
	counts := make(map[models.LeadStatus]int, len(models.LeadStatuses))
	for _, status := range models.LeadStatuses {
		counts[status] = 0
	}
	for _, lead := range leads {
		counts[lead.Status]++
	}
	return counts
}

// DistinctIndustries returns the industries actually present in the
// collection, in order of first appearance.
func DistinctIndustries(leads []models.Lead) []string {
	seen := make(map[string]bool, len(leads))
	var industries []string
	for _, lead := range leads {
		if !seen[lead.Industry] {
			seen[lead.Industry] = true
			industries = append(industries, lead.Industry)
		}
	}
	return industries
}
