package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truleadai/models"
)

func sampleLeads() []models.Lead {
	return []models.Lead{
		{
			ID: "a", Company: "TechFlow Solutions", Industry: "Technology",
			Location:      models.Location{City: "Berlin", Country: "Germany"},
			Status:        models.StatusNew,
			EmployeeCount: "1000+", Founded: 2010, RelevanceScore: 85,
		},
		{
			ID: "b", Company: "DataVault Corp", Industry: "Finance",
			Location:      models.Location{City: "London", Country: "United Kingdom"},
			Status:        models.StatusHighPotential,
			EmployeeCount: "11-50", Founded: 2020, RelevanceScore: 92,
		},
		{
			ID: "c", Company: "CloudMaster Inc", Industry: "Technology",
			Location:      models.Location{City: "New York", Country: "United States"},
			Status:        models.StatusFollowUp,
			EmployeeCount: "51-200", Founded: 2005, RelevanceScore: 85,
		},
	}
}

func TestApplyViewSearch(t *testing.T) {
	leads := sampleLeads()

	t.Run("matches city case-insensitively", func(t *testing.T) {
		view := ApplyView(leads, models.ViewCriteria{Search: "berlin"})
		require.Len(t, view, 1)
		assert.Equal(t, "a", view[0].ID)
	})

	t.Run("matches across fields", func(t *testing.T) {
		view := ApplyView(leads, models.ViewCriteria{Search: "tech"})
		ids := []string{view[0].ID, view[1].ID}
		assert.ElementsMatch(t, []string{"a", "c"}, ids)
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		view := ApplyView(leads, models.ViewCriteria{Search: "  DataVault  "})
		require.Len(t, view, 1)
		assert.Equal(t, "b", view[0].ID)
	})

	t.Run("no match yields empty view", func(t *testing.T) {
		view := ApplyView(leads, models.ViewCriteria{Search: "zzz"})
		assert.Empty(t, view)
	})
}

func TestApplyViewFilters(t *testing.T) {
	leads := sampleLeads()

	t.Run("status filter", func(t *testing.T) {
		view := ApplyView(leads, models.ViewCriteria{Status: string(models.StatusHighPotential)})
		require.Len(t, view, 1)
		assert.Equal(t, "b", view[0].ID)
	})

	t.Run("all status passes everything", func(t *testing.T) {
		view := ApplyView(leads, models.ViewCriteria{Status: models.FilterAll})
		assert.Len(t, view, 3)
	})

	t.Run("industry filter", func(t *testing.T) {
		view := ApplyView(leads, models.ViewCriteria{Industry: "Technology"})
		assert.Len(t, view, 2)
	})

	t.Run("unknown filter value matches nothing", func(t *testing.T) {
		view := ApplyView(leads, models.ViewCriteria{Industry: "Aerospace"})
		assert.Empty(t, view)
	})
}

func TestApplyViewSort(t *testing.T) {
	leads := sampleLeads()

	t.Run("default is relevance descending with stable ties", func(t *testing.T) {
		view := ApplyView(leads, models.ViewCriteria{SortOrder: models.SortDesc})
		require.Len(t, view, 3)
		assert.Equal(t, "b", view[0].ID)
		// a and c tie on 85; input order is preserved.
		assert.Equal(t, "a", view[1].ID)
		assert.Equal(t, "c", view[2].ID)
	})

	t.Run("company ascending is case-insensitive", func(t *testing.T) {
		view := ApplyView(leads, models.ViewCriteria{
			SortBy: models.SortByCompany, SortOrder: models.SortAsc,
		})
		assert.Equal(t, []string{"c", "b", "a"}, []string{view[0].ID, view[1].ID, view[2].ID})
	})

	t.Run("founded ascending", func(t *testing.T) {
		view := ApplyView(leads, models.ViewCriteria{
			SortBy: models.SortByFounded, SortOrder: models.SortAsc,
		})
		assert.Equal(t, "c", view[0].ID)
		assert.Equal(t, "b", view[2].ID)
	})

	t.Run("employee count sorts by bracket rank not lexicographically", func(t *testing.T) {
		view := ApplyView(leads, models.ViewCriteria{
			SortBy: models.SortByEmployeeCount, SortOrder: models.SortAsc,
		})
		// "1000+" ranks above "11-50" and "51-200" despite string order.
		assert.Equal(t, []string{"b", "c", "a"}, []string{view[0].ID, view[1].ID, view[2].ID})
	})
}

func TestApplyViewIsPureAndIdempotent(t *testing.T) {
	leads := sampleLeads()
	criteria := models.ViewCriteria{
		Search: "tech", SortBy: models.SortByCompany, SortOrder: models.SortAsc,
	}

	once := ApplyView(leads, criteria)
	twice := ApplyView(once, criteria)
	assert.Equal(t, once, twice)

	// Input order untouched.
	assert.Equal(t, "a", leads[0].ID)
	assert.Equal(t, "b", leads[1].ID)
	assert.Equal(t, "c", leads[2].ID)
}

func TestStatusCounts(t *testing.T) {
	counts := StatusCounts(sampleLeads())

	assert.Len(t, counts, len(models.LeadStatuses))
	assert.Equal(t, 1, counts[models.StatusNew])
	assert.Equal(t, 1, counts[models.StatusHighPotential])
	assert.Equal(t, 1, counts[models.StatusFollowUp])
	assert.Equal(t, 0, counts[models.StatusNotConnected])

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 3, total)
}

func TestDistinctIndustries(t *testing.T) {
	industries := DistinctIndustries(sampleLeads())
	assert.Equal(t, []string{"Technology", "Finance"}, industries)

	assert.Empty(t, DistinctIndustries(nil))
}
