package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"truleadai/models"
)

func TestAggregateEmptyCollection(t *testing.T) {
	summary := Aggregate(nil, nil)

	assert.Equal(t, 0, summary.TotalLeads)
	assert.Equal(t, 0.0, summary.AverageRelevance)
	assert.Equal(t, 0.0, summary.ResponseRate)
	assert.Empty(t, summary.BestIndustry)
	assert.Empty(t, summary.IndustryDistribution)
	assert.Len(t, summary.StatusDistribution, len(models.LeadStatuses))
}

func TestAggregateAverageRelevance(t *testing.T) {
	leads := []models.Lead{
		{ID: "a", RelevanceScore: 80},
		{ID: "b", RelevanceScore: 60},
	}

	summary := Aggregate(leads, nil)
	assert.Equal(t, 70.0, summary.AverageRelevance)

	// Rounded to one decimal place.
	leads = append(leads, models.Lead{ID: "c", RelevanceScore: 60})
	summary = Aggregate(leads, nil)
	assert.Equal(t, 66.7, summary.AverageRelevance)
}

func TestAggregateResponseRate(t *testing.T) {
	weekly := []models.WeeklyActivity{
		{Day: "Mon", Contacted: 8, Responded: 3},
		{Day: "Tue", Contacted: 12, Responded: 4},
	}

	summary := Aggregate(nil, weekly)
	assert.Equal(t, 35.0, summary.ResponseRate)

	// Zero contacts never divides by zero.
	summary = Aggregate(nil, []models.WeeklyActivity{{Day: "Mon"}})
	assert.Equal(t, 0.0, summary.ResponseRate)
}

func TestAggregateDistributions(t *testing.T) {
	leads := []models.Lead{
		{ID: "a", Industry: "Finance", Location: models.Location{Country: "Germany"}, Status: models.StatusNew},
		{ID: "b", Industry: "Technology", Location: models.Location{Country: "Germany"}, Status: models.StatusNew},
		{ID: "c", Industry: "Technology", Location: models.Location{Country: "Canada"}, Status: models.StatusFollowUp},
	}

	summary := Aggregate(leads, nil)

	assert.Equal(t, 3, summary.TotalLeads)
	assert.Equal(t, []models.KeyCount{
		{Key: "Finance", Count: 1},
		{Key: "Technology", Count: 2},
	}, summary.IndustryDistribution)
	assert.Equal(t, []models.KeyCount{
		{Key: "Germany", Count: 2},
		{Key: "Canada", Count: 1},
	}, summary.CountryDistribution)
	assert.Equal(t, "Technology", summary.BestIndustry)
	assert.Equal(t, 2, summary.StatusDistribution[models.StatusNew])
}

func TestAggregateBestIndustryTie(t *testing.T) {
	leads := []models.Lead{
		{ID: "a", Industry: "Retail"},
		{ID: "b", Industry: "Legal"},
	}

	// First industry to appear wins a tie.
	summary := Aggregate(leads, nil)
	assert.Equal(t, "Retail", summary.BestIndustry)
}

func TestAggregateDefaultWeeklySeries(t *testing.T) {
	weekly := models.DefaultWeeklyActivity()
	summary := Aggregate(nil, weekly)

	assert.Len(t, summary.WeeklyActivity, 7)
	// 30 responses over 64 contacts.
	assert.Equal(t, 46.9, summary.ResponseRate)
}
