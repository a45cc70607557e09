package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truleadai/models"
)

func insightLead() models.Lead {
	return models.Lead{
		ID:       "a",
		Company:  "TechFlow Solutions",
		Industry: "Technology",
		Location: models.Location{City: "Berlin", Country: "Germany"},

		EmployeeCount: "1000+",
		Revenue:       "$100M+",
		Founded:       2021,
	}
}

func fixedNowGenerator(year int) *TemplateInsightGenerator {
	gen := NewTemplateInsightGenerator()
	gen.now = func() time.Time { return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC) }
	return gen
}

func TestGenerateInsightContent(t *testing.T) {
	gen := fixedNowGenerator(2025)

	insight, err := gen.Generate(context.Background(), insightLead())
	require.NoError(t, err)

	assert.Contains(t, insight, "Enterprise Strategy")
	assert.Contains(t, insight, "Tech-Savvy Audience")
	assert.Contains(t, insight, "High-Value Target")
	assert.Contains(t, insight, "German Market")
	assert.Contains(t, insight, "Growth Phase")
	assert.Contains(t, insight, "Conversation Starters")
	assert.Contains(t, insight, "TechFlow Solutions")
	assert.Contains(t, insight, "Berlin")
}

func TestGenerateInsightCompanyAgeBranches(t *testing.T) {
	gen := fixedNowGenerator(2025)

	lead := insightLead()
	lead.Founded = 2000
	insight, err := gen.Generate(context.Background(), lead)
	require.NoError(t, err)
	assert.Contains(t, insight, "Established Player")
	assert.NotContains(t, insight, "Growth Phase")

	// Mid-age companies get neither age insight.
	lead.Founded = 2015
	insight, err = gen.Generate(context.Background(), lead)
	require.NoError(t, err)
	assert.NotContains(t, insight, "Established Player")
	assert.NotContains(t, insight, "Growth Phase")
}

func TestGenerateInsightUnknownFirmographics(t *testing.T) {
	gen := fixedNowGenerator(2025)

	lead := models.Lead{
		ID: "b", Company: "CodeCraft Studios", Industry: "Agriculture",
		Location: models.Location{City: "Reykjavik", Country: "Iceland"},

		EmployeeCount: "51-200",
		Revenue:       "$10M-$50M",
		Founded:       2015,
	}

	// No matching template still yields the conversation starters.
	insight, err := gen.Generate(context.Background(), lead)
	require.NoError(t, err)
	assert.Contains(t, insight, "Conversation Starters")
	assert.Contains(t, insight, "CodeCraft Studios")
}

func TestConversationStartersUseLiteralQuotes(t *testing.T) {
	gen := fixedNowGenerator(2025)

	lead := insightLead()
	lead.Company = `O'Brien "Analytics" Ltd`

	insight, err := gen.Generate(context.Background(), lead)
	require.NoError(t, err)

	// The quoting is plain text, never Go string escaping.
	assert.Contains(t, insight, `"I noticed O'Brien "Analytics" Ltd has been expanding`)
	assert.NotContains(t, insight, `\"`)
	assert.NotContains(t, insight, `\'`)
}

func TestGenerateInsightCancelledContext(t *testing.T) {
	gen := NewTemplateInsightGenerator()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, insightLead())
	assert.ErrorIs(t, err, ErrInsightFailed)
}
