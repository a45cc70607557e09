package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truleadai/models"
)

func TestSetStatus(t *testing.T) {
	leads := []models.Lead{
		{ID: "a", Status: models.StatusNew, Notes: "call back"},
		{ID: "b", Status: models.StatusNew},
	}

	updated, err := SetStatus(leads, "a", models.StatusHighPotential)
	require.NoError(t, err)

	assert.Equal(t, models.StatusHighPotential, updated[0].Status)
	assert.Equal(t, "call back", updated[0].Notes)
	assert.Equal(t, models.StatusNew, updated[1].Status)

	// Input slice is never mutated.
	assert.Equal(t, models.StatusNew, leads[0].Status)
}

func TestSetStatusUnknownLead(t *testing.T) {
	leads := []models.Lead{{ID: "a", Status: models.StatusNew}}

	_, err := SetStatus(leads, "z", models.StatusFollowUp)
	assert.ErrorIs(t, err, ErrLeadNotFound)
	assert.Equal(t, models.StatusNew, leads[0].Status)
}

func TestSetNotes(t *testing.T) {
	leads := []models.Lead{
		{ID: "a", Notes: "old note"},
		{ID: "b"},
	}

	updated, err := SetNotes(leads, "a", "replaced wholesale")
	require.NoError(t, err)
	assert.Equal(t, "replaced wholesale", updated[0].Notes)
	assert.Empty(t, updated[1].Notes)

	// Clearing is a plain replacement with the empty string.
	cleared, err := SetNotes(updated, "a", "")
	require.NoError(t, err)
	assert.Empty(t, cleared[0].Notes)
}

func TestSetNotesUnknownLead(t *testing.T) {
	_, err := SetNotes([]models.Lead{{ID: "a"}}, "z", "note")
	assert.ErrorIs(t, err, ErrLeadNotFound)
}
