package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truleadai/models"
)

func TestLoadUserMissing(t *testing.T) {
	kv := NewMemoryStore()

	user, err := LoadUser(kv, "user-1")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSaveAndLoadUser(t *testing.T) {
	kv := NewMemoryStore()

	saved := &models.User{
		ID: "user-1", Name: "Sales Rep", Role: "user",
		DailyQuota: 100, UsedQuota: 12, LastReset: "2025-06-15",
	}
	require.NoError(t, SaveUser(kv, saved))

	loaded, err := LoadUser(kv, "user-1")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	// Saving also registers the account in the index.
	ids, err := KnownUserIDs(kv)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, ids)

	// Re-saving does not duplicate the index entry.
	require.NoError(t, SaveUser(kv, saved))
	ids, err = KnownUserIDs(kv)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestLoadUserCorrupt(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set(UserKey("user-1"), []byte("{not json")))

	_, err := LoadUser(kv, "user-1")
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestLoadLeadsMissingIsEmpty(t *testing.T) {
	kv := NewMemoryStore()

	leads, err := LoadLeads(kv, "user-1")
	require.NoError(t, err)
	assert.Empty(t, leads)
	assert.NotNil(t, leads)
}

func TestSaveAndLoadLeads(t *testing.T) {
	kv := NewMemoryStore()

	saved := []models.Lead{
		{ID: "a", Company: "TechFlow Solutions", Status: models.StatusNew, RelevanceScore: 85},
		{ID: "b", Company: "DataVault Corp", Status: models.StatusFollowUp, RelevanceScore: 92},
	}
	require.NoError(t, SaveLeads(kv, "user-1", saved))

	loaded, err := LoadLeads(kv, "user-1")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadLeadsCorrupt(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set(LeadsKey("user-1"), []byte("broken")))

	leads, err := LoadLeads(kv, "user-1")
	assert.ErrorIs(t, err, ErrCorrupt)
	// Corrupt blob still yields a usable empty collection.
	assert.Empty(t, leads)
	assert.NotNil(t, leads)
}

func TestSaveActivitiesTrims(t *testing.T) {
	kv := NewMemoryStore()

	feed := make([]models.Activity, models.MaxActivityEntries+10)
	for i := range feed {
		feed[i] = models.Activity{ID: string(rune('a' + i%26)), Type: models.ActivityNoteAdded}
	}
	require.NoError(t, SaveActivities(kv, "user-1", feed))

	loaded, err := LoadActivities(kv, "user-1")
	require.NoError(t, err)
	assert.Len(t, loaded, models.MaxActivityEntries)
}

func TestMemoryStoreIsolation(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set("k", []byte("abc")))

	got, err := kv.Get("k")
	require.NoError(t, err)

	// Mutating the returned slice must not leak into the store.
	got[0] = 'z'
	again, err := kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)

	require.NoError(t, kv.Delete("k"))
	_, err = kv.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}
