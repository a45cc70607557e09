package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"truleadai/models"
)

// Key layout. Each user owns three logical keys; the index key tracks every
// account that has logged in so background maintenance can iterate them.
func UserKey(userID string) string     { return "truleadai:user:" + userID }
func LeadsKey(userID string) string    { return "truleadai:leads:" + userID }
func ActivityKey(userID string) string { return "truleadai:activity:" + userID }
func userIndexKey() string             { return "truleadai:users" }

// LoadUser fetches a user record. A missing key yields (nil, nil) so callers
// can distinguish "never logged in" from a storage failure.
func LoadUser(s Store, userID string) (*models.User, error) {
	blob, err := s.Get(UserKey(userID))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(blob, &user); err != nil {
		return nil, fmt.Errorf("%w: user %s: %v", ErrCorrupt, userID, err)
	}
	return &user, nil
}

// SaveUser writes the user record through to the store. Every successful
// quota reservation and rollover must pass through here before the caller
// considers it complete.
func SaveUser(s Store, user *models.User) error {
	blob, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.Set(UserKey(user.ID), blob); err != nil {
		return err
	}
	return indexUser(s, user.ID)
}

// LoadLeads fetches a user's full lead collection. A missing key is an empty
// collection; an unparseable blob returns an empty collection together with
// an ErrCorrupt-wrapped error so the session can continue while the caller
// surfaces the corruption.
func LoadLeads(s Store, userID string) ([]models.Lead, error) {
	blob, err := s.Get(LeadsKey(userID))
	if errors.Is(err, ErrNotFound) {
		return []models.Lead{}, nil
	}
	if err != nil {
		return nil, err
	}

	var leads []models.Lead
	if err := json.Unmarshal(blob, &leads); err != nil {
		return []models.Lead{}, fmt.Errorf("%w: leads %s: %v", ErrCorrupt, userID, err)
	}
	return leads, nil
}

// SaveLeads persists the whole collection; the collection, not the
// individual lead, is the unit of durability.
func SaveLeads(s Store, userID string, leads []models.Lead) error {
	blob, err := json.Marshal(leads)
	if err != nil {
		return err
	}
	return s.Set(LeadsKey(userID), blob)
}

// LoadActivities fetches the recent-activity feed, newest first.
func LoadActivities(s Store, userID string) ([]models.Activity, error) {
	blob, err := s.Get(ActivityKey(userID))
	if errors.Is(err, ErrNotFound) {
		return []models.Activity{}, nil
	}
	if err != nil {
		return nil, err
	}

	var activities []models.Activity
	if err := json.Unmarshal(blob, &activities); err != nil {
		return []models.Activity{}, fmt.Errorf("%w: activity %s: %v", ErrCorrupt, userID, err)
	}
	return activities, nil
}

// SaveActivities persists the feed, trimming it to the retention cap first.
func SaveActivities(s Store, userID string, activities []models.Activity) error {
	if len(activities) > models.MaxActivityEntries {
		activities = activities[:models.MaxActivityEntries]
	}
	blob, err := json.Marshal(activities)
	if err != nil {
		return err
	}
	return s.Set(ActivityKey(userID), blob)
}

// KnownUserIDs returns every user ID that has been saved, for background
// maintenance sweeps.
func KnownUserIDs(s Store) ([]string, error) {
	blob, err := s.Get(userIndexKey())
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(blob, &ids); err != nil {
		return nil, fmt.Errorf("%w: user index: %v", ErrCorrupt, err)
	}
	return ids, nil
}

func indexUser(s Store, userID string) error {
	ids, err := KnownUserIDs(s)
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}
	for _, id := range ids {
		if id == userID {
			return nil
		}
	}
	ids = append(ids, userID)
	blob, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.Set(userIndexKey(), blob)
}
