package utils

import "truleadai/models"

// SetStatus returns a copy of the collection with the matching lead's status
// replaced. Fails with ErrLeadNotFound when no lead has that id; every other
// lead's value is unchanged. The caller write-through persists the whole
// returned collection.
func SetStatus(leads []models.Lead, id string, status models.LeadStatus) ([]models.Lead, error) {
	return updateLead(leads, id, func(lead *models.Lead) {
		lead.Status = status
	})
}

// SetNotes replaces the matching lead's notes wholesale (no merge or
// append). Same contract as SetStatus otherwise.
func SetNotes(leads []models.Lead, id string, notes string) ([]models.Lead, error) {
	return updateLead(leads, id, func(lead *models.Lead) {
		lead.Notes = notes
	})
}

func updateLead(leads []models.Lead, id string, mutate func(*models.Lead)) ([]models.Lead, error) {
	updated := make([]models.Lead, len(leads))
	copy(updated, leads)

	for i := range updated {
		if updated[i].ID == id {
			mutate(&updated[i])
			return updated, nil
		}
	}
	return nil, ErrLeadNotFound
}
