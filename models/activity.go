package models

import "time"

// Activity event types recorded in the per-user feed.
const (
	ActivityLeadDiscovered   = "lead_discovered"
	ActivityStatusUpdated    = "status_updated"
	ActivityNoteAdded        = "note_added"
	ActivityInsightGenerated = "insight_generated"
)

// Activity is one entry of a user's recent-activity feed.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}

// MaxActivityEntries caps how many feed entries are kept per user; older
// entries are trimmed on write and by the background worker.
const MaxActivityEntries = 50
