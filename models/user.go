package models

// User represents a platform account together with its daily discovery
// quota. The quota fields are mutated only by the quota helpers in utils;
// everything else is fixed at login.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // user or admin

	// Daily discovery allowance. UsedQuota never exceeds DailyQuota.
	// LastReset holds the calendar day (YYYY-MM-DD) the counter was last
	// reset; the comparison against the current day, not a timer, drives
	// rollover.
	DailyQuota int    `json:"dailyQuota"`
	UsedQuota  int    `json:"usedQuota"`
	LastReset  string `json:"lastReset"`
}

// DefaultDailyQuota is granted to every demo account at login.
const DefaultDailyQuota = 100

// QuotaDateLayout is the calendar-day marker format stored in LastReset.
const QuotaDateLayout = "2006-01-02"

// Remaining returns the unconsumed part of the daily allowance, never
// negative.
func (u *User) Remaining() int {
	r := u.DailyQuota - u.UsedQuota
	if r < 0 {
		return 0
	}
	return r
}
