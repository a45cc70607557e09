package utils

import (
	"fmt"
	"time"

	"truleadai/models"
)

// CheckAndRollover resets the used quota when the stored reset marker is not
// the current calendar day. It must run before any capacity check; the
// comparison on access, not a timer, is what drives rollover. The returned
// flag tells the caller whether the state changed and needs persisting.
func CheckAndRollover(user models.User, now time.Time) (models.User, bool) {
	today := now.Format(models.QuotaDateLayout)
	if user.LastReset == today {
		return user, false
	}
	user.UsedQuota = 0
	user.LastReset = today
	return user, true
}

// Remaining returns the unconsumed daily allowance, never negative.
func Remaining(user models.User) int {
	return user.Remaining()
}

// Reserve debits amount from the daily allowance. It fails with
// ErrQuotaExceeded when the amount does not fit, leaving the state
// unchanged; amount must be positive. Callers persist the returned state
// before appending the corresponding leads.
func Reserve(user models.User, amount int) (models.User, error) {
	if amount <= 0 {
		return user, fmt.Errorf("reserve amount must be positive, got %d", amount)
	}
	if amount > user.Remaining() {
		return user, ErrQuotaExceeded
	}
	user.UsedQuota += amount
	return user, nil
}
