package utils

import "errors"

// Error taxonomy of the lead pipeline.
var (
	// ErrQuotaExceeded means the requested batch does not fit in the
	// remaining daily allowance. Recoverable: the quota resets on the next
	// calendar day.
	ErrQuotaExceeded = errors.New("daily discovery quota exceeded")

	// ErrLeadNotFound means a lifecycle mutation targeted an id that is not
	// in the collection. Caller error, not retried.
	ErrLeadNotFound = errors.New("lead not found")

	// ErrInsightFailed means the opaque insight collaborator failed; lead
	// data is unaffected and the caller sees "insight unavailable".
	ErrInsightFailed = errors.New("insight generation failed")
)
