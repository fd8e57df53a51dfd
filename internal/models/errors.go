package models

import "errors"

// Error taxonomy shared across repositories, services and controllers.
// Repositories translate driver errors (gorm.ErrRecordNotFound) into these
// sentinels so callers can branch with errors.Is.
var (
	// ErrNotFound means an operation referenced a nonexistent record id.
	ErrNotFound = errors.New("record not found")

	// ErrValidation means the input was rejected before touching the store.
	ErrValidation = errors.New("validation failed")

	// ErrStoreUnavailable means the record store failed; propagated to the
	// caller, never swallowed.
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrRemoteSync means a leaderboard publish/subscribe failed. Logged and
	// tolerated: user-facing flows continue with stale leaderboard data.
	ErrRemoteSync = errors.New("leaderboard sync failed")
)
