package errors

import "fmt"

// ErrNotFound is the base kind for a missing link in the
// member -> event -> message chain. The per-target sentinels wrap it, so
// callers can branch on the kind (errors.Is(err, ErrNotFound)) or on the
// exact target without matching message text.
var (
	ErrNotFound = fmt.Errorf("not found")

	ErrMemberNotFound  = fmt.Errorf("member does not exist: %w", ErrNotFound)
	ErrEventNotFound   = fmt.Errorf("instant event does not exist: %w", ErrNotFound)
	ErrMessageNotFound = fmt.Errorf("message does not exist: %w", ErrNotFound)
)

var (
	// ErrEventClosed is returned when an event is closed or past its end date.
	// The first post attempt after expiry both closes the event and fails with this.
	ErrEventClosed = fmt.Errorf("instant event is closed")

	// ErrUnavailable is returned when a transaction could not commit after retries.
	ErrUnavailable = fmt.Errorf("store unavailable")

	ErrInvalidRequest = fmt.Errorf("invalid request")
)
