// Package instant contains the core concepts of the instant event system.
// An instant event is a time-boxed Q&A session owned by a member; messages
// and their embedded replies live underneath it.
package instant

import "time"

// InstantEvent represents a time-boxed Q&A session under a member.
// Optional fields are pointers: absent means the field was never supplied,
// it is never persisted as an empty value.
type InstantEvent struct {
	ID        string  `json:"instantEventId"`
	Title     string  `json:"title"`
	Desc      *string `json:"desc,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Closed    bool    `json:"closed"`
}

// EventDraft is the sparse creation payload for an event. A nil field was
// not supplied and must not be written at all.
type EventDraft struct {
	Title     string
	Desc      *string
	StartDate *string
	EndDate   *string
}

// Expired reports whether now is at or past the event's end date.
// Events without an end date never expire.
func (e InstantEvent) Expired(now time.Time) (bool, error) {
	if e.EndDate == nil {
		return false, nil
	}
	end, err := time.Parse(time.RFC3339, *e.EndDate)
	if err != nil {
		return false, err
	}
	return !now.Before(end), nil
}
