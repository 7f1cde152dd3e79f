// Package model defines the data structures used throughout the application.
package model

import "time"

// User represents a registered farmer account.
//
// The ID is an opaque xid string generated server-side on registration.
// Everything else is optional profile data — the rest of the API accepts a
// caller-supplied user id without checking it resolves to a User row, so a
// User is only required for the registration/lookup endpoints themselves.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`     // May be empty (farmers often register by phone in the field)
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Location  string    `json:"location"`  // Free-text, e.g. "Mysore, Karnataka"
	Language  string    `json:"language"`  // Preferred UI/voice language code, defaults to "en"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
