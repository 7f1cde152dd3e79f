// Package request defines the typed shapes of incoming API payloads and
// their validation rules.
//
// WHY A SEPARATE PACKAGE?
// Handlers decode JSON into these structs and call Validate() before doing
// anything else. A nil FieldErrors means the request is safe to act on; a
// non-nil map becomes the 400 body verbatim. Keeping the rules here (rather
// than inline in each handler) gives every POST endpoint the same contract:
// validation failures never reach a service and never cause a side effect.
package request

import (
	"strings"

	"github.com/sakif/farm-assistant/internal/apperror"
)

// DiagnoseDisease is the body of POST /api/diagnose-disease.
// ImageData is a base64 image, optionally wrapped in a data-URI prefix
// (the handler strips it). UserID is optional — when present, the scan and
// an activity are recorded against it.
type DiagnoseDisease struct {
	ImageData string `json:"imageData"`
	UserID    string `json:"userId"`
}

// Validate reports field-level violations, or nil when the request is valid.
func (r DiagnoseDisease) Validate() apperror.FieldErrors {
	fields := apperror.FieldErrors{}
	if strings.TrimSpace(r.ImageData) == "" {
		fields.Add("imageData", "imageData is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Query is the shared body of the free-text POST endpoints:
// /api/market-insight, /api/market-analysis, /api/schemes/recommend and
// /api/voice-query all take the same {query, userId?} shape.
type Query struct {
	Query  string `json:"query"`
	UserID string `json:"userId"`
}

func (r Query) Validate() apperror.FieldErrors {
	fields := apperror.FieldErrors{}
	if strings.TrimSpace(r.Query) == "" {
		fields.Add("query", "query is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Weather is the query-string shape of GET /api/weather.
type Weather struct {
	Location string
}

func (r Weather) Validate() apperror.FieldErrors {
	fields := apperror.FieldErrors{}
	if strings.TrimSpace(r.Location) == "" {
		fields.Add("location", "location is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// RegisterUser is the body of POST /api/users.
type RegisterUser struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Location  string `json:"location"`
	Language  string `json:"language"`
}

func (r RegisterUser) Validate() apperror.FieldErrors {
	fields := apperror.FieldErrors{}
	if strings.TrimSpace(r.FirstName) == "" {
		fields.Add("firstName", "firstName is required")
	}
	// Email is optional (field registrations often have none), but when
	// present it has to look like one.
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		fields.Add("email", "email must be a valid address")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
