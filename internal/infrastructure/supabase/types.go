// Package supabase is a client for the external identity-and-data platform:
// GoTrue auth under /auth/v1 and the PostgREST data plane under /rest/v1.
//
// The service keeps no durable state of its own; every profile, friend edge
// and message lives behind this client.
package supabase

import (
	"encoding/json"
	"time"
)

// Config holds the settings for a platform client.
type Config struct {
	// URL is the project base URL (e.g. https://xyz.supabase.co).
	URL string
	// AnonKey authenticates requests to the auth API.
	AnonKey string
	// ServiceKey authenticates data-plane requests, bypassing row-level
	// security. Falls back to AnonKey when empty.
	ServiceKey string
	// Timeout bounds each outbound request. Defaults to 10s.
	Timeout time.Duration
}

// platformUser is the auth API's user representation. Only the fields this
// service relays are decoded.
type platformUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// platformSession is the auth API's session envelope.
type platformSession struct {
	AccessToken  string        `json:"access_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int           `json:"expires_in"`
	RefreshToken string        `json:"refresh_token"`
	User         *platformUser `json:"user"`
}

// Error is a platform API error. StatusCode carries the platform's own HTTP
// status; Message is its reported reason, relayed to clients for validation
// failures.
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	StatusCode int    `json:"status_code"`
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// parseError decodes a platform error body, tolerating the different shapes
// the auth and data APIs use.
func parseError(body []byte, statusCode int) error {
	var envelope struct {
		Code             string `json:"code"`
		Message          string `json:"message"`
		Details          string `json:"details"`
		Msg              string `json:"msg"`
		ErrorField       string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return &Error{Code: "unknown", Message: string(body), StatusCode: statusCode}
	}

	msg := envelope.Message
	if msg == "" {
		msg = envelope.Msg
	}
	if msg == "" {
		msg = envelope.ErrorField
	}
	if msg == "" {
		msg = envelope.ErrorDescription
	}

	return &Error{
		Code:       envelope.Code,
		Message:    msg,
		Details:    envelope.Details,
		StatusCode: statusCode,
	}
}
