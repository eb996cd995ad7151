// Package types holds the wire envelopes shared by every HTTP endpoint.
package types

// SuccessEnvelope wraps report payloads so clients always unwrap the same
// top-level "data" key regardless of which report they requested.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error body. Details carries field-level
// validation hints and is only populated for codes that allow it.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
