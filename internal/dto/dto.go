// Package dto holds the transfer objects exchanged at the HTTP boundary.
//
// Every field is a pointer so that a missing field can be told apart from a zero
// value; required-field checks run explicitly before any value is used.
package dto

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}
