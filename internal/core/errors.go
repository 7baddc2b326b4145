package core

// errors.go defines the error taxonomy for import calls and maps technical
// errors to user-friendly messages for the web layer.
//
// Two failures are fatal at the call level: the referenced recipe does not
// exist on the utility requirement path, and the upload has no recognizable
// header row at all. Individual rows with no usable data are still dropped
// silently — real-world spreadsheets carry title rows, subtotal rows, and
// half-filled lines, and treating those as errors would make every import
// fail. Collaborator failures (store, extractor) propagate unmodified.

import (
	"errors"
	"strings"
)

// ErrRecipeNotFound aborts an entire utility requirement import before any
// row is processed.
var ErrRecipeNotFound = errors.New("recipe not found")

// ErrMalformedTable means the uploaded bytes could not be read as a table
// with a recognizable header. It is client-side input, not a server fault.
var ErrMalformedTable = errors.New("malformed table")

// UserMessage is a user-friendly error with a support reference code.
type UserMessage struct {
	Code    string
	Message string
	Action  string
}

// MapError converts a technical error into a user-friendly message.
// Unrecognized errors get a generic message; the technical detail stays in
// the server logs.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	if errors.Is(err, ErrRecipeNotFound) {
		return UserMessage{
			Code:    "IMP001",
			Message: "The referenced recipe does not exist",
			Action:  "Check the recipe ID and try again",
		}
	}

	if errors.Is(err, ErrMalformedTable) {
		return UserMessage{
			Code:    "FILE001",
			Message: "The file could not be read as a table",
			Action:  "Ensure the file is a valid CSV export with its usual column headers",
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "connection reset"):
		return UserMessage{
			Code:    "DB001",
			Message: "Unable to reach the database",
			Action:  "Please try again in a few moments",
		}
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return UserMessage{
			Code:    "DB002",
			Message: "The operation timed out",
			Action:  "Try a smaller file or try again later",
		}
	case strings.Contains(msg, "parse"), strings.Contains(msg, "csv"):
		return UserMessage{
			Code:    "FILE001",
			Message: "The file could not be read as a table",
			Action:  "Ensure the file is a valid CSV export",
		}
	case strings.Contains(msg, "extract"):
		return UserMessage{
			Code:    "EXT001",
			Message: "The document extraction service failed",
			Action:  "Please try again; if it persists, contact support",
		}
	}

	return UserMessage{
		Code:    "GEN001",
		Message: "An unexpected error occurred",
		Action:  "Please try again; quote the request ID if contacting support",
	}
}
