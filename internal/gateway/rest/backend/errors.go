package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: the requested row does not exist or is hidden by
	// row-level security.
	ErrNotFound = errors.New("backend: not found")

	// ErrUnauthorized: the actor is not allowed to touch this row.
	ErrUnauthorized = errors.New("backend: unauthorized")

	// ErrPrecondition: a transition procedure refused because the row is
	// no longer in an eligible state. Callers re-fetch, never retry.
	ErrPrecondition = errors.New("backend: precondition failed")

	// ErrUnknownColumn: the write referenced a column this backend
	// deployment does not have. Triggers the single minimal-schema
	// fallback, nothing else.
	ErrUnknownColumn = errors.New("backend: unknown column")

	// ErrDecode: a row came back without a required field. Surfaced as an
	// error instead of a silently zeroed struct.
	ErrDecode = errors.New("backend: malformed row")
)

// apiError is the backend's JSON error envelope.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// Postgres / PostgREST codes the client reacts to. Everything else is
// passed through wrapped but unclassified.
const (
	pgCodeUndefinedColumn = "42703"
	pgCodeRaiseException  = "P0001"
	restCodeMissingColumn = "PGRST204"
)

// classify maps a non-2xx response onto the gateway's sentinel errors,
// keeping the backend's message verbatim for the user.
func classify(statusCode int, e apiError) error {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("http status %d", statusCode)
	}

	switch {
	case e.Code == pgCodeUndefinedColumn || e.Code == restCodeMissingColumn:
		return fmt.Errorf("%w: %s", ErrUnknownColumn, msg)
	case e.Code == pgCodeRaiseException || statusCode == 409:
		return fmt.Errorf("%w: %s", ErrPrecondition, msg)
	case statusCode == 401 || statusCode == 403:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case statusCode == 404 || statusCode == 406:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	default:
		return fmt.Errorf("backend: %s (status %d, code %q)", msg, statusCode, e.Code)
	}
}

func decodeError(table, field string) error {
	return fmt.Errorf("%w: %s row missing %q", ErrDecode, table, field)
}
