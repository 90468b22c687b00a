package content

import "errors"

var (
	// ErrDataUnavailable means the content payload could not be loaded.
	ErrDataUnavailable = errors.New("content data unavailable")

	// ErrPayloadMissing is returned by a Source whose payload is not there yet.
	ErrPayloadMissing = errors.New("content payload missing")

	// ErrInvalidPayload means the payload was present but malformed.
	ErrInvalidPayload = errors.New("invalid content payload")

	// ErrNotFound means no record has the requested id.
	ErrNotFound = errors.New("record not found")
)
