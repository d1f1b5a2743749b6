package discord

import "errors"

var (
	// ErrInvalidID indicates that a snowflake string could not be parsed.
	ErrInvalidID = errors.New("discord: invalid id")
	// ErrMissingField indicates a payload without a required object.
	ErrMissingField = errors.New("discord: missing field")
	// ErrUnknownEvent indicates a payload type with no cache event.
	ErrUnknownEvent = errors.New("discord: unknown event")
)
