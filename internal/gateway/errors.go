package gateway

import "errors"

var (
	// ErrSkipFrame reports a frame that carries no cache-relevant dispatch.
	ErrSkipFrame = errors.New("gateway: skip frame")
	// ErrMalformedFrame reports a frame that is not a gateway payload object,
	// or whose body does not decode into the dispatch payload.
	ErrMalformedFrame = errors.New("gateway: malformed frame")
)
