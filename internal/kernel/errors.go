package kernel

import "errors"

var (
	// ErrPipelineClosed reports a publish after Close.
	ErrPipelineClosed = errors.New("kernel: pipeline closed")
	// ErrEventDropped reports an event rejected by the drop_newest policy.
	ErrEventDropped = errors.New("kernel: event dropped")
	// ErrInvalidBackpressure reports an unknown backpressure policy name.
	ErrInvalidBackpressure = errors.New("kernel: invalid backpressure policy")
)
