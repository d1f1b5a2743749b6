package cache

import "errors"

// ErrUnknownResourceType indicates a resource type name with no matching kind.
var ErrUnknownResourceType = errors.New("cache: unknown resource type")
