package types

import "errors"

// Resource service errors. Every service implementation must return
// ErrNotFound (possibly wrapped) when the addressed resource does not
// exist; the view delete path relies on distinguishing it from other
// failure kinds.
var (
	ErrNotFound = errors.New("resource not found")
)

// Caller-contract violations. These are raised locally, before any remote
// call is issued.
var (
	ErrViewNotFound           = errors.New("view not found in store")
	ErrReservedKey            = errors.New("type must not be provided in values")
	ErrUnknownViewType        = errors.New("unknown view type")
	ErrUnknownFilterType      = errors.New("unknown filter type")
	ErrIncompatibleFilterType = errors.New("filter type is not compatible with the field type")
	ErrNoCompatibleFilterType = errors.New("no filter type is compatible with the field type")
	ErrFieldNotFound          = errors.New("field not found")
	ErrFieldNotSortable       = errors.New("field type cannot be sorted")
	ErrInvalidSortOrder       = errors.New("invalid sort order")
)

// Backend lifecycle errors.
var (
	ErrBackendDetached = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
)
