package reports

import "errors"

var (
	// ErrUnknownCategory means the requested category code is not one of
	// the fixed report categories. A client error, not a fault.
	ErrUnknownCategory = errors.New("unknown report category")

	// ErrTenantRequired means the caller has no tenant resolved. Distinct
	// from an empty result on purpose.
	ErrTenantRequired = errors.New("tenant required")

	// ErrRendererUnavailable means no rendering backend is registered for
	// the requested export format.
	ErrRendererUnavailable = errors.New("export renderer unavailable")
)
