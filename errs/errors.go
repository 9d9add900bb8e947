// Package errs defines the sentinel errors shared across packbuf packages.
//
// All failures on the pack path are surfaced as one of these sentinels,
// possibly wrapped with additional context. Callers inspect them with
// errors.Is; no operation panics or aborts.
package errs

import "errors"

var (
	// ErrNilRegion is returned when a cursor is constructed over a nil region.
	ErrNilRegion = errors.New("destination region is nil")

	// ErrInvalidAlignment is returned when the alignment stride is not a
	// positive power of two.
	ErrInvalidAlignment = errors.New("alignment stride must be a positive power of two")

	// ErrCapacityExceeded is returned when an advance or pack would write
	// past the end of the destination region. The cursor offset is left
	// unchanged.
	ErrCapacityExceeded = errors.New("pack exceeds remaining region capacity")

	// ErrUnderflow is returned when a retreat or rewind would move the
	// cursor before the start of the region. The cursor offset is left
	// unchanged.
	ErrUnderflow = errors.New("retreat exceeds written size")

	// ErrNilInput is returned when a nil slice is passed to a span or
	// terminated-buffer strategy. Nothing is written.
	ErrNilInput = errors.New("nil input passed to pack")

	// ErrEmptyContainer is returned when an empty container is packed.
	// Empty containers are never serialized; nothing is written.
	ErrEmptyContainer = errors.New("empty container passed to pack")
)
