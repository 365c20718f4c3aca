// Package identity generates local record identifiers.
//
// Identifiers only need to be collision-free within a single store's
// lifetime — there is no multi-writer scenario — so a UUIDv7 (millisecond
// timestamp plus random bits) is more than sufficient, and its time prefix
// keeps ids roughly sortable by creation.
package identity

import "github.com/google/uuid"

// New returns a fresh opaque identifier. No two calls in the same process
// return equal values under normal execution.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4,
		// which panics in the same (unrecoverable) situation.
		return uuid.NewString()
	}
	return id.String()
}
