// Package store is the durable persistence boundary: named slots holding
// complete serialized collections. There are no partial writes — every save
// replaces the whole payload for its slot, which is the accepted tradeoff
// at this scale (tens to low hundreds of records).
package store

import "context"

// Slot names for the two independent collections. These are part of the
// on-disk format and must never change.
const (
	SlotTrailers          = "trailers"
	SlotTractorRefuelings = "tractor_refuelings"
)

// Store persists raw collection payloads under fixed slot names.
type Store interface {
	// Load returns the payload stored in slot, or (nil, nil) when the slot
	// has never been written. A missing slot is not an error.
	Load(ctx context.Context, slot string) ([]byte, error)

	// Save replaces the payload stored in slot.
	Save(ctx context.Context, slot string, payload []byte) error
}
