// Package repo holds the in-memory authority over the two record
// collections. Every mutating operation applies to memory first and then
// re-serializes the entire affected collection to the store — the
// persistence layer has no concept of partial writes.
package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mapler/fleet-records/internal/domain"
	"github.com/mapler/fleet-records/internal/identity"
	"github.com/mapler/fleet-records/internal/migrate"
	"github.com/mapler/fleet-records/internal/store"
)

// Fleet reconciles create/update operations against the trailer and tractor
// refueling collections. Both collections are ordered most-recently-created
// first. There is exactly one Fleet per process, constructed in main and
// passed to its consumers — no package-level state.
//
// The HTTP surface makes calls concurrent, so a mutex keeps each operation
// atomic from the caller's perspective.
type Fleet struct {
	mu       sync.RWMutex
	store    store.Store
	migrator *migrate.Migrator
	log      *slog.Logger

	trailers          []domain.Trailer
	tractorRefuelings []domain.TractorRefuelingRecord
}

// New constructs a Fleet over the given store. Call Load before serving.
func New(st store.Store, log *slog.Logger) *Fleet {
	if log == nil {
		log = slog.Default()
	}
	return &Fleet{
		store:             st,
		migrator:          migrate.New(log),
		log:               log,
		trailers:          []domain.Trailer{},
		tractorRefuelings: []domain.TractorRefuelingRecord{},
	}
}

// Load reads both slots from the store and installs the migrated
// collections. It never fails: a store read error or malformed payload
// yields an empty collection with a logged warning, so startup is never
// blocked by bad or missing data.
func (f *Fleet) Load(ctx context.Context) {
	rawTrailers, err := f.store.Load(ctx, store.SlotTrailers)
	if err != nil {
		f.log.Warn("loading trailer slot failed, starting empty", "error", err)
		rawTrailers = nil
	}
	rawRefuelings, err := f.store.Load(ctx, store.SlotTractorRefuelings)
	if err != nil {
		f.log.Warn("loading tractor refueling slot failed, starting empty", "error", err)
		rawRefuelings = nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.trailers = f.migrator.Trailers(rawTrailers)
	f.tractorRefuelings = f.migrator.TractorRefuelings(rawRefuelings)
	f.log.Info("collections loaded",
		"trailers", len(f.trailers),
		"tractor_refuelings", len(f.tractorRefuelings),
	)
}

// SaveTrailer upserts a trailer. A trailer with a matching id is replaced in
// place, keeping its position in the collection; otherwise the trailer is
// assigned a fresh id if it has none and prepended. The record is normalized
// before storing, so every domain invariant holds for anything the
// collection surfaces. Saving an identical record twice is idempotent.
func (f *Fleet) SaveTrailer(ctx context.Context, t domain.Trailer) (domain.Trailer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t.Normalize()
	if i := f.trailerIndex(t.ID); i >= 0 {
		f.trailers[i] = t
	} else {
		if t.ID == "" {
			t.ID = identity.New()
		}
		f.trailers = append([]domain.Trailer{t}, f.trailers...)
	}

	if err := f.persistTrailers(ctx); err != nil {
		return t.Clone(), fmt.Errorf("repo.Fleet.SaveTrailer: %w", err)
	}
	return t.Clone(), nil
}

// AddTractorRefueling records a tractor refueling fact. Always an insert
// with a fresh id, prepended so the collection stays newest-first; any id on
// the input is ignored.
func (f *Fleet) AddTractorRefueling(ctx context.Context, rec domain.TractorRefuelingRecord) (domain.TractorRefuelingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec.ID = identity.New()
	f.tractorRefuelings = append([]domain.TractorRefuelingRecord{rec}, f.tractorRefuelings...)

	if err := f.persistTractorRefuelings(ctx); err != nil {
		return rec, fmt.Errorf("repo.Fleet.AddTractorRefueling: %w", err)
	}
	return rec, nil
}

// AddRefrigerationRefueling prepends a refueling entry to the named
// trailer's history, assigning the entry a fresh id. The trailer's position
// in the collection is unchanged.
//
// An unknown trailerID is a silent no-op reported as found=false, not an
// error: with no delete operation the case is unreachable in intended
// usage, but it must never crash.
func (f *Fleet) AddRefrigerationRefueling(ctx context.Context, trailerID string, entry domain.RefrigerationUnitRefuelingEntry) (domain.Trailer, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.trailerIndex(trailerID)
	if i < 0 {
		return domain.Trailer{}, false, nil
	}

	entry.ID = identity.New()
	t := f.trailers[i].Clone()
	t.RefrigerationUnitRefuelings = append(
		[]domain.RefrigerationUnitRefuelingEntry{entry},
		t.RefrigerationUnitRefuelings...,
	)
	f.trailers[i] = t

	if err := f.persistTrailers(ctx); err != nil {
		return t.Clone(), true, fmt.Errorf("repo.Fleet.AddRefrigerationRefueling: %w", err)
	}
	return t.Clone(), true, nil
}

// Trailers returns a copy of the trailer collection, newest-first.
func (f *Fleet) Trailers() []domain.Trailer {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return cloneTrailers(f.trailers)
}

// TrailerByID returns the trailer with the given id.
// Returns domain.ErrNotFound when no such trailer exists.
func (f *Fleet) TrailerByID(id string) (domain.Trailer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if i := f.trailerIndex(id); i >= 0 {
		return f.trailers[i].Clone(), nil
	}
	return domain.Trailer{}, fmt.Errorf("repo.Fleet.TrailerByID: %w", domain.ErrNotFound)
}

// FindTrailersByText returns trailers whose license plate, nickname, or
// driver name contains term, case-insensitively, preserving collection
// order. An empty (or all-whitespace) term matches everything. The term is
// never persisted.
func (f *Fleet) FindTrailersByText(term string) []domain.Trailer {
	f.mu.RLock()
	defer f.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return cloneTrailers(f.trailers)
	}

	var out []domain.Trailer
	for _, t := range f.trailers {
		if strings.Contains(strings.ToLower(t.LicensePlate), needle) ||
			strings.Contains(strings.ToLower(t.Nickname), needle) ||
			strings.Contains(strings.ToLower(t.DriverName), needle) {
			out = append(out, t.Clone())
		}
	}
	if out == nil {
		out = []domain.Trailer{}
	}
	return out
}

// TractorRefuelings returns a copy of the tractor refueling collection,
// newest-first.
func (f *Fleet) TractorRefuelings() []domain.TractorRefuelingRecord {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]domain.TractorRefuelingRecord, len(f.tractorRefuelings))
	copy(out, f.tractorRefuelings)
	return out
}

// trailerIndex returns the position of id in the trailer collection, or -1.
// Callers must hold f.mu. An empty id never matches.
func (f *Fleet) trailerIndex(id string) int {
	if id == "" {
		return -1
	}
	for i, t := range f.trailers {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persistTrailers serializes the whole trailer collection to its slot.
// It runs after the in-memory mutation, so a failed save leaves memory
// consistent; memory and storage then diverge until the next successful
// save, but neither is corrupted. Callers must hold f.mu.
func (f *Fleet) persistTrailers(ctx context.Context) error {
	payload, err := json.Marshal(f.trailers)
	if err != nil {
		return fmt.Errorf("marshal trailers: %w", err)
	}
	return f.store.Save(ctx, store.SlotTrailers, payload)
}

// persistTractorRefuelings serializes the whole tractor refueling collection
// to its slot. Callers must hold f.mu.
func (f *Fleet) persistTractorRefuelings(ctx context.Context) error {
	payload, err := json.Marshal(f.tractorRefuelings)
	if err != nil {
		return fmt.Errorf("marshal tractor refuelings: %w", err)
	}
	return f.store.Save(ctx, store.SlotTractorRefuelings, payload)
}

func cloneTrailers(trailers []domain.Trailer) []domain.Trailer {
	out := make([]domain.Trailer, len(trailers))
	for i, t := range trailers {
		out[i] = t.Clone()
	}
	return out
}
