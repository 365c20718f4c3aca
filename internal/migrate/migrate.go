// Package migrate normalizes raw store payloads into current-shape
// collections. Records written by older versions of the software may be
// missing fields that were introduced later; migration fills those in once
// at load time so nothing downstream has to null-check.
//
// Malformed input is never an error: a payload that fails to parse, or that
// is not an array, is discarded and replaced by an empty collection with a
// logged warning. Startup is never blocked by bad data.
package migrate

import (
	"encoding/json"
	"log/slog"

	"github.com/mapler/fleet-records/internal/domain"
)

// legacyConditions maps tire condition labels written by the original
// (Czech-language) forms onto the closed enum.
var legacyConditions = map[string]domain.TireCondition{
	"Nová":         domain.TireConditionNew,
	"Dobrý stav":   domain.TireConditionGood,
	"Opotřebená":   domain.TireConditionWorn,
	"Poškozená":    domain.TireConditionDamaged,
	"Nutná výměna": domain.TireConditionMustReplace,
}

// Migrator normalizes raw persisted collections. It is stateless apart from
// its logger; running it twice over the same input yields the same result
// as running it once.
type Migrator struct {
	log *slog.Logger
}

// New returns a Migrator logging through log, or slog.Default() when nil.
func New(log *slog.Logger) *Migrator {
	if log == nil {
		log = slog.Default()
	}
	return &Migrator{log: log}
}

// Trailers decodes and normalizes the trailer collection payload.
// A nil or empty payload (slot never written) yields an empty collection.
func (m *Migrator) Trailers(raw []byte) []domain.Trailer {
	if len(raw) == 0 {
		return []domain.Trailer{}
	}

	var trailers []domain.Trailer
	if err := json.Unmarshal(raw, &trailers); err != nil {
		m.log.Warn("discarding malformed trailer payload", "error", err)
		return []domain.Trailer{}
	}
	if trailers == nil { // literal "null"
		return []domain.Trailer{}
	}

	for i := range trailers {
		mapLegacyConditions(&trailers[i])
		trailers[i].Normalize()
	}
	return trailers
}

// TractorRefuelings decodes the tractor refueling collection payload.
// Records are flat immutable facts, so beyond the discard-on-parse-failure
// policy there is nothing to synthesize.
func (m *Migrator) TractorRefuelings(raw []byte) []domain.TractorRefuelingRecord {
	if len(raw) == 0 {
		return []domain.TractorRefuelingRecord{}
	}

	var records []domain.TractorRefuelingRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		m.log.Warn("discarding malformed tractor refueling payload", "error", err)
		return []domain.TractorRefuelingRecord{}
	}
	if records == nil {
		return []domain.TractorRefuelingRecord{}
	}
	return records
}

// mapLegacyConditions rewrites legacy condition labels before Normalize
// runs, so old grades survive migration instead of defaulting to Good.
func mapLegacyConditions(t *domain.Trailer) {
	for i, tire := range t.Tires {
		if mapped, ok := legacyConditions[string(tire.Condition)]; ok {
			t.Tires[i].Condition = mapped
		}
	}
}
