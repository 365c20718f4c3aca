// Package testutil provides shared helpers for tests: short-lived stores
// and record fixtures.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/mapler/fleet-records/internal/domain"
	"github.com/mapler/fleet-records/internal/store"
)

// NewSQLiteStore opens a store backed by a database file in a per-test
// temporary directory. The file is removed automatically when the test
// (and all its subtests) finish.
func NewSQLiteStore(t *testing.T) *store.SQLite {
	t.Helper()

	path := filepath.Join(t.TempDir(), "records.db")
	st, err := store.OpenSQLite(path)
	if err != nil {
		t.Fatalf("testutil.NewSQLiteStore: open %s: %v", path, err)
	}
	return st
}

// TrailerFixture returns a valid trailer with sensible defaults.
// Callers can override individual fields after calling this function.
func TrailerFixture() domain.Trailer {
	t := domain.NewTrailer("")
	t.LicensePlate = "1AB 2345"
	t.Nickname = "Blue Fridge"
	t.DriverName = "Jan Novak"
	return t
}

// TractorRefuelingFixture returns a valid tractor refueling record.
func TractorRefuelingFixture() domain.TractorRefuelingRecord {
	diesel := 500.0
	odometer := 350123.0
	date, _ := domain.ParseDate("2024-01-01")
	return domain.TractorRefuelingRecord{
		TractorLicensePlate: "5AU 1234",
		RefuelingDate:       date,
		DieselLiters:        &diesel,
		OdometerKm:          &odometer,
	}
}

// RefrigerationEntryFixture returns a valid refrigeration-unit refueling entry.
func RefrigerationEntryFixture() domain.RefrigerationUnitRefuelingEntry {
	diesel := 100.0
	mth := 1250.5
	date, _ := domain.ParseDate("2024-01-01")
	return domain.RefrigerationUnitRefuelingEntry{
		RefuelingDate: date,
		DieselLiters:  &diesel,
		FridgeMth:     &mth,
	}
}
