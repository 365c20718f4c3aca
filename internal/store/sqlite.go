package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// slotRow is the single table of the embedded database: one row per slot.
type slotRow struct {
	Name      string `gorm:"primaryKey;size:64"`
	Payload   []byte
	UpdatedAt time.Time
}

// TableName keeps the table name stable regardless of gorm's pluralization rules.
func (slotRow) TableName() string { return "slots" }

// SQLite is a Store backed by a single-file embedded SQLite database.
// The driver is pure Go, so the binary stays cgo-free.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) the database file at path and
// ensures the slots table exists.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("store.OpenSQLite: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&slotRow{}); err != nil {
		return nil, fmt.Errorf("store.OpenSQLite: migrate: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Load returns the payload for slot, or (nil, nil) when the slot has never
// been written.
func (s *SQLite) Load(ctx context.Context, slot string) ([]byte, error) {
	var row slotRow
	err := s.db.WithContext(ctx).First(&row, "name = ?", slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.SQLite.Load: %w", err)
	}
	return row.Payload, nil
}

// Save replaces the payload for slot, inserting the row on first write.
func (s *SQLite) Save(ctx context.Context, slot string, payload []byte) error {
	row := slotRow{Name: slot, Payload: payload, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("store.SQLite.Save: %w", err)
	}
	return nil
}
