package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mapler/fleet-records/internal/domain"
	"github.com/mapler/fleet-records/internal/repo"
)

// RefuelingService implements business logic for both refueling record
// types: tractor diesel/AdBlue refuelings and trailer refrigeration-unit
// refuelings.
type RefuelingService struct {
	fleet *repo.Fleet
}

// NewRefuelingService constructs a RefuelingService.
func NewRefuelingService(fleet *repo.Fleet) *RefuelingService {
	return &RefuelingService{fleet: fleet}
}

// AddTractorRefueling validates and records a tractor refueling fact.
// Returns domain.ErrValidation when required fields are missing.
func (s *RefuelingService) AddTractorRefueling(ctx context.Context, rec domain.TractorRefuelingRecord) (domain.TractorRefuelingRecord, error) {
	if strings.TrimSpace(rec.TractorLicensePlate) == "" {
		return domain.TractorRefuelingRecord{}, fmt.Errorf("%w: tractorLicensePlate is required", domain.ErrValidation)
	}
	if rec.RefuelingDate.IsZero() {
		return domain.TractorRefuelingRecord{}, fmt.Errorf("%w: refuelingDate is required", domain.ErrValidation)
	}
	if rec.DieselLiters == nil || *rec.DieselLiters <= 0 {
		return domain.TractorRefuelingRecord{}, fmt.Errorf("%w: dieselLiters must be a positive number", domain.ErrValidation)
	}
	if rec.AdblueLiters != nil && *rec.AdblueLiters < 0 {
		return domain.TractorRefuelingRecord{}, fmt.Errorf("%w: adblueLiters must not be negative", domain.ErrValidation)
	}
	if rec.OdometerKm == nil || *rec.OdometerKm < 0 {
		return domain.TractorRefuelingRecord{}, fmt.Errorf("%w: odometerKm is required", domain.ErrValidation)
	}

	created, err := s.fleet.AddTractorRefueling(ctx, rec)
	if err != nil {
		return domain.TractorRefuelingRecord{}, fmt.Errorf("service.RefuelingService.AddTractorRefueling: %w", err)
	}
	return created, nil
}

// ListTractorRefuelings returns all tractor refueling records, newest-first.
func (s *RefuelingService) ListTractorRefuelings(_ context.Context) ([]domain.TractorRefuelingRecord, error) {
	return s.fleet.TractorRefuelings(), nil
}

// AddRefrigerationRefueling validates and attaches a refrigeration-unit
// refueling entry to the named trailer. Input validation is user-facing, but
// an unknown trailer id stays a silent no-op (found=false) — the repository
// guard, not an error.
func (s *RefuelingService) AddRefrigerationRefueling(ctx context.Context, trailerID string, entry domain.RefrigerationUnitRefuelingEntry) (domain.Trailer, bool, error) {
	if entry.RefuelingDate.IsZero() {
		return domain.Trailer{}, false, fmt.Errorf("%w: refuelingDate is required", domain.ErrValidation)
	}
	if entry.DieselLiters == nil || *entry.DieselLiters <= 0 {
		return domain.Trailer{}, false, fmt.Errorf("%w: dieselLiters must be a positive number", domain.ErrValidation)
	}
	if entry.FridgeMth == nil || *entry.FridgeMth < 0 {
		return domain.Trailer{}, false, fmt.Errorf("%w: fridgeMth is required", domain.ErrValidation)
	}

	trailer, found, err := s.fleet.AddRefrigerationRefueling(ctx, trailerID, entry)
	if err != nil {
		return domain.Trailer{}, found, fmt.Errorf("service.RefuelingService.AddRefrigerationRefueling: %w", err)
	}
	return trailer, found, nil
}
