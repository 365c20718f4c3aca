// Package service contains the business rules for fleet record operations.
// Services reject bad user input before it ever reaches the repository and
// orchestrate repository calls. No persistence or HTTP concerns live here.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mapler/fleet-records/internal/domain"
	"github.com/mapler/fleet-records/internal/repo"
)

// Summarizer is the text-analysis collaborator that turns free-text damage
// details into a short human-readable insight. It is a pure text-to-text
// function: it never touches stored fields, and its output is displayed but
// never persisted.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// TrailerService implements business logic for trailer operations.
type TrailerService struct {
	fleet      *repo.Fleet
	summarizer Summarizer
}

// NewTrailerService constructs a TrailerService. summarizer may be nil, in
// which case damage summaries report domain.ErrUnavailable.
func NewTrailerService(fleet *repo.Fleet, summarizer Summarizer) *TrailerService {
	return &TrailerService{fleet: fleet, summarizer: summarizer}
}

// Save validates and upserts a trailer (full-record replacement — the
// repository never does field-level patches).
// Returns domain.ErrValidation when input violates business rules.
func (s *TrailerService) Save(ctx context.Context, t domain.Trailer) (domain.Trailer, error) {
	if err := validateTrailer(t); err != nil {
		return domain.Trailer{}, err
	}
	saved, err := s.fleet.SaveTrailer(ctx, t)
	if err != nil {
		return domain.Trailer{}, fmt.Errorf("service.TrailerService.Save: %w", err)
	}
	return saved, nil
}

// List returns all trailers, newest-first.
func (s *TrailerService) List(_ context.Context) ([]domain.Trailer, error) {
	return s.fleet.Trailers(), nil
}

// Find returns trailers matching term against license plate, nickname, and
// driver name. An empty term is equivalent to List.
func (s *TrailerService) Find(_ context.Context, term string) ([]domain.Trailer, error) {
	return s.fleet.FindTrailersByText(term), nil
}

// GetByID returns a single trailer by id.
// Returns domain.ErrNotFound when no trailer with that id exists.
func (s *TrailerService) GetByID(_ context.Context, id string) (domain.Trailer, error) {
	t, err := s.fleet.TrailerByID(id)
	if err != nil {
		return domain.Trailer{}, fmt.Errorf("service.TrailerService.GetByID: %w", err)
	}
	return t, nil
}

// SaveTireInspection replaces a trailer's tire states and its detailed
// inspection snapshot wholesale, then saves the trailer. Unlike the
// refueling attach, an unknown trailer here is a user-facing error.
func (s *TrailerService) SaveTireInspection(ctx context.Context, trailerID string, insp domain.TireInspection, tires []domain.TireState) (domain.Trailer, error) {
	if insp.InspectionDate.IsZero() {
		return domain.Trailer{}, fmt.Errorf("%w: inspectionDate is required", domain.ErrValidation)
	}
	if strings.TrimSpace(insp.MechanicName) == "" {
		return domain.Trailer{}, fmt.Errorf("%w: mechanicName is required", domain.ErrValidation)
	}
	if !domain.CoversAllPositions(tires) {
		return domain.Trailer{}, fmt.Errorf("%w: tires must cover all six positions exactly once", domain.ErrValidation)
	}
	for _, tire := range tires {
		if !tire.Condition.Valid() {
			return domain.Trailer{}, fmt.Errorf("%w: unknown tire condition %q", domain.ErrValidation, tire.Condition)
		}
	}

	t, err := s.fleet.TrailerByID(trailerID)
	if err != nil {
		return domain.Trailer{}, fmt.Errorf("service.TrailerService.SaveTireInspection: %w", err)
	}

	t.Tires = tires
	t.LastTireInspection = &insp
	saved, err := s.fleet.SaveTrailer(ctx, t)
	if err != nil {
		return domain.Trailer{}, fmt.Errorf("service.TrailerService.SaveTireInspection: %w", err)
	}
	return saved, nil
}

// DamageSummary runs the summarizer collaborator over the trailer's damage
// details and returns the derived insight. Nothing is persisted.
// Returns domain.ErrNotFound for an unknown trailer, domain.ErrValidation
// when no damage is recorded, and domain.ErrUnavailable when the
// collaborator is absent or failing.
func (s *TrailerService) DamageSummary(ctx context.Context, trailerID string) (string, error) {
	t, err := s.fleet.TrailerByID(trailerID)
	if err != nil {
		return "", fmt.Errorf("service.TrailerService.DamageSummary: %w", err)
	}
	if strings.TrimSpace(t.DamageDetails) == "" {
		return "", fmt.Errorf("%w: no damage details recorded", domain.ErrValidation)
	}
	if s.summarizer == nil {
		return "", fmt.Errorf("service.TrailerService.DamageSummary: %w: no summarizer configured", domain.ErrUnavailable)
	}
	summary, err := s.summarizer.Summarize(ctx, t.DamageDetails)
	if err != nil {
		return "", fmt.Errorf("service.TrailerService.DamageSummary: %w: %v", domain.ErrUnavailable, err)
	}
	return summary, nil
}

// validateTrailer enforces the rules common to every trailer save.
//   - License plate and driver name are required (whitespace-only rejected).
//   - A general inspection date must be set.
//   - Equipment counts must be non-negative.
//   - A fuel level, when present, must be a percentage.
func validateTrailer(t domain.Trailer) error {
	if strings.TrimSpace(t.LicensePlate) == "" {
		return fmt.Errorf("%w: licensePlate is required", domain.ErrValidation)
	}
	if strings.TrimSpace(t.DriverName) == "" {
		return fmt.Errorf("%w: driverName is required", domain.ErrValidation)
	}
	if t.LastInspectionDate.IsZero() {
		return fmt.Errorf("%w: lastInspectionDate is required", domain.ErrValidation)
	}
	if t.HookCount < 0 || t.EuropalletCount < 0 || t.LoadBarCount < 0 {
		return fmt.Errorf("%w: equipment counts must not be negative", domain.ErrValidation)
	}
	if t.FuelLevelPercent != nil && (*t.FuelLevelPercent < 0 || *t.FuelLevelPercent > 100) {
		return fmt.Errorf("%w: fuelLevelPercent must be between 0 and 100", domain.ErrValidation)
	}
	return nil
}
