// Package domain contains the core data types for the fleet records application.
// This package has zero external dependencies and is imported by every other
// internal package (migrate, store, repo, service, handler).
package domain

// TireCondition is the closed set of general tire condition grades.
// Every consumption site must match exhaustively so a new grade is a
// compile-time-visible change.
type TireCondition string

const (
	TireConditionNew         TireCondition = "new"
	TireConditionGood        TireCondition = "good"
	TireConditionWorn        TireCondition = "worn"
	TireConditionDamaged     TireCondition = "damaged"
	TireConditionMustReplace TireCondition = "must_replace"
)

// Valid reports whether c is one of the known condition grades.
func (c TireCondition) Valid() bool {
	switch c {
	case TireConditionNew, TireConditionGood, TireConditionWorn,
		TireConditionDamaged, TireConditionMustReplace:
		return true
	}
	return false
}

// TirePosition is one of the six fixed axle positions on a trailer.
type TirePosition struct {
	ID   string
	Name string
}

// tirePositions is the fixed 3-axle × left/right layout. The position IDs are
// part of the persisted format and must never change.
var tirePositions = [6]TirePosition{
	{ID: "tire1_axle1_left", Name: "Axle 1 Left"},
	{ID: "tire2_axle1_right", Name: "Axle 1 Right"},
	{ID: "tire3_axle2_left", Name: "Axle 2 Left"},
	{ID: "tire4_axle2_right", Name: "Axle 2 Right"},
	{ID: "tire5_axle3_left", Name: "Axle 3 Left"},
	{ID: "tire6_axle3_right", Name: "Axle 3 Right"},
}

// TirePositions returns the fixed six-position layout in canonical order.
func TirePositions() []TirePosition {
	out := make([]TirePosition, len(tirePositions))
	copy(out, tirePositions[:])
	return out
}

// TireState is the recorded condition of one tire position.
// Pressure (bar) and Depth (mm) are nil until measured.
type TireState struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Condition TireCondition `json:"condition"`
	Pressure  *float64      `json:"pressure"`
	Depth     *float64      `json:"depth"`
}

// TireInspection is a detailed inspection snapshot. It is replaced wholesale
// on each new inspection; no history is kept.
type TireInspection struct {
	InspectionDate      Date     `json:"inspectionDate"`
	OdometerKm          *float64 `json:"odometerKm"`
	Purpose             string   `json:"purpose"`
	MechanicName        string   `json:"mechanicName"`
	RecommendedPressure *float64 `json:"recommendedPressure"`
}

// Trailer is a unit of equipment tracked over time. All optional fields are
// explicitly present in the persisted JSON (null rather than omitted), so
// consumers can treat every field as set.
type Trailer struct {
	ID                 string          `json:"id"`
	LicensePlate       string          `json:"licensePlate"`
	Nickname           string          `json:"nickname"`
	DriverName         string          `json:"driverName"`
	IsRefrigerated     bool            `json:"isRefrigerated"`
	FuelLevelPercent   *float64        `json:"fuelLevelPercent"`
	Tires              []TireState     `json:"tires"`
	DamageDetails      string          `json:"damageDetails"`
	HookCount          int             `json:"hookCount"`
	EuropalletCount    int             `json:"europalletCount"`
	LoadBarCount       int             `json:"loadBarCount"`
	LastInspectionDate Date            `json:"lastInspectionDate"`
	PhotoRightSide     *PhotoMetadata  `json:"photoRightSide"`
	PhotoRear          *PhotoMetadata  `json:"photoRear"`
	PhotoLeftSide      *PhotoMetadata  `json:"photoLeftSide"`
	TireDamagePhoto1   *PhotoMetadata  `json:"tireDamagePhoto1"`
	TireDamagePhoto2   *PhotoMetadata  `json:"tireDamagePhoto2"`
	LastTireInspection *TireInspection `json:"lastTireInspectionData"`

	// RefrigerationUnitRefuelings is append-only, newest first. Entries are
	// immutable once appended and are owned exclusively by this trailer.
	RefrigerationUnitRefuelings []RefrigerationUnitRefuelingEntry `json:"refrigerationUnitRefuelings"`
}

// NewTrailer returns a fully-populated default trailer for the given id:
// all six tire positions at Good with no measurements, zero equipment counts,
// today's date as the inspection date, no photos, empty refueling history.
func NewTrailer(id string) Trailer {
	return Trailer{
		ID:                          id,
		Tires:                       DefaultTires(),
		LastInspectionDate:          Today(),
		RefrigerationUnitRefuelings: []RefrigerationUnitRefuelingEntry{},
	}
}

// DefaultTires returns the six fixed positions at Good condition with nil
// measurements, in canonical order.
func DefaultTires() []TireState {
	tires := make([]TireState, 0, len(tirePositions))
	for _, pos := range tirePositions {
		tires = append(tires, TireState{
			ID:        pos.ID,
			Name:      pos.Name,
			Condition: TireConditionGood,
		})
	}
	return tires
}

// Normalize rewrites the trailer in place so it satisfies every domain
// invariant. It is applied on every load and every save, and is idempotent.
//
//   - Tires always cover exactly the six fixed positions: existing entries
//     keep their data and relative order, missing positions are synthesized
//     at Good with nil measurements, duplicates and unknown position ids are
//     dropped, and empty names are filled from the canonical layout.
//   - Unknown condition values fall back to Good.
//   - RefrigerationUnitRefuelings is never nil.
//   - A non-refrigerated trailer has no fuel level.
//   - Equipment counts are never negative.
func (t *Trailer) Normalize() {
	known := make(map[string]TirePosition, len(tirePositions))
	for _, pos := range tirePositions {
		known[pos.ID] = pos
	}

	tires := make([]TireState, 0, len(tirePositions))
	seen := make(map[string]bool, len(tirePositions))
	for _, tire := range t.Tires {
		pos, ok := known[tire.ID]
		if !ok || seen[tire.ID] {
			continue
		}
		seen[tire.ID] = true
		if tire.Name == "" {
			tire.Name = pos.Name
		}
		if !tire.Condition.Valid() {
			tire.Condition = TireConditionGood
		}
		tires = append(tires, tire)
	}
	for _, pos := range tirePositions {
		if seen[pos.ID] {
			continue
		}
		tires = append(tires, TireState{
			ID:        pos.ID,
			Name:      pos.Name,
			Condition: TireConditionGood,
		})
	}
	t.Tires = tires

	if t.RefrigerationUnitRefuelings == nil {
		t.RefrigerationUnitRefuelings = []RefrigerationUnitRefuelingEntry{}
	}
	if !t.IsRefrigerated {
		t.FuelLevelPercent = nil
	}
	if t.HookCount < 0 {
		t.HookCount = 0
	}
	if t.EuropalletCount < 0 {
		t.EuropalletCount = 0
	}
	if t.LoadBarCount < 0 {
		t.LoadBarCount = 0
	}
}

// Clone returns a deep copy of the trailer. Photo and measurement pointers
// are shared because their targets are immutable values.
func (t Trailer) Clone() Trailer {
	out := t
	out.Tires = make([]TireState, len(t.Tires))
	copy(out.Tires, t.Tires)
	out.RefrigerationUnitRefuelings = make([]RefrigerationUnitRefuelingEntry, len(t.RefrigerationUnitRefuelings))
	copy(out.RefrigerationUnitRefuelings, t.RefrigerationUnitRefuelings)
	if t.LastTireInspection != nil {
		insp := *t.LastTireInspection
		out.LastTireInspection = &insp
	}
	return out
}

// CoversAllPositions reports whether tires contains every fixed position
// exactly once and nothing else.
func CoversAllPositions(tires []TireState) bool {
	if len(tires) != len(tirePositions) {
		return false
	}
	seen := make(map[string]bool, len(tirePositions))
	for _, tire := range tires {
		seen[tire.ID] = true
	}
	for _, pos := range tirePositions {
		if !seen[pos.ID] {
			return false
		}
	}
	return true
}
