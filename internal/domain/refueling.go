package domain

// TractorRefuelingRecord is an immutable fact about one tractor refueling
// event. Records are insert-only: there is no update or delete path, and a
// correction is a new record.
type TractorRefuelingRecord struct {
	ID                  string         `json:"id"`
	TractorLicensePlate string         `json:"tractorLicensePlate"`
	RefuelingDate       Date           `json:"refuelingDate"`
	DieselLiters        *float64       `json:"dieselLiters"`
	AdblueLiters        *float64       `json:"adblueLiters"`
	OdometerKm          *float64       `json:"odometerKm"`
	ReceiptPhoto        *PhotoMetadata `json:"receiptPhoto"`
}

// RefrigerationUnitRefuelingEntry is an immutable fact about refueling a
// trailer's refrigeration unit. Entries never exist outside their parent
// trailer's history. FridgeMth is the unit's motor-hours counter reading.
type RefrigerationUnitRefuelingEntry struct {
	ID            string         `json:"id"`
	RefuelingDate Date           `json:"refuelingDate"`
	DieselLiters  *float64       `json:"dieselLiters"`
	FridgeMth     *float64       `json:"fridgeMth"`
	ReceiptPhoto  *PhotoMetadata `json:"receiptPhoto"`
}
