package domain

import "time"

// GPSCoordinates is the position a photo was captured at, as supplied by the
// geolocation collaborator. Accuracy is in meters when the device reports it.
type GPSCoordinates struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
}

// PhotoMetadata is an immutable captured photo: the encoded image payload,
// its capture time, and optionally where it was taken. Once attached to a
// record it is only ever replaced wholesale or cleared, never mutated.
// The image payload is stored opaquely; nothing in the core interprets it.
type PhotoMetadata struct {
	DataURL        string          `json:"dataUrl"`
	CapturedAt     time.Time       `json:"capturedAt"`
	GPSCoordinates *GPSCoordinates `json:"gpsCoordinates"`
}
