package utm

import "errors"

// Validation failures surfaced by constructors and conversions. All are
// matchable with errors.Is; wrapped forms carry the offending value.
var (
	ErrInvalidZone       = errors.New("utm: zone out of range")
	ErrInvalidHemisphere = errors.New("utm: hemisphere out of range")
	ErrInvalidEasting    = errors.New("utm: easting out of range")
	ErrInvalidNorthing   = errors.New("utm: northing out of range")
	ErrInvalidLatitude   = errors.New("utm: latitude out of range")
)
