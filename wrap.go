package utm

import "math"

// WrapLongitude normalizes a longitude in degrees into (-180, 180]. Values
// already in range are returned unchanged; out-of-range values follow the
// sawtooth with period 360.
func WrapLongitude(d float64) float64 {
	if -180 < d && d <= 180 {
		return d
	}
	m := math.Mod(d+540, 360)
	if m < 0 {
		m += 360
	}
	return m - 180
}

// WrapLatitude normalizes a latitude in degrees into [-90, 90]. Values
// already in range are returned unchanged; out-of-range values follow the
// triangle wave with period 360.
func WrapLatitude(d float64) float64 {
	if -90 <= d && d <= 90 {
		return d
	}
	m := math.Mod(math.Mod(d, 360)+270, 360)
	if m < 0 {
		m += 360
	}
	return math.Abs(m-180) - 90
}
