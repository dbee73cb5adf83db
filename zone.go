package utm

import "math"

// MGRS latitude band letters for 8° bands from 80°S northward. I and O are
// skipped; X is doubled so that it covers 72°N to 84°N.
const mgrsBandLetters = "CDEFGHJKLMNPQRSTUVWXX"

// latitudeBand returns the MGRS band letter for a latitude in degrees.
func latitudeBand(lat float64) byte {
	i := int(math.Floor(lat/8 + 10))
	if i < 0 {
		i = 0
	}
	if i >= len(mgrsBandLetters) {
		i = len(mgrsBandLetters) - 1
	}
	return mgrsBandLetters[i]
}

// zoneForLongitude returns the default UTM zone for a longitude in degrees,
// before any of the Norway/Svalbard adjustments.
func zoneForLongitude(lng float64) int {
	zone := int(math.Floor((lng+180)/6)) + 1
	if zone > 60 { // longitude 180 belongs to zone 1
		zone = 1
	}
	return zone
}

// adjustZone applies the special zone cases over southern Norway and
// Svalbard. The first matching rule wins; the central meridian must be
// recomputed from the adjusted zone.
func adjustZone(zone int, band byte, lng float64) int {
	switch {
	case zone == 31 && band == 'V' && lng >= 3:
		return 32
	case zone == 32 && band == 'X' && lng < 9:
		return 31
	case zone == 32 && band == 'X' && lng >= 9:
		return 33
	case zone == 34 && band == 'X' && lng < 21:
		return 33
	case zone == 34 && band == 'X' && lng >= 21:
		return 35
	case zone == 36 && band == 'X' && lng < 33:
		return 35
	case zone == 36 && band == 'X' && lng >= 33:
		return 37
	}
	return zone
}

// centralMeridian returns the longitude of a zone's central meridian in
// radians.
func centralMeridian(zone int) float64 {
	return float64((zone-1)*6-180+3) * math.Pi / 180
}
