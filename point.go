package utm

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// GeodeticPoint is a position on the ellipsoid, latitude and longitude in
// degrees. No range is enforced at rest; FromGeodetic applies the UTM
// latitude limits and ToGeodetic wraps its output into range.
type GeodeticPoint struct {
	lat float64
	lng float64
}

// NewGeodeticPoint constructs a geodetic point from a latitude and longitude
// in degrees.
func NewGeodeticPoint(lat, lng float64) GeodeticPoint {
	return GeodeticPoint{lat: lat, lng: lng}
}

// GeodeticPointFromLatLng constructs a geodetic point from an s2.LatLng.
func GeodeticPointFromLatLng(ll s2.LatLng) GeodeticPoint {
	return GeodeticPoint{lat: ll.Lat.Degrees(), lng: ll.Lng.Degrees()}
}

// Lat returns the latitude in degrees.
func (g GeodeticPoint) Lat() float64 { return g.lat }

// Lng returns the longitude in degrees.
func (g GeodeticPoint) Lng() float64 { return g.lng }

// LatLng returns the point as an s2.LatLng.
func (g GeodeticPoint) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(g.lat, g.lng)
}

func (g GeodeticPoint) String() string {
	return fmt.Sprintf("%.6f, %.6f", g.lat, g.lng)
}

// ProjectedPoint is a UTM coordinate: zone, hemisphere, and the
// easting/northing offsets in meters from the zone's false origin, together
// with the datum it was projected on.
type ProjectedPoint struct {
	zone       int
	hemisphere Hemisphere
	easting    float64
	northing   float64
	datum      Datum
}

const utmMaxEasting = 1000000.0
const utmMaxNorthing = 10000000.0

// Grid northing limits of the non-polar bands: just below 84°N for the
// northern hemisphere, just below 80°S (counted from the south false origin)
// for the southern.
const utmMaxNorthingNorth = 9328094.0
const utmMinNorthingSouth = 1118414.0

// NewProjectedPoint constructs a validated UTM coordinate. The zone must be
// in [1,60], the easting in (0, 1e6], and the northing within the
// hemisphere-dependent band limits.
func NewProjectedPoint(zone int, hemisphere Hemisphere, easting, northing float64, datum Datum) (ProjectedPoint, error) {
	if err := validateProjected(zone, hemisphere, easting, northing); err != nil {
		return ProjectedPoint{}, err
	}
	return ProjectedPoint{
		zone:       zone,
		hemisphere: hemisphere,
		easting:    easting,
		northing:   northing,
		datum:      datum,
	}, nil
}

func validateProjected(zone int, hemisphere Hemisphere, easting, northing float64) error {
	if zone < 1 || zone > 60 {
		return fmt.Errorf("%w: %d", ErrInvalidZone, zone)
	}
	if (hemisphere != HemisphereNorth) && (hemisphere != HemisphereSouth) {
		return fmt.Errorf("%w: %d", ErrInvalidHemisphere, hemisphere)
	}
	// Inclusion form so that NaN fails every bound.
	if !(easting > 0 && easting <= utmMaxEasting) {
		return fmt.Errorf("%w: %f", ErrInvalidEasting, easting)
	}
	if hemisphere == HemisphereNorth {
		if !(northing >= 0 && northing < utmMaxNorthingNorth) {
			return fmt.Errorf("%w: %f", ErrInvalidNorthing, northing)
		}
	} else if !(northing > utmMinNorthingSouth && northing <= utmMaxNorthing) {
		return fmt.Errorf("%w: %f", ErrInvalidNorthing, northing)
	}
	return nil
}

// Zone returns the UTM zone, 1 to 60.
func (p ProjectedPoint) Zone() int { return p.zone }

// Hemisphere returns the hemisphere the point lies in.
func (p ProjectedPoint) Hemisphere() Hemisphere { return p.hemisphere }

// Easting returns the easting in meters.
func (p ProjectedPoint) Easting() float64 { return p.easting }

// Northing returns the northing in meters.
func (p ProjectedPoint) Northing() float64 { return p.northing }

// Datum returns the datum the point was projected on.
func (p ProjectedPoint) Datum() Datum { return p.datum }

func (p ProjectedPoint) String() string {
	return fmt.Sprintf("%d %s %.0f %.0f", p.zone, p.hemisphere, p.easting, p.northing)
}
