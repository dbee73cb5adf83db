package utm_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"

	"github.com/geomys/utm"
)

// Roughly 1.0e-5 degrees (~1 meter) in radians.
const epsilonRadians = s1.Angle(1.75e-7)

func TestGeodeticRoundTrip(t *testing.T) {
	w := utm.WGS84()
	const latInc = 2.0
	const lngInc = 3.0
	for lng := -180.0; lng <= 180; lng += lngInc {
		for lat := -80.0; lat <= 84; lat += latInc {
			geo := utm.NewGeodeticPoint(lat, lng)
			pt, err := utm.FromGeodetic(geo, w)
			if err != nil {
				// The extreme corners of the grid fall outside the
				// validated northing bounds; nothing to round-trip.
				continue
			}
			geo2, err := utm.ToGeodetic(pt)
			if err != nil {
				t.Fatalf("expected no error in round trip, got one at %s (%s)", geo, err)
			}
			if geo.LatLng().Distance(geo2.LatLng()) > epsilonRadians {
				t.Fatalf("expected %s, got %s", geo, geo2)
			}
		}
	}
}

func TestProjectedRoundTrip(t *testing.T) {
	w := utm.WGS84()
	type coord struct {
		zone       int
		hemisphere utm.Hemisphere
		easting    float64
		northing   float64
	}
	coords := []coord{
		{1, utm.HemisphereNorth, 500000, 0},
		{30, utm.HemisphereNorth, 582031.96, 5670369.80},
		{31, utm.HemisphereNorth, 166021.44, 0.01},
		{56, utm.HemisphereSouth, 334873.2, 6252266.1},
		{60, utm.HemisphereSouth, 700000, 4000000},
		// In-range but outside the true footprint of its zone; the
		// round trip may legitimately land in a neighboring zone.
		{30, utm.HemisphereNorth, 100000, 9000000},
		{45, utm.HemisphereSouth, 900000, 9999999},
	}
	for _, c := range coords {
		pt, err := utm.NewProjectedPoint(c.zone, c.hemisphere, c.easting, c.northing, w)
		if err != nil {
			t.Fatalf("error constructing %v: %s", c, err)
		}
		geo, err := utm.ToGeodetic(pt)
		if err != nil {
			t.Fatalf("error inverting %v: %s", c, err)
		}
		pt2, err := utm.FromGeodetic(geo, w)
		if err != nil {
			t.Fatalf("error re-projecting %s: %s", geo, err)
		}
		if pt2.Zone() == pt.Zone() && pt2.Hemisphere() == pt.Hemisphere() {
			if math.Abs(pt2.Easting()-pt.Easting()) > 1.0 ||
				math.Abs(pt2.Northing()-pt.Northing()) > 1.0 {
				t.Fatalf("expected %s, got %s", pt, pt2)
			}
			continue
		}
		// Zone reassignment: the positions must still agree.
		geo2, err := utm.ToGeodetic(pt2)
		if err != nil {
			t.Fatalf("error inverting %s: %s", pt2, err)
		}
		if geo.LatLng().Distance(geo2.LatLng()) > epsilonRadians {
			t.Fatalf("expected %s, got %s", geo, geo2)
		}
	}
}
