// Package utm converts between geodetic coordinates (latitude and longitude
// on a reference ellipsoid) and UTM projection coordinates (zone, hemisphere,
// easting and northing) using Karney's transverse Mercator method with
// Krüger series carried to sixth order in the third flattening.
package utm

// Ellipsoid holds the geometric parameters of a reference surface.
// Constructing one with an inconsistent a/b/f triple is the caller's
// responsibility; no derived field is recomputed.
type Ellipsoid struct {
	A float64 // semi-major axis in meters
	B float64 // semi-minor axis in meters
	F float64 // flattening
}

// NewEllipsoid constructs an ellipsoid from its semi-major axis, semi-minor
// axis and flattening.
func NewEllipsoid(a, b, f float64) Ellipsoid {
	return Ellipsoid{A: a, B: b, F: f}
}

// Datum is a geodetic reference frame built on an ellipsoid.
type Datum struct {
	Ellipsoid Ellipsoid
}

// NewDatum constructs a datum for the given ellipsoid.
func NewDatum(e Ellipsoid) Datum {
	return Datum{Ellipsoid: e}
}

// WGS84 returns the World Geodetic System 1984 datum.
func WGS84() Datum {
	return Datum{Ellipsoid: Ellipsoid{
		A: 6378137,
		B: 6356752.314245,
		F: 1 / 298.257223563,
	}}
}
