package utm

import (
	"fmt"
	"math"
)

// UTM's defined applicability limits in latitude, degrees.
const utmMinLat = -80.0
const utmMaxLat = 84.0

// Accuracy describes the local projection fidelity at a converted point.
type Accuracy struct {
	Scale       float64 // point scale factor k
	Convergence float64 // meridian convergence in degrees
}

// FromGeodetic converts a geodetic point to UTM projection coordinates on
// the given datum. The zone is resolved from the longitude, subject to the
// Norway and Svalbard exceptions.
func FromGeodetic(g GeodeticPoint, datum Datum) (ProjectedPoint, error) {
	p, _, err := fromGeodetic(g, datum, 0)
	return p, err
}

// FromGeodeticZone converts like FromGeodetic but starts from the supplied
// zone instead of the longitude's default. The override is still subject to
// the Norway and Svalbard exceptions.
func FromGeodeticZone(g GeodeticPoint, datum Datum, zone int) (ProjectedPoint, error) {
	if zone < 1 || zone > 60 {
		return ProjectedPoint{}, fmt.Errorf("%w: %d", ErrInvalidZone, zone)
	}
	p, _, err := fromGeodetic(g, datum, zone)
	return p, err
}

// FromGeodeticAccuracy converts like FromGeodetic and also reports the point
// scale factor and meridian convergence at the converted point.
func FromGeodeticAccuracy(g GeodeticPoint, datum Datum) (ProjectedPoint, Accuracy, error) {
	return fromGeodetic(g, datum, 0)
}

func fromGeodetic(g GeodeticPoint, datum Datum, zoneOverride int) (ProjectedPoint, Accuracy, error) {
	lat := g.lat
	lng := WrapLongitude(g.lng)
	// Inclusion form so that NaN fails the bound.
	if !(lat >= utmMinLat && lat <= utmMaxLat) {
		return ProjectedPoint{}, Accuracy{}, fmt.Errorf("%w: %f not in [%g, %g]",
			ErrInvalidLatitude, lat, utmMinLat, utmMaxLat)
	}

	zone := zoneOverride
	if zone == 0 {
		zone = zoneForLongitude(lng)
	}
	zone = adjustZone(zone, latitudeBand(lat), lng)

	phi := lat * math.Pi / 180
	lambda := lng*math.Pi/180 - centralMeridian(zone)
	// Keep the offset from the central meridian in (-pi, pi].
	if lambda > math.Pi {
		lambda -= 2 * math.Pi
	}
	if lambda <= -math.Pi {
		lambda += 2 * math.Pi
	}

	k := newKruger(datum.Ellipsoid)

	cosLambda := math.Cos(lambda)
	sinLambda := math.Sin(lambda)
	tau := math.Tan(phi)
	tauP := k.tauPrime(tau)

	xiP := math.Atan2(tauP, cosLambda)
	etaP := math.Asinh(sinLambda / math.Sqrt(tauP*tauP+cosLambda*cosLambda))

	xi := xiP
	eta := etaP
	p := 1.0
	q := 0.0
	for j := 1; j <= 6; j++ {
		a := k.alpha[j-1]
		twoJ := 2 * float64(j)
		xi += a * math.Sin(twoJ*xiP) * math.Cosh(twoJ*etaP)
		eta += a * math.Cos(twoJ*xiP) * math.Sinh(twoJ*etaP)
		p += twoJ * a * math.Cos(twoJ*xiP) * math.Cosh(twoJ*etaP)
		q += twoJ * a * math.Sin(twoJ*xiP) * math.Sinh(twoJ*etaP)
	}

	x := scaleFactor*k.radA*eta + falseEasting
	y := scaleFactor * k.radA * xi
	if y < 0 {
		y += falseNorthing
	}

	hemisphere := HemisphereNorth
	if lat < 0 {
		hemisphere = HemisphereSouth
	}

	// Meridian convergence and point scale from the same series sums.
	gamma := math.Atan(tauP/math.Sqrt(1+tauP*tauP)*math.Tan(lambda)) + math.Atan2(q, p)
	sinPhi := math.Sin(phi)
	kP := math.Sqrt(1-k.e*k.e*sinPhi*sinPhi) * math.Sqrt(1+tau*tau) /
		math.Sqrt(tauP*tauP+cosLambda*cosLambda)
	scale := scaleFactor * kP * k.radA / k.a * math.Sqrt(p*p+q*q)

	pt, err := NewProjectedPoint(zone, hemisphere, x, y, datum)
	if err != nil {
		return ProjectedPoint{}, Accuracy{}, err
	}
	return pt, Accuracy{Scale: scale, Convergence: gamma * 180 / math.Pi}, nil
}
