package utm

import "math"

// ToGeodetic converts UTM projection coordinates back to a geodetic point on
// the datum carried by the projected point. The resulting latitude is in
// [-90, 90] and the longitude in (-180, 180].
func ToGeodetic(u ProjectedPoint) (GeodeticPoint, error) {
	g, _, err := toGeodetic(u)
	return g, err
}

// ToGeodeticAccuracy converts like ToGeodetic and also reports the point
// scale factor and meridian convergence at the point.
func ToGeodeticAccuracy(u ProjectedPoint) (GeodeticPoint, Accuracy, error) {
	return toGeodetic(u)
}

func toGeodetic(u ProjectedPoint) (GeodeticPoint, Accuracy, error) {
	// Constructed points are always valid; this guards the zero value.
	if err := validateProjected(u.zone, u.hemisphere, u.easting, u.northing); err != nil {
		return GeodeticPoint{}, Accuracy{}, err
	}

	k := newKruger(u.datum.Ellipsoid)

	x := u.easting - falseEasting
	y := u.northing
	if u.hemisphere == HemisphereSouth {
		y -= falseNorthing
	}

	eta := x / (scaleFactor * k.radA)
	xi := y / (scaleFactor * k.radA)

	xiP := xi
	etaP := eta
	p := 1.0
	q := 0.0
	for j := 1; j <= 6; j++ {
		b := k.beta[j-1]
		twoJ := 2 * float64(j)
		xiP -= b * math.Sin(twoJ*xi) * math.Cosh(twoJ*eta)
		etaP -= b * math.Cos(twoJ*xi) * math.Sinh(twoJ*eta)
		p -= twoJ * b * math.Cos(twoJ*xi) * math.Cosh(twoJ*eta)
		q += twoJ * b * math.Sin(twoJ*xi) * math.Sinh(twoJ*eta)
	}

	sinhEtaP := math.Sinh(etaP)
	sinXiP := math.Sin(xiP)
	cosXiP := math.Cos(xiP)

	tauP := sinXiP / math.Sqrt(sinhEtaP*sinhEtaP+cosXiP*cosXiP)
	tau := k.solveTau(tauP)

	phi := math.Atan(tau)
	lambda := math.Atan2(sinhEtaP, cosXiP) + centralMeridian(u.zone)

	lat := WrapLatitude(phi * 180 / math.Pi)
	lng := WrapLongitude(lambda * 180 / math.Pi)

	gamma := math.Atan(math.Tan(xiP)*math.Tanh(etaP)) + math.Atan2(q, p)
	sinPhi := math.Sin(phi)
	kP := math.Sqrt(1-k.e*k.e*sinPhi*sinPhi) * math.Sqrt(1+tau*tau) *
		math.Sqrt(sinhEtaP*sinhEtaP+cosXiP*cosXiP)
	scale := scaleFactor * kP * k.radA / k.a / math.Sqrt(p*p+q*q)

	return GeodeticPoint{lat: lat, lng: lng},
		Accuracy{Scale: scale, Convergence: gamma * 180 / math.Pi}, nil
}
