package utm

import "math"

// UTM projection constants: central meridian scale and the false origin
// offsets that keep coordinates positive.
const scaleFactor = 0.9996
const falseEasting = 500000.0
const falseNorthing = 10000000.0

// kruger holds the per-ellipsoid constants of Karney's sixth-order series:
// eccentricity, third flattening, the rectifying radius, and the forward
// (alpha) and inverse (beta) trig series coefficients. The coefficients
// depend only on the shape of the ellipsoid, not its size.
type kruger struct {
	a     float64
	e     float64 // eccentricity
	n     float64 // third flattening
	radA  float64 // rectifying radius A; 2*pi*A is the meridian circumference
	alpha [6]float64
	beta  [6]float64
}

func newKruger(ell Ellipsoid) kruger {
	f := ell.F
	n := f / (2 - f)
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n
	n6 := n5 * n

	k := kruger{
		a: ell.A,
		e: math.Sqrt(f * (2 - f)),
		n: n,
	}
	k.radA = ell.A / (1 + n) * (1 + n2/4 + n4/64 + n6/256)

	k.alpha = [6]float64{
		n/2 - 2.0/3*n2 + 5.0/16*n3 + 41.0/180*n4 - 127.0/288*n5 + 7891.0/37800*n6,
		13.0/48*n2 - 3.0/5*n3 + 557.0/1440*n4 + 281.0/630*n5 - 1983433.0/1935360*n6,
		61.0/240*n3 - 103.0/140*n4 + 15061.0/26880*n5 + 167603.0/181440*n6,
		49561.0/161280*n4 - 179.0/168*n5 + 6601661.0/7257600*n6,
		34729.0/80640*n5 - 3418889.0/1995840*n6,
		212378941.0 / 319334400 * n6,
	}
	k.beta = [6]float64{
		n/2 - 2.0/3*n2 + 37.0/96*n3 - 1.0/360*n4 - 81.0/512*n5 + 96199.0/604800*n6,
		1.0/48*n2 + 1.0/15*n3 - 437.0/1440*n4 + 46.0/105*n5 - 1118711.0/3870720*n6,
		17.0/480*n3 - 37.0/840*n4 - 209.0/4480*n5 + 5569.0/90720*n6,
		4397.0/161280*n4 - 11.0/504*n5 - 830251.0/7257600*n6,
		4583.0/161280*n5 - 108847.0/3991680*n6,
		20648693.0 / 638668800 * n6,
	}
	return k
}

// tauPrime maps the tangent of geodetic latitude to the tangent of conformal
// latitude.
func (k kruger) tauPrime(tau float64) float64 {
	sigma := math.Sinh(k.e * math.Atanh(k.e*tau/math.Sqrt(1+tau*tau)))
	return tau*math.Sqrt(1+sigma*sigma) - sigma*math.Sqrt(1+tau*tau)
}

const tauTolerance = 1e-12
const maxTauIterations = 10

// solveTau inverts tauPrime by Newton iteration. Valid inputs converge in two
// or three steps; the iteration cap bounds pathological ones.
func (k kruger) solveTau(tauP float64) float64 {
	e2 := k.e * k.e
	tau := tauP
	for i := 0; i < maxTauIterations; i++ {
		sigma := math.Sinh(k.e * math.Atanh(k.e*tau/math.Sqrt(1+tau*tau)))
		tauI := tau*math.Sqrt(1+sigma*sigma) - sigma*math.Sqrt(1+tau*tau)
		delta := (tauP - tauI) / math.Sqrt(1+tauI*tauI) *
			(1 + (1-e2)*tau*tau) / ((1 - e2) * math.Sqrt(1+tau*tau))
		tau += delta
		if math.Abs(delta) <= tauTolerance {
			break
		}
	}
	return tau
}

// meridianNorthing returns the grid northing of a latitude on a zone's
// central meridian, with the southern false northing applied.
func (k kruger) meridianNorthing(lat float64) float64 {
	phi := lat * math.Pi / 180
	xiP := math.Atan(k.tauPrime(math.Tan(phi)))
	xi := xiP
	for j := 1; j <= 6; j++ {
		xi += k.alpha[j-1] * math.Sin(2*float64(j)*xiP)
	}
	y := scaleFactor * k.radA * xi
	if y < 0 {
		y += falseNorthing
	}
	return y
}
