package utm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference values for the WGS84 ellipsoid, from published tabulations of the
// Krüger series coefficients (rectifying latitude as a trig series in
// conformal latitude and its inverse).
var wgs84Alpha = [6]float64{
	8.3773182062446983032e-04,
	7.608527773572489156e-07,
	1.19764550324249210e-09,
	2.4291706803973131e-12,
	5.711818369154105e-15,
	1.47999802705262e-17,
}

var wgs84Beta = [6]float64{
	8.3773216405794867707e-04,
	5.905870152220365181e-08,
	1.67348266534382493e-10,
	2.1647981104903862e-13,
	3.787930968839601e-16,
	7.23676928796690e-19,
}

func TestKrugerWGS84Coefficients(t *testing.T) {
	k := newKruger(WGS84().Ellipsoid)

	for i := 0; i < 6; i++ {
		assert.InEpsilon(t, wgs84Alpha[i], k.alpha[i], 1e-13, "alpha[%d]", i)
		assert.InEpsilon(t, wgs84Beta[i], k.beta[i], 1e-13, "beta[%d]", i)
	}
}

func TestKrugerWGS84Constants(t *testing.T) {
	k := newKruger(WGS84().Ellipsoid)

	assert.InDelta(t, 0.0818191908426215, k.e, 1e-12, "eccentricity")
	assert.InDelta(t, 1.6792203863837047e-03, k.n, 1e-15, "third flattening")
	assert.InDelta(t, 6367449.145823415, k.radA, 1e-6, "rectifying radius")
}

func TestSolveTauInvertsTauPrime(t *testing.T) {
	k := newKruger(WGS84().Ellipsoid)

	for _, tau := range []float64{-12.5, -1, -0.25, 0, 0.0003, 0.5, 2, 9.5} {
		got := k.solveTau(k.tauPrime(tau))
		require.InDelta(t, tau, got, 1e-11, "tau=%f", tau)
	}
}

func TestMeridianNorthing(t *testing.T) {
	k := newKruger(WGS84().Ellipsoid)

	// Scaled meridian distances on the central meridian.
	assert.InDelta(t, 0, k.meridianNorthing(0), 1e-9)
	assert.InDelta(t, 4982950.40, k.meridianNorthing(45), 1.0)
	// Southern latitudes carry the false northing.
	assert.InDelta(t, 1118414.2, k.meridianNorthing(-80), 1.0)
}
