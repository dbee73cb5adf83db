package utm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const mgrsMaxPrecision = 5 // maximum digits per axis of easting & northing

// 100 km grid square letters. Column letters cycle through three sets of
// eight across zones; row letters cycle through twenty, offset by five in
// even-numbered zones.
var mgrsColumnLetters = [3]string{"ABCDEFGH", "JKLMNPQR", "STUVWXYZ"}
var mgrsRowLetters = [2]string{"ABCDEFGHJKLMNPQRSTUV", "FGHJKLMNPQRSTUVABCDE"}

// Band returns the MGRS latitude band letter for a projected point. The band
// is recovered from the point's latitude via an inverse projection.
func Band(u ProjectedPoint) (byte, error) {
	g, err := ToGeodetic(u)
	if err != nil {
		return 0, err
	}
	return latitudeBand(g.lat), nil
}

// FormatMGRS renders a projected point as an MGRS grid reference, for
// example "30UWB8203170370". precision is the number of digits per axis, 0
// to 5; 5 is meter precision. Digits are truncated, not rounded, so the
// reference names the square containing the point.
func FormatMGRS(u ProjectedPoint, precision int) (string, error) {
	if precision < 0 || precision > mgrsMaxPrecision {
		return "", fmt.Errorf("utm: MGRS precision %d not in [0, %d]", precision, mgrsMaxPrecision)
	}
	band, err := Band(u)
	if err != nil {
		return "", err
	}

	col := int(u.easting) / 100000
	if col < 1 || col > 8 {
		return "", fmt.Errorf("%w: %f outside the MGRS grid", ErrInvalidEasting, u.easting)
	}
	e100k := mgrsColumnLetters[(u.zone-1)%3][col-1]
	row := (int(u.northing) / 100000) % 20
	n100k := mgrsRowLetters[(u.zone-1)%2][row]

	if precision == 0 {
		return fmt.Sprintf("%d%c%c%c", u.zone, band, e100k, n100k), nil
	}
	div := int(math.Pow10(5 - precision))
	e := (int(u.easting) % 100000) / div
	n := (int(u.northing) % 100000) / div
	return fmt.Sprintf("%d%c%c%c%0*d%0*d", u.zone, band, e100k, n100k,
		precision, e, precision, n), nil
}

// ParseMGRS parses an MGRS grid reference such as "30UWB8203170370" or
// "30U WB 82031 70370" into a WGS84 projected point. The numeric part must
// have an even number of digits, up to five per axis.
func ParseMGRS(ref string) (ProjectedPoint, error) {
	s := strings.ToUpper(strings.ReplaceAll(ref, " ", ""))

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i < 1 || i > 2 {
		return ProjectedPoint{}, fmt.Errorf("utm: invalid MGRS zone in %q", ref)
	}
	zone, err := strconv.Atoi(s[:i])
	if err != nil {
		return ProjectedPoint{}, fmt.Errorf("utm: invalid MGRS zone in %q", ref)
	}
	if zone < 1 || zone > 60 {
		return ProjectedPoint{}, fmt.Errorf("%w: %d", ErrInvalidZone, zone)
	}
	if len(s) < i+3 {
		return ProjectedPoint{}, fmt.Errorf("utm: truncated MGRS reference %q", ref)
	}

	band := s[i]
	bandIdx := strings.IndexByte(mgrsBandLetters, band)
	if bandIdx < 0 {
		return ProjectedPoint{}, fmt.Errorf("utm: invalid MGRS band %q in %q", band, ref)
	}
	col := strings.IndexByte(mgrsColumnLetters[(zone-1)%3], s[i+1])
	row := strings.IndexByte(mgrsRowLetters[(zone-1)%2], s[i+2])
	if col < 0 || row < 0 {
		return ProjectedPoint{}, fmt.Errorf("utm: invalid MGRS 100km square %q in %q", s[i+1:i+3], ref)
	}

	digits := s[i+3:]
	if len(digits)%2 != 0 || len(digits) > 2*mgrsMaxPrecision {
		return ProjectedPoint{}, fmt.Errorf("utm: invalid MGRS numeric part %q in %q", digits, ref)
	}
	precision := len(digits) / 2
	var e, n float64
	if precision > 0 {
		mul := math.Pow10(5 - precision)
		eVal, err := strconv.Atoi(digits[:precision])
		if err != nil {
			return ProjectedPoint{}, fmt.Errorf("utm: invalid MGRS easting %q in %q", digits[:precision], ref)
		}
		nVal, err := strconv.Atoi(digits[precision:])
		if err != nil {
			return ProjectedPoint{}, fmt.Errorf("utm: invalid MGRS northing %q in %q", digits[precision:], ref)
		}
		e = float64(eVal) * mul
		n = float64(nVal) * mul
	}

	easting := float64(col+1)*100000 + e

	hemisphere := HemisphereNorth
	if band < 'N' {
		hemisphere = HemisphereSouth
	}

	// Row letters repeat every 2,000 km of northing; resolve the block from
	// the northing of the band's bottom edge on the central meridian.
	k := newKruger(WGS84().Ellipsoid)
	bandBottom := float64(bandIdx-10) * 8
	nBand := math.Floor(k.meridianNorthing(bandBottom)/100000) * 100000
	northing := float64(row)*100000 + n
	for northing < nBand {
		northing += 2000000
	}

	return NewProjectedPoint(zone, hemisphere, easting, northing, WGS84())
}
