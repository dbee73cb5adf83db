package utm

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "N"
	case HemisphereSouth:
		return "S"
	}
	return "invalid"
}
