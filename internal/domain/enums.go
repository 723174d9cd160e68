package domain

// HintStyle selects what kind of hint accompanies each scramble.
type HintStyle int

const (
	HintNone     HintStyle = iota
	HintCategory           // "category: animal"
	HintLength             // "length: 4 letters"
)

func (h HintStyle) String() string {
	switch h {
	case HintCategory:
		return "category"
	case HintLength:
		return "length"
	default:
		return "none"
	}
}

// Difficulty level bounds. Levels outside are clamped by the configurator.
const (
	MinLevel = 1
	MaxLevel = 10
)
