// Package sun classifies the sun's position into discrete light states.
//
// The day/night cycle is modelled as a single 0..360 degree track: 0 is the
// rising horizon, climbing through the day half, 180 is the setting horizon,
// and the remainder of the circle is the night side, with dusk angles just
// past 180 and dawn angles just below 360. Encoding the cycle this way lets
// every light state own plain half-open bands with a single wrap-around
// union for Day.
package sun

import "math"

// Light is a discrete stage of the day/night cycle, ordered by time-of-day
// progression.
type Light int

const (
	AstronomicalDawn Light = iota
	NauticalDawn
	CivilDawn
	Day
	CivilDusk
	NauticalDusk
	AstronomicalDusk
	Night
)

// All lists every light state in time-of-day order.
var All = [...]Light{
	AstronomicalDawn,
	NauticalDawn,
	CivilDawn,
	Day,
	CivilDusk,
	NauticalDusk,
	AstronomicalDusk,
	Night,
}

// Twilight thresholds in degrees below the horizon. The horizon offset
// accounts for the solar disc radius and atmospheric refraction, so "day"
// begins while the centre of the disc is still slightly below the horizon.
const (
	horizonOffset     = 0.25
	civilDepth        = 6.0
	nauticalDepth     = 12.0
	astronomicalDepth = 18.0
	settingHorizon    = 180.0
	fullCircle        = 360.0
)

// Range is a half-open interval [Low, High) on the normalized track domain.
type Range struct {
	Low, High float64
}

// Contains reports whether v lies within the half-open interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Low && v < r.High
}

// lightBands maps each light state to its track-angle bands. The bands are
// mutually exclusive and tile [0, 360) exactly; Day is the only state that
// needs two bands, to cover the wrap past 360.
var lightBands = map[Light][]Range{
	Day: {
		{Low: 0, High: settingHorizon + horizonOffset},
		{Low: fullCircle - horizonOffset, High: fullCircle},
	},
	CivilDusk:        {{Low: settingHorizon + horizonOffset, High: settingHorizon + civilDepth}},
	NauticalDusk:     {{Low: settingHorizon + civilDepth, High: settingHorizon + nauticalDepth}},
	AstronomicalDusk: {{Low: settingHorizon + nauticalDepth, High: settingHorizon + astronomicalDepth}},
	Night:            {{Low: settingHorizon + astronomicalDepth, High: fullCircle - astronomicalDepth}},
	AstronomicalDawn: {{Low: fullCircle - astronomicalDepth, High: fullCircle - nauticalDepth}},
	NauticalDawn:     {{Low: fullCircle - nauticalDepth, High: fullCircle - civilDepth}},
	CivilDawn:        {{Low: fullCircle - civilDepth, High: fullCircle - horizonOffset}},
}

// Bands returns the track-angle bands owned by the light state.
func (l Light) Bands() []Range {
	return lightBands[l]
}

// String returns the canonical configuration name of the light state.
func (l Light) String() string {
	switch l {
	case AstronomicalDawn:
		return "astronomical dawn"
	case NauticalDawn:
		return "nautical dawn"
	case CivilDawn:
		return "civil dawn"
	case Day:
		return "day"
	case CivilDusk:
		return "civil dusk"
	case NauticalDusk:
		return "nautical dusk"
	case AstronomicalDusk:
		return "astronomical dusk"
	case Night:
		return "night"
	}
	return "unknown"
}

// ParseLight resolves a configuration name to its light state.
func ParseLight(name string) (Light, bool) {
	for _, l := range All {
		if l.String() == name {
			return l, true
		}
	}
	return 0, false
}

// Normalize reduces an angle to the track domain [0, 360). The reduction is
// a degree-domain modulo, not an elevation clamp: -10 normalizes to 350.
func Normalize(angle float64) float64 {
	norm := math.Mod(angle, fullCircle)
	if norm < 0 {
		norm += fullCircle
	}
	return norm
}

// Classify maps a track angle to its light state. It is total over all real
// inputs: the input is normalized to [0, 360) and the bands tile that domain
// exactly. Night is the catch-all band, so no input can fail to classify.
func Classify(angle float64) Light {
	norm := Normalize(angle)
	for _, l := range All {
		if l == Night {
			continue
		}
		for _, band := range lightBands[l] {
			if band.Contains(norm) {
				return l
			}
		}
	}
	return Night
}

// Track projects a physical solar elevation onto the track domain. Physical
// elevations only ever normalize into the rising half of the circle, so the
// evening half of the day (azimuth >= 180) is mirrored past the setting
// horizon: an elevation of -6 in the evening becomes track angle 186.
func Track(elevation, azimuth float64) float64 {
	if azimuth < settingHorizon {
		return elevation
	}
	return settingHorizon - elevation
}

// ClassifyAt classifies the instant described by a physical elevation and
// the azimuth half that disambiguates dawn from dusk.
func ClassifyAt(elevation, azimuth float64) Light {
	return Classify(Track(elevation, azimuth))
}
