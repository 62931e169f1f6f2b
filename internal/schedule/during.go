// Package schedule models when a wallpaper applies and selects the entry
// matching the current sun position.
//
// A wallpaper's applicability (its "during" condition) is expressed as a set
// of light states, a set of elevation-angle ranges split into the rising and
// setting halves of the day, both, or "any" as a fallback of last resort.
package schedule

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/sunpaper/internal/sun"
)

// During is a wallpaper's temporal applicability condition. The zero value
// matches nothing; exactly one of the four shapes is populated after
// parsing: Any, lights only, ranges only, or lights and ranges combined
// (which match as a logical OR).
type During struct {
	// Any marks the fallback condition. It never matches directly; Select
	// falls back to it only after every specific condition has failed.
	Any bool

	// Lights the condition applies during.
	Lights []sun.Light

	// Rising and Setting are elevation ranges checked during the morning
	// and evening halves of the day respectively. Bounds are signed
	// degrees in (-180, 180].
	Rising  []sun.Range
	Setting []sun.Range
}

// Matches reports whether the condition is satisfied by the current light
// state, solar elevation and azimuth. An Any condition never matches here;
// it is Select's job to apply it as the fallback.
func (d During) Matches(light sun.Light, elevation, azimuth float64) bool {
	if d.Any {
		return false
	}
	for _, l := range d.Lights {
		if l == light {
			return true
		}
	}
	ranges := d.Setting
	if azimuth < 180 {
		ranges = d.Rising
	}
	for _, r := range ranges {
		if r.Contains(elevation) {
			return true
		}
	}
	return false
}

// String renders the condition in the configuration vocabulary.
func (d During) String() string {
	if d.Any {
		return "any"
	}
	parts := make([]string, 0, len(d.Lights)+len(d.Rising)+len(d.Setting))
	for _, l := range d.Lights {
		parts = append(parts, l.String())
	}
	for _, r := range d.Rising {
		parts = append(parts, fmt.Sprintf("rising %g..%g", r.Low, r.High))
	}
	for _, r := range d.Setting {
		parts = append(parts, fmt.Sprintf("setting %g..%g", r.Low, r.High))
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, ", ")
}

// ParseScalar parses a bare string condition: the literal "any", or a single
// light-state name.
func ParseScalar(s string) (During, error) {
	if s == "any" {
		return During{Any: true}, nil
	}
	light, ok := sun.ParseLight(s)
	if !ok {
		return During{}, fmt.Errorf("unknown light state %q", s)
	}
	return During{Lights: []sun.Light{light}}, nil
}
