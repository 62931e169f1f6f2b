package sun

import (
	"fmt"
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
)

// Observation is the sun's position at one instant, in degrees.
type Observation struct {
	// Elevation is the angle of the sun above the horizon (90 minus the
	// zenith angle). Negative below the horizon.
	Elevation float64

	// Azimuth is the compass direction of the sun in [0, 360), 0 = north,
	// clockwise. Values < 180 are the morning half of the day, values
	// >= 180 the evening half.
	Azimuth float64
}

// Morning reports whether the observation falls in the rising half of the
// day.
func (o Observation) Morning() bool {
	return o.Azimuth < settingHorizon
}

// Light returns the light state for the observation.
func (o Observation) Light() Light {
	return ClassifyAt(o.Elevation, o.Azimuth)
}

const degPerRad = 180.0 / math.Pi

// Observe computes the sun's position for the given instant and location.
// suncalc reports altitude in radians and azimuth in radians measured from
// south; both are converted to the degree conventions of Observation.
func Observe(t time.Time, latitude, longitude float64) (Observation, error) {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return Observation{}, fmt.Errorf("latitude %v out of range [-90, 90]", latitude)
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return Observation{}, fmt.Errorf("longitude %v out of range [-180, 180]", longitude)
	}

	pos := suncalc.GetPosition(t, latitude, longitude)
	obs := Observation{
		Elevation: pos.Altitude * degPerRad,
		Azimuth:   Normalize(pos.Azimuth*degPerRad + 180),
	}
	if math.IsNaN(obs.Elevation) || math.IsNaN(obs.Azimuth) {
		return Observation{}, fmt.Errorf("no solar position for lat=%v lon=%v at %s", latitude, longitude, t.Format(time.RFC3339))
	}
	return obs, nil
}

// DayEvent is a named solar event of the current day.
type DayEvent struct {
	Name string
	At   time.Time
}

// DayEvents returns the day's principal solar events in chronological order.
// Events that do not occur at the given location and date (polar day or
// night) are omitted.
func DayEvents(t time.Time, latitude, longitude float64) []DayEvent {
	times := suncalc.GetTimes(t, latitude, longitude)

	names := []suncalc.DayTimeName{
		suncalc.NightEnd,
		suncalc.NauticalDawn,
		suncalc.Dawn,
		suncalc.Sunrise,
		suncalc.SolarNoon,
		suncalc.Sunset,
		suncalc.Dusk,
		suncalc.NauticalDusk,
		suncalc.Night,
	}
	labels := map[suncalc.DayTimeName]string{
		suncalc.NightEnd:     "astronomical dawn",
		suncalc.NauticalDawn: "nautical dawn",
		suncalc.Dawn:         "civil dawn",
		suncalc.Sunrise:      "sunrise",
		suncalc.SolarNoon:    "solar noon",
		suncalc.Sunset:       "sunset",
		suncalc.Dusk:         "civil dusk",
		suncalc.NauticalDusk: "nautical dusk",
		suncalc.Night:        "astronomical dusk",
	}

	events := make([]DayEvent, 0, len(names))
	for _, name := range names {
		dt, ok := times[name]
		if !ok || dt.Value.IsZero() {
			continue
		}
		events = append(events, DayEvent{Name: labels[name], At: dt.Value})
	}
	return events
}
