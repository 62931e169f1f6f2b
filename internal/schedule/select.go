package schedule

import (
	"errors"

	"github.com/jmylchreest/sunpaper/internal/sun"
)

// ErrNoMatch is returned by Select when no condition matches the current
// instant and the configuration carries no "any" fallback entry.
var ErrNoMatch = errors.New("no configured wallpaper matches the current sun position; add an entry with during: any as a fallback")

// Wallpaper is one configured wallpaper entry.
type Wallpaper struct {
	During During
	Path   string
}

// Select returns the first wallpaper whose condition is satisfied by the
// current instant. Specific conditions are evaluated across the whole list
// before any fallback is considered, so an "any" entry declared early never
// shadows a later specific match. List order breaks ties within each pass.
func Select(wallpapers []Wallpaper, light sun.Light, elevation, azimuth float64) (*Wallpaper, error) {
	for i := range wallpapers {
		if wallpapers[i].During.Matches(light, elevation, azimuth) {
			return &wallpapers[i], nil
		}
	}
	for i := range wallpapers {
		if wallpapers[i].During.Any {
			return &wallpapers[i], nil
		}
	}
	return nil, ErrNoMatch
}
