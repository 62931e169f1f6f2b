package schedule

import (
	"fmt"
	"math"

	"github.com/jmylchreest/sunpaper/internal/sun"
)

// Token is one element of a sequence-shaped during condition: either a
// light-state name or a numeric elevation bound. The fold over a token
// sequence is independent of the serialization format that produced it.
type Token struct {
	light  sun.Light
	number float64
	isNum  bool
}

// LightToken builds a light-state token.
func LightToken(l sun.Light) Token {
	return Token{light: l}
}

// AngleToken builds a numeric elevation-bound token.
func AngleToken(v float64) Token {
	return Token{number: v, isNum: true}
}

// Fold reduces a token sequence to a During condition. Light tokens
// accumulate into the light set. Numeric tokens are consumed pairwise as
// range bounds; an intervening light token does not desynchronize pairing,
// the first bound of a pair simply stays buffered until the next numeric
// token arrives.
//
// Malformed sequences are configuration errors rather than silent no-ops:
// a pair mixing a positive and a negative raw bound, a trailing unpaired
// bound, and a sequence yielding neither lights nor ranges all fail.
func Fold(tokens []Token) (During, error) {
	var d During
	var pending *float64

	for _, tok := range tokens {
		if !tok.isNum {
			d.Lights = append(d.Lights, tok.light)
			continue
		}
		if pending == nil {
			first := tok.number
			pending = &first
			continue
		}
		first, second := *pending, tok.number
		pending = nil

		rising, ranges, err := foldPair(first, second)
		if err != nil {
			return During{}, err
		}
		if rising {
			d.Rising = append(d.Rising, ranges...)
		} else {
			d.Setting = append(d.Setting, ranges...)
		}
	}

	if pending != nil {
		return During{}, fmt.Errorf("dangling elevation bound %g: bounds must come in pairs", *pending)
	}
	if len(d.Lights) == 0 && len(d.Rising) == 0 && len(d.Setting) == 0 {
		return During{}, fmt.Errorf("condition matches nothing: no light states or elevation ranges")
	}
	return d, nil
}

// foldPair converts one bound pair into elevation ranges. The sign of the
// first raw bound picks the half of the day: positive means rising, negative
// means setting (zero is compatible with either). Bounds are reduced with a
// truncated modulo that keeps their sign, then recentered onto a signed
// domain so that e.g. a rising bound of 340 compares as -20. A recentered
// pair with first > second crosses the 0/360 seam and is split in two, with
// zero-width halves dropped.
func foldPair(first, second float64) (rising bool, ranges []sun.Range, err error) {
	if (first > 0 && second < 0) || (first < 0 && second > 0) {
		return false, nil, fmt.Errorf("elevation bounds %g and %g mix rising and setting halves", first, second)
	}
	rising = first >= 0

	first = math.Mod(first, 360)
	second = math.Mod(second, 360)
	if rising {
		if first > 180 {
			first -= 360
		}
		if second > 180 {
			second -= 360
		}
	} else {
		if first < -180 {
			first += 360
		}
		if second < -180 {
			second += 360
		}
	}

	if first > second {
		// Seam-crossing pair: [second, 0) plus [0, first).
		if first != 0 {
			ranges = append(ranges, sun.Range{Low: 0, High: first})
		}
		if second != 0 {
			ranges = append(ranges, sun.Range{Low: second, High: 0})
		}
		return rising, ranges, nil
	}
	if first == second {
		return rising, nil, nil
	}
	return rising, []sun.Range{{Low: first, High: second}}, nil
}
