package schedule

import (
	"testing"

	"github.com/jmylchreest/sunpaper/internal/sun"
)

func rangesEqual(got, want []sun.Range) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestFoldPairs(t *testing.T) {
	tests := []struct {
		name        string
		tokens      []Token
		wantRising  []sun.Range
		wantSetting []sun.Range
	}{
		{
			name:       "plain rising pair",
			tokens:     []Token{AngleToken(10), AngleToken(20)},
			wantRising: []sun.Range{{Low: 10, High: 20}},
		},
		{
			name:        "plain setting pair",
			tokens:      []Token{AngleToken(-20), AngleToken(-10)},
			wantSetting: []sun.Range{{Low: -20, High: -10}},
		},
		{
			name: "rising pair re-centered across the seam",
			// 340 reduces past 180 and recenters to -20; the result is
			// the contiguous interval -20..15 with no gap at 0.
			tokens:     []Token{AngleToken(340), AngleToken(15)},
			wantRising: []sun.Range{{Low: -20, High: 15}},
		},
		{
			name: "setting pair split at the seam",
			// -345 recenters to 15, which exceeds -20, so the pair is
			// split; the union is the setting-side -20..15.
			tokens:      []Token{AngleToken(-345), AngleToken(-20)},
			wantSetting: []sun.Range{{Low: 0, High: 15}, {Low: -20, High: 0}},
		},
		{
			name:       "rising pair split at the seam",
			tokens:     []Token{AngleToken(10), AngleToken(350)},
			wantRising: []sun.Range{{Low: 0, High: 10}, {Low: -10, High: 0}},
		},
		{
			name:       "multiple rising pairs",
			tokens:     []Token{AngleToken(0), AngleToken(5), AngleToken(30), AngleToken(45)},
			wantRising: []sun.Range{{Low: 0, High: 5}, {Low: 30, High: 45}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Fold(tt.tokens)
			if err != nil {
				t.Fatalf("Fold: %v", err)
			}
			if !rangesEqual(d.Rising, tt.wantRising) {
				t.Errorf("rising = %+v, want %+v", d.Rising, tt.wantRising)
			}
			if !rangesEqual(d.Setting, tt.wantSetting) {
				t.Errorf("setting = %+v, want %+v", d.Setting, tt.wantSetting)
			}
		})
	}
}

func TestFoldSeamCoverage(t *testing.T) {
	// The recentered (340, 15) pair must cover the whole -20..15 interval,
	// in particular both sides of 0.
	d, err := Fold([]Token{AngleToken(340), AngleToken(15)})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	morning := 90.0
	for _, elevation := range []float64{-19.9, -5, 0, 0.5, 14.9} {
		if !d.Matches(sun.Night, elevation, morning) {
			t.Errorf("elevation %v not matched, want match", elevation)
		}
	}
	for _, elevation := range []float64{-20.1, 15, 30} {
		if d.Matches(sun.Night, elevation, morning) {
			t.Errorf("elevation %v matched, want no match", elevation)
		}
	}
}

func TestFoldPairingCarriesAcrossLightTokens(t *testing.T) {
	// A light token between bounds must not desynchronize pairing.
	d, err := Fold([]Token{
		AngleToken(10),
		LightToken(sun.Day),
		AngleToken(20),
		AngleToken(30),
		AngleToken(40),
	})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	wantRising := []sun.Range{{Low: 10, High: 20}, {Low: 30, High: 40}}
	if !rangesEqual(d.Rising, wantRising) {
		t.Errorf("rising = %+v, want %+v", d.Rising, wantRising)
	}
	if len(d.Lights) != 1 || d.Lights[0] != sun.Day {
		t.Errorf("lights = %v, want [day]", d.Lights)
	}
}

func TestFoldErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
	}{
		{"mixed sign pair", []Token{AngleToken(10), AngleToken(-20)}},
		{"mixed sign pair reversed", []Token{AngleToken(-10), AngleToken(20)}},
		{"dangling bound", []Token{AngleToken(10), LightToken(sun.Day), AngleToken(20), AngleToken(30)}},
		{"empty sequence", nil},
		{"only zero-width pair", []Token{AngleToken(10), AngleToken(10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Fold(tt.tokens); err == nil {
				t.Error("Fold succeeded, want error")
			}
		})
	}
}

func TestFoldZeroBoundCompatibleWithEitherHalf(t *testing.T) {
	d, err := Fold([]Token{AngleToken(-10), AngleToken(0)})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if len(d.Setting) != 0 {
		// first is negative, so the pair belongs to the setting half.
		want := []sun.Range{{Low: -10, High: 0}}
		if !rangesEqual(d.Setting, want) {
			t.Errorf("setting = %+v, want %+v", d.Setting, want)
		}
	} else {
		t.Errorf("setting empty, want one range")
	}
}
