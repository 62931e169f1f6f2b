package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/sunpaper/internal/sun"
)

const sampleConfig = `
location:
  latitude: 52.37
  longitude: 4.89
method:
  name: kde
wallpapers:
  - during: ["civil dawn", "nautical dawn"]
    path: /walls/dawn.png
  - during: day
    path: /walls/day.png
  - during: [340, 15, day]
    path: /walls/golden.png
  - during: [-345, -20]
    path: /walls/sunset.png
  - during: any
    path: /walls/fallback.png
`

func TestParseSampleConfig(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Location.Latitude != 52.37 || cfg.Location.Longitude != 4.89 {
		t.Errorf("location = %+v", cfg.Location)
	}
	if cfg.Method.Name != MethodKDE {
		t.Errorf("method = %q, want kde", cfg.Method.Name)
	}
	if len(cfg.Wallpapers) != 5 {
		t.Fatalf("got %d wallpapers, want 5", len(cfg.Wallpapers))
	}

	dawn := cfg.Wallpapers[0].During
	if len(dawn.Lights) != 2 || dawn.Lights[0] != sun.CivilDawn || dawn.Lights[1] != sun.NauticalDawn {
		t.Errorf("wallpaper 1 lights = %v", dawn.Lights)
	}

	day := cfg.Wallpapers[1].During
	if len(day.Lights) != 1 || day.Lights[0] != sun.Day {
		t.Errorf("wallpaper 2 during = %+v", day)
	}

	golden := cfg.Wallpapers[2].During
	if len(golden.Lights) != 1 || golden.Lights[0] != sun.Day {
		t.Errorf("wallpaper 3 lights = %v", golden.Lights)
	}
	if len(golden.Rising) != 1 || golden.Rising[0] != (sun.Range{Low: -20, High: 15}) {
		t.Errorf("wallpaper 3 rising = %v", golden.Rising)
	}

	sunset := cfg.Wallpapers[3].During
	if len(sunset.Setting) != 2 {
		t.Errorf("wallpaper 4 setting = %v", sunset.Setting)
	}

	if !cfg.Wallpapers[4].During.Any {
		t.Errorf("wallpaper 5 during = %+v, want any", cfg.Wallpapers[4].During)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantSub string
	}{
		{
			name:    "latitude out of range",
			doc:     "location: {latitude: 95, longitude: 0}\nwallpapers:\n  - {during: any, path: /w.png}\n",
			wantSub: "latitude",
		},
		{
			name:    "longitude out of range",
			doc:     "location: {latitude: 0, longitude: 200}\nwallpapers:\n  - {during: any, path: /w.png}\n",
			wantSub: "longitude",
		},
		{
			name:    "unknown method",
			doc:     "method: {name: windows}\nwallpapers:\n  - {during: any, path: /w.png}\n",
			wantSub: "method",
		},
		{
			name:    "no wallpapers",
			doc:     "location: {latitude: 0, longitude: 0}\n",
			wantSub: "no wallpapers",
		},
		{
			name:    "missing during",
			doc:     "wallpapers:\n  - {path: /w.png}\n",
			wantSub: "during",
		},
		{
			name:    "missing path",
			doc:     "wallpapers:\n  - {during: any}\n",
			wantSub: "path",
		},
		{
			name:    "unknown light name",
			doc:     "wallpapers:\n  - {during: dawn, path: /w.png}\n",
			wantSub: "unknown light state",
		},
		{
			name:    "bare number condition",
			doc:     "wallpapers:\n  - {during: 5, path: /w.png}\n",
			wantSub: "not a condition",
		},
		{
			name:    "mapping condition",
			doc:     "wallpapers:\n  - {during: {from: 1}, path: /w.png}\n",
			wantSub: "mapping",
		},
		{
			name:    "mixed sign pair",
			doc:     "wallpapers:\n  - {during: [10, -20], path: /w.png}\n",
			wantSub: "mix",
		},
		{
			name:    "dangling bound",
			doc:     "wallpapers:\n  - {during: [10, 20, 30], path: /w.png}\n",
			wantSub: "dangling",
		},
		{
			name:    "boolean token",
			doc:     "wallpapers:\n  - {during: [true], path: /w.png}\n",
			wantSub: "bool",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestMethodDefaultsToAuto(t *testing.T) {
	cfg, err := Parse([]byte("wallpapers:\n  - {during: any, path: /w.png}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Method.Name != MethodAuto {
		t.Errorf("method = %q, want auto", cfg.Method.Name)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load: %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := expandPath("~/walls/day.png")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	want := filepath.Join(home, "walls", "day.png")
	if got != want {
		t.Errorf("expandPath = %q, want %q", got, want)
	}

	got, err = expandPath("/absolute/day.png")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if got != "/absolute/day.png" {
		t.Errorf("expandPath rewrote absolute path to %q", got)
	}
}
