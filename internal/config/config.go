// Package config loads and validates the sunpaper configuration file.
//
// The file is YAML. A wallpaper's "during" value is deliberately
// free-form — a bare string, or a sequence mixing light-state names and
// numeric elevation bounds — so decoding first classifies the raw shape and
// then hands a flat token sequence to the schedule fold.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/sunpaper/internal/schedule"
	"github.com/jmylchreest/sunpaper/internal/sun"
)

// Method names accepted by the "method" section.
const (
	MethodKDE   = "kde"
	MethodGNOME = "gnome"
	MethodAuto  = "auto"
)

// Location is the geographic position the sun is observed from.
type Location struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Method selects the desktop backend used to apply the wallpaper.
type Method struct {
	Name string `yaml:"name"`
}

// Config is the loaded configuration. Read-only after Load; wallpaper list
// order is significant, the first matching entry wins.
type Config struct {
	Location   Location
	Method     Method
	Wallpapers []schedule.Wallpaper
}

// document mirrors the on-disk layout; during conditions stay as raw nodes
// until their shape is known.
type document struct {
	Location   Location       `yaml:"location"`
	Method     Method         `yaml:"method"`
	Wallpapers []wallpaperDoc `yaml:"wallpapers"`
}

type wallpaperDoc struct {
	During yaml.Node `yaml:"during"`
	Path   string    `yaml:"path"`
}

// DefaultPath returns the standard configuration file location,
// $XDG_CONFIG_HOME/sunpaper/config.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "sunpaper", "config.yaml"), nil
}

// Load reads, decodes and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - user-specified config path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg := &Config{
		Location: doc.Location,
		Method:   doc.Method,
	}
	if err := validateLocation(cfg.Location); err != nil {
		return nil, err
	}
	if err := validateMethod(&cfg.Method); err != nil {
		return nil, err
	}
	if len(doc.Wallpapers) == 0 {
		return nil, fmt.Errorf("no wallpapers configured")
	}

	for i, wd := range doc.Wallpapers {
		during, err := decodeDuring(&wd.During)
		if err != nil {
			return nil, fmt.Errorf("wallpaper %d: invalid during: %w", i+1, err)
		}
		if wd.Path == "" {
			return nil, fmt.Errorf("wallpaper %d: missing path", i+1)
		}
		path, err := expandPath(wd.Path)
		if err != nil {
			return nil, fmt.Errorf("wallpaper %d: %w", i+1, err)
		}
		cfg.Wallpapers = append(cfg.Wallpapers, schedule.Wallpaper{During: during, Path: path})
	}
	return cfg, nil
}

func validateLocation(loc Location) error {
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return fmt.Errorf("location: latitude %v out of range [-90, 90]", loc.Latitude)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("location: longitude %v out of range [-180, 180]", loc.Longitude)
	}
	return nil
}

func validateMethod(m *Method) error {
	switch m.Name {
	case MethodKDE, MethodGNOME, MethodAuto:
		return nil
	case "":
		m.Name = MethodAuto
		return nil
	}
	return fmt.Errorf("method: unknown name %q (expected kde, gnome or auto)", m.Name)
}

// decodeDuring classifies the raw shape of a during value and converts it to
// a condition. A scalar string is "any" or a single light-state name; a
// sequence is folded token by token.
func decodeDuring(node *yaml.Node) (schedule.During, error) {
	switch node.Kind {
	case 0:
		return schedule.During{}, fmt.Errorf("missing value")

	case yaml.ScalarNode:
		if node.Tag != "!!str" {
			return schedule.During{}, fmt.Errorf("a bare %s is not a condition; use a string or a sequence", shortTag(node.Tag))
		}
		return schedule.ParseScalar(node.Value)

	case yaml.SequenceNode:
		tokens := make([]schedule.Token, 0, len(node.Content))
		for _, item := range node.Content {
			tok, err := decodeToken(item)
			if err != nil {
				return schedule.During{}, err
			}
			tokens = append(tokens, tok)
		}
		return schedule.Fold(tokens)
	}
	return schedule.During{}, fmt.Errorf("expected a string or a sequence, got a %s", kindName(node.Kind))
}

func decodeToken(node *yaml.Node) (schedule.Token, error) {
	if node.Kind != yaml.ScalarNode {
		return schedule.Token{}, fmt.Errorf("expected a light state or a number, got a %s", kindName(node.Kind))
	}
	switch node.Tag {
	case "!!int", "!!float":
		v, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return schedule.Token{}, fmt.Errorf("invalid elevation bound %q: %w", node.Value, err)
		}
		return schedule.AngleToken(v), nil
	case "!!str":
		light, ok := sun.ParseLight(node.Value)
		if !ok {
			return schedule.Token{}, fmt.Errorf("unknown light state %q", node.Value)
		}
		return schedule.LightToken(light), nil
	}
	return schedule.Token{}, fmt.Errorf("expected a light state or a number, got %s %q", shortTag(node.Tag), node.Value)
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown node"
}

func shortTag(tag string) string {
	if len(tag) > 2 && tag[:2] == "!!" {
		return tag[2:]
	}
	return tag
}

// expandPath resolves a leading ~/ against the user's home directory.
func expandPath(path string) (string, error) {
	if path == "~" || len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %q: %w", path, err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
