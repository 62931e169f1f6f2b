// Package desktop applies a chosen wallpaper to the running desktop
// environment.
package desktop

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-ps"
)

// Setter applies a wallpaper image to the active desktop.
type Setter interface {
	// Name identifies the backend (matches the config method name).
	Name() string

	// Set makes the image at path the current wallpaper.
	Set(ctx context.Context, path string) error
}

// ForMethod resolves a configured method name to a backend. The "auto"
// method discovers the running desktop shell instead.
func ForMethod(name string, logger hclog.Logger) (Setter, error) {
	switch name {
	case "kde":
		return NewPlasma(logger), nil
	case "gnome":
		return NewGNOME(logger), nil
	case "auto":
		return Detect(logger)
	}
	return nil, fmt.Errorf("no wallpaper backend for method %q", name)
}

// shellBackends maps desktop shell executables to backend constructors, in
// probe order.
var shellBackends = []struct {
	executable string
	build      func(hclog.Logger) Setter
}{
	{"plasmashell", func(l hclog.Logger) Setter { return NewPlasma(l) }},
	{"gnome-shell", func(l hclog.Logger) Setter { return NewGNOME(l) }},
}

// Detect picks a backend by looking for a known desktop shell among the
// running processes.
func Detect(logger hclog.Logger) (Setter, error) {
	processes, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	for _, candidate := range shellBackends {
		for _, p := range processes {
			if p.Executable() == candidate.executable {
				s := candidate.build(logger)
				logger.Debug("detected desktop shell", "executable", candidate.executable, "backend", s.Name())
				return s, nil
			}
		}
	}
	return nil, fmt.Errorf("no supported desktop shell found; set method.name explicitly")
}
