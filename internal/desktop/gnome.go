package desktop

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"

	"github.com/hashicorp/go-hclog"
)

// gnomeKeys are the GSettings background keys to update. Both the light and
// dark variants are set so the wallpaper survives a theme switch.
var gnomeKeys = []struct {
	schema string
	key    string
}{
	{"org.gnome.desktop.background", "picture-uri"},
	{"org.gnome.desktop.background", "picture-uri-dark"},
}

// GNOME applies wallpapers through gsettings.
type GNOME struct {
	logger hclog.Logger

	// run is swappable for tests.
	run func(ctx context.Context, name string, args ...string) error
}

// NewGNOME creates the GNOME backend.
func NewGNOME(logger hclog.Logger) *GNOME {
	return &GNOME{
		logger: logger,
		run: func(ctx context.Context, name string, args ...string) error {
			out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
			if err != nil {
				return fmt.Errorf("%w: %s", err, out)
			}
			return nil
		},
	}
}

// Name implements Setter.
func (g *GNOME) Name() string { return "gnome" }

// Set implements Setter.
func (g *GNOME) Set(ctx context.Context, path string) error {
	uri := fileURI(path)
	g.logger.Debug("updating gsettings background", "uri", uri)
	for _, k := range gnomeKeys {
		if err := g.run(ctx, "gsettings", "set", k.schema, k.key, uri); err != nil {
			return fmt.Errorf("failed to set %s %s: %w", k.schema, k.key, err)
		}
	}
	return nil
}

// fileURI renders a filesystem path as a file:// URI with proper escaping.
func fileURI(path string) string {
	u := url.URL{Scheme: "file", Path: path}
	return u.String()
}
