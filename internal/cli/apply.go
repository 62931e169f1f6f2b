package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sunpaper/internal/config"
	"github.com/jmylchreest/sunpaper/internal/desktop"
	"github.com/jmylchreest/sunpaper/internal/schedule"
	"github.com/jmylchreest/sunpaper/internal/sun"
)

var applyDryRun bool

// applyCmd represents the apply command.
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Pick and apply the wallpaper for the current sun position",
	Long: `Apply computes the sun's position for the configured location, classifies
it into a light state, and applies the first wallpaper whose condition
matches. This is also what running sunpaper without a subcommand does.

Examples:
  # Apply using the default config location
  sunpaper apply

  # See what would be applied without touching the desktop
  sunpaper apply --dry-run -v`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "log the chosen wallpaper without applying it")
}

// runApply executes the apply command.
func runApply(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	wp, obs, err := pick(cfg, time.Now())
	if err != nil {
		return err
	}
	logger.Info("selected wallpaper",
		"path", wp.Path,
		"during", wp.During.String(),
		"light", obs.Light().String(),
		"elevation", fmt.Sprintf("%.2f", obs.Elevation),
		"azimuth", fmt.Sprintf("%.2f", obs.Azimuth))

	if applyDryRun {
		logger.Info("dry run, not applying")
		cmd.Println(wp.Path)
		return nil
	}

	setter, err := desktop.ForMethod(cfg.Method.Name, logger)
	if err != nil {
		return err
	}
	if err := setter.Set(cmd.Context(), wp.Path); err != nil {
		return fmt.Errorf("failed to apply wallpaper via %s: %w", setter.Name(), err)
	}
	logger.Debug("wallpaper applied", "backend", setter.Name())
	return nil
}

// pick runs the selection pipeline for one instant: observe, classify,
// match.
func pick(cfg *config.Config, now time.Time) (*schedule.Wallpaper, sun.Observation, error) {
	obs, err := sun.Observe(now, cfg.Location.Latitude, cfg.Location.Longitude)
	if err != nil {
		return nil, sun.Observation{}, fmt.Errorf("could not determine solar position: %w", err)
	}

	wp, err := schedule.Select(cfg.Wallpapers, obs.Light(), obs.Elevation, obs.Azimuth)
	if err != nil {
		return nil, sun.Observation{}, err
	}
	return wp, obs, nil
}

// loadConfig loads the file named by --config, falling back to the default
// location.
func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}
