package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sunpaper/internal/wallpaper"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and wallpaper images",
	Long: `Validate loads the configuration, checks every during condition, and
verifies that each configured wallpaper exists and is a decodable image
(JPEG, PNG, GIF, WebP, BMP or TIFF).`,
	RunE: runValidate,
}

// runValidate executes the validate command.
func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	bad := 0
	for i := range cfg.Wallpapers {
		wp := &cfg.Wallpapers[i]
		if err := wallpaper.Check(wp.Path); err != nil {
			cmd.PrintErrf("wallpaper %d (%s): %v\n", i+1, wp.During.String(), err)
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d wallpapers failed validation", bad, len(cfg.Wallpapers))
	}

	hasAny := false
	for i := range cfg.Wallpapers {
		if cfg.Wallpapers[i].During.Any {
			hasAny = true
			break
		}
	}
	if !hasAny {
		cmd.Println("note: no entry with during: any; some instants may have no matching wallpaper")
	}

	cmd.Printf("%d wallpapers OK\n", len(cfg.Wallpapers))
	return nil
}
