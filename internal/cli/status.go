package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sunpaper/internal/schedule"
	"github.com/jmylchreest/sunpaper/internal/sun"
)

// statusCmd represents the status command.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current sun position and the matching wallpaper",
	Long: `Status prints the sun's current position and light state for the
configured location, today's solar events, and each configured wallpaper
with a marker on the entry apply would pick right now.`,
	RunE: runStatus,
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	now := time.Now()

	obs, err := sun.Observe(now, cfg.Location.Latitude, cfg.Location.Longitude)
	if err != nil {
		return fmt.Errorf("could not determine solar position: %w", err)
	}

	half := "setting"
	if obs.Morning() {
		half = "rising"
	}
	cmd.Printf("Location:  %.4f, %.4f\n", cfg.Location.Latitude, cfg.Location.Longitude)
	cmd.Printf("Time:      %s\n", now.Format(time.RFC1123))
	cmd.Printf("Elevation: %.2f°\n", obs.Elevation)
	cmd.Printf("Azimuth:   %.2f° (%s)\n", obs.Azimuth, half)
	cmd.Printf("Light:     %s\n\n", obs.Light())

	events := sun.DayEvents(now, cfg.Location.Latitude, cfg.Location.Longitude)
	if len(events) > 0 {
		eventTable := NewTable([]string{"EVENT", "TIME"})
		for _, ev := range events {
			eventTable.AddRow([]string{ev.Name, ev.At.Local().Format("15:04")})
		}
		cmd.Println(eventTable.Render())
	}

	selected, err := schedule.Select(cfg.Wallpapers, obs.Light(), obs.Elevation, obs.Azimuth)
	if err != nil && !errors.Is(err, schedule.ErrNoMatch) {
		return err
	}

	wpTable := NewTable([]string{"", "DURING", "PATH"})
	wpTable.SetMaxWidth(1, 48)
	for i := range cfg.Wallpapers {
		wp := &cfg.Wallpapers[i]
		marker := ""
		if wp == selected {
			marker = "*"
		}
		wpTable.AddRow([]string{marker, wp.During.String(), wp.Path})
	}
	cmd.Println(wpTable.Render())

	if selected == nil {
		cmd.Println("No wallpaper matches right now; add an entry with during: any as a fallback.")
	}
	return nil
}
