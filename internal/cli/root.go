// Package cli provides the command-line interface for sunpaper.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/sunpaper/internal/version"
)

var (
	// Global flags shared by every command.
	flagConfig  string
	flagVerbose bool
	flagQuiet   bool

	// rootCmd represents the base command. Run without a subcommand it
	// behaves like "sunpaper apply".
	rootCmd = &cobra.Command{
		Use:   "sunpaper",
		Short: "Set the desktop wallpaper from the sun's position",
		Long: `Sunpaper picks a desktop wallpaper from the sun's current position at a
configured location. The solar elevation is classified into one of eight
light states (dawn and dusk twilight bands, day, night) and matched against
per-wallpaper conditions; the first matching wallpaper is applied.`,
		Version:      version.Short(),
		SilenceUsage: true,
		RunE:         runApply,
	}
)

// NewRootCmd returns the fully wired root command. Called by main.main().
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(validateCmd)
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&flagConfig, "config", "c", "", "config file (default $XDG_CONFIG_HOME/sunpaper/config.yaml)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")
}

// newLogger builds the application logger honouring the verbosity flags.
// Output is coloured only when attached to a terminal.
func newLogger() hclog.Logger {
	level := hclog.Info
	if flagVerbose {
		level = hclog.Debug
	}
	if flagQuiet {
		level = hclog.Error
	}

	color := hclog.ColorOff
	if term.IsTerminal(int(os.Stderr.Fd())) {
		color = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "sunpaper",
		Level:  level,
		Color:  color,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}
