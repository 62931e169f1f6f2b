package desktop

import (
	"context"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/hashicorp/go-hclog"
)

const (
	plasmaService   = "org.kde.plasmashell"
	plasmaPath      = "/PlasmaShell"
	plasmaInterface = "org.kde.PlasmaShell"
)

// plasmaScript sets the image wallpaper plugin on every desktop containment.
const plasmaScript = `
var allDesktops = desktops();
for (i = 0; i < allDesktops.length; i++) {
	d = allDesktops[i];
	d.wallpaperPlugin = "org.kde.image";
	d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
	d.writeConfig("Image", "file://%s");
}
`

// Plasma applies wallpapers to KDE Plasma by evaluating a shell script over
// the session D-Bus.
type Plasma struct {
	logger hclog.Logger

	// connect is swappable for tests.
	connect func() (*dbus.Conn, error)
}

// NewPlasma creates the KDE Plasma backend.
func NewPlasma(logger hclog.Logger) *Plasma {
	return &Plasma{logger: logger, connect: dbus.SessionBus}
}

// Name implements Setter.
func (p *Plasma) Name() string { return "kde" }

// Set implements Setter.
func (p *Plasma) Set(ctx context.Context, path string) error {
	conn, err := p.connect()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}

	script := fmt.Sprintf(plasmaScript, escapeScriptPath(path))
	p.logger.Debug("evaluating plasma shell script", "path", path)

	obj := conn.Object(plasmaService, plasmaPath)
	call := obj.CallWithContext(ctx, plasmaInterface+".evaluateScript", 0, script)
	if call.Err != nil {
		return fmt.Errorf("plasma shell rejected wallpaper script: %w", call.Err)
	}
	return nil
}

// escapeScriptPath neutralises characters that would break out of the
// double-quoted string literal inside the desktop script.
func escapeScriptPath(path string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return r.Replace(path)
}
