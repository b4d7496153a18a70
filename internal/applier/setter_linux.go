//go:build linux
// +build linux

package applier

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

// LinuxSetter sets the wallpaper on KDE Plasma (over D-Bus) or GNOME
// (via gsettings). The desktop environment is detected once at
// construction.
type LinuxSetter struct {
	logger  *zap.Logger
	desktop string // "kde" or "gnome"
}

// NewSetter creates the platform wallpaper setter (Linux implementation)
func NewSetter(logger *zap.Logger) (*LinuxSetter, error) {
	switch {
	case isKDE():
		logger.Info("Wallpaper setter initialized", zap.String("desktop", "kde"))
		return &LinuxSetter{logger: logger, desktop: "kde"}, nil
	case isGNOME():
		logger.Info("Wallpaper setter initialized", zap.String("desktop", "gnome"))
		return &LinuxSetter{logger: logger, desktop: "gnome"}, nil
	}
	return nil, fmt.Errorf("unsupported Linux desktop environment (KDE Plasma and GNOME are supported)")
}

func isKDE() bool {
	if os.Getenv("KDE_FULL_SESSION") != "" {
		return true
	}
	return strings.Contains(strings.ToLower(os.Getenv("XDG_CURRENT_DESKTOP")), "kde")
}

func isGNOME() bool {
	if os.Getenv("GNOME_DESKTOP_SESSION_ID") != "" {
		return true
	}
	return strings.Contains(strings.ToLower(os.Getenv("XDG_CURRENT_DESKTOP")), "gnome")
}

// Set applies the image on every desktop of the detected environment
func (s *LinuxSetter) Set(ctx context.Context, imagePath string) error {
	s.logger.Debug("Setting wallpaper",
		zap.String("desktop", s.desktop),
		zap.String("path", imagePath))

	if s.desktop == "kde" {
		return s.setKDE(ctx, imagePath)
	}
	return s.setGNOME(ctx, imagePath)
}

// setKDE drives plasmashell over the session bus. Plasma has no flat
// "set wallpaper" call, so the image is pushed through a shell script
// evaluated against every desktop containment.
func (s *LinuxSetter) setKDE(ctx context.Context, imagePath string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("session bus connection failed: %w", err)
	}

	script := fmt.Sprintf(`desktops().forEach(d => {
		d.currentConfigGroup = ['Wallpaper','org.kde.image','General'];
		d.writeConfig('Image','file://%s');
		d.reloadConfig();
	})`, imagePath)

	obj := conn.Object("org.kde.plasmashell", "/PlasmaShell")
	if call := obj.CallWithContext(ctx, "org.kde.PlasmaShell.evaluateScript", 0, script); call.Err != nil {
		return fmt.Errorf("plasmashell rejected wallpaper script: %w", call.Err)
	}
	return nil
}

// setGNOME writes both picture-uri keys so light and dark themes pick up
// the new image. The dark key is best-effort; older GNOME versions do
// not have it.
func (s *LinuxSetter) setGNOME(ctx context.Context, imagePath string) error {
	uri := "file://" + imagePath

	cmd := exec.CommandContext(ctx, "gsettings",
		"set", "org.gnome.desktop.background", "picture-uri", uri)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("gsettings failed: %w (output: %s)", err, string(output))
	}

	dark := exec.CommandContext(ctx, "gsettings",
		"set", "org.gnome.desktop.background", "picture-uri-dark", uri)
	if output, err := dark.CombinedOutput(); err != nil {
		s.logger.Debug("picture-uri-dark not applied", zap.ByteString("output", output), zap.Error(err))
	}
	return nil
}
