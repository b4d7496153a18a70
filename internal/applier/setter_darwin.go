//go:build darwin
// +build darwin

package applier

import (
	"context"
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// DarwinSetter sets the wallpaper on macOS through System Events, which
// covers every desktop (space) at once.
type DarwinSetter struct {
	logger *zap.Logger
}

// NewSetter creates the platform wallpaper setter (macOS implementation)
func NewSetter(logger *zap.Logger) (*DarwinSetter, error) {
	logger.Info("Wallpaper setter initialized", zap.String("desktop", "macos"))
	return &DarwinSetter{logger: logger}, nil
}

// Set applies the image on every desktop via osascript
func (s *DarwinSetter) Set(ctx context.Context, imagePath string) error {
	script := fmt.Sprintf(`tell application "System Events"
		tell every desktop
			set picture to "%s"
		end tell
	end tell`, imagePath)

	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("osascript failed: %w (output: %s)", err, string(output))
	}

	s.logger.Debug("Wallpaper set", zap.String("path", imagePath))
	return nil
}
