//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

package applier

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// StubSetter is a placeholder for unsupported platforms (BSD, etc.)
type StubSetter struct {
	logger *zap.Logger
}

// NewSetter creates a stub setter for unsupported platforms
func NewSetter(logger *zap.Logger) (*StubSetter, error) {
	logger.Warn("Wallpaper setting is not supported on this platform")
	return &StubSetter{logger: logger}, nil
}

// Set returns an error indicating the platform is not supported
func (s *StubSetter) Set(ctx context.Context, imagePath string) error {
	return fmt.Errorf("wallpaper setting not supported on this platform")
}
