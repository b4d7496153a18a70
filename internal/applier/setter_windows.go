//go:build windows
// +build windows

package applier

import (
	"context"
	"fmt"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

const (
	_spiSetDeskWallpaper = 0x0014
	_spifUpdateIniFile   = 0x01
	_spifSendChange      = 0x02
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
)

// WindowsSetter sets the wallpaper through the SystemParametersInfoW
// user32 call.
type WindowsSetter struct {
	logger *zap.Logger
}

// NewSetter creates the platform wallpaper setter (Windows implementation)
func NewSetter(logger *zap.Logger) (*WindowsSetter, error) {
	logger.Info("Wallpaper setter initialized", zap.String("desktop", "windows"))
	return &WindowsSetter{logger: logger}, nil
}

// Set applies the image as the desktop wallpaper and persists it across
// sessions via the user profile.
func (s *WindowsSetter) Set(ctx context.Context, imagePath string) error {
	pathPtr, err := windows.UTF16PtrFromString(imagePath)
	if err != nil {
		return fmt.Errorf("invalid wallpaper path: %w", err)
	}

	ret, _, callErr := procSystemParametersInfoW.Call(
		_spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(pathPtr)),
		_spifUpdateIniFile|_spifSendChange,
	)
	if ret == 0 {
		return fmt.Errorf("SystemParametersInfoW failed: %w", callErr)
	}

	s.logger.Debug("Wallpaper set", zap.String("path", imagePath))
	return nil
}
