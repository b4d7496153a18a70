package screen

import (
	"github.com/kbinani/screenshot"
	"github.com/NiHaiden/wally/internal/domain"
	"go.uber.org/zap"
)

// Detect probes the primary display resolution at startup. Headless
// sessions fall back to 1920x1080 so image sizing still works.
func Detect(logger *zap.Logger) *domain.ScreenResolution {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		logger.Warn("No active displays detected, falling back to 1920x1080")
		return &domain.ScreenResolution{Width: 1920, Height: 1080}
	}

	// Primary monitor is index 0.
	bounds := screenshot.GetDisplayBounds(0)
	res := &domain.ScreenResolution{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	logger.Info("Screen resolution detected",
		zap.Int("width", res.Width),
		zap.Int("height", res.Height))

	return res
}
