package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/NiHaiden/wally/internal/domain"
	"go.uber.org/zap"
)

// Scheduler owns the recurring-timer lifecycle and the rotation algorithm
// that sequences the collaborators: fetch a random image, apply it as the
// desktop wallpaper, persist the current-wallpaper record and report the
// download for attribution.
//
// At most one rotation executes at a time per instance; a trigger that
// overlaps a running rotation is dropped, never queued. At most one
// recurring timer is active at a time; re-arming cancels the previous one.
type Scheduler struct {
	logger   *zap.Logger
	settings domain.SettingsStore
	provider domain.ImageProvider
	applier  domain.WallpaperApplier
	state    domain.WallpaperStateStore
	notifier domain.DownloadNotifier

	// rotating is the reentrancy guard. Ticks are dispatched on their own
	// goroutines, so the check-and-set pair must be atomic.
	rotating atomic.Bool

	mu        sync.Mutex // guards timer handle, observer slot and last error
	ticker    *time.Ticker
	done      chan struct{}
	cadence   time.Duration
	onRotated func(domain.CurrentWallpaper)
	lastErr   *domain.RotationError
}

// New creates a disarmed scheduler over the given collaborators
func New(
	logger *zap.Logger,
	settings domain.SettingsStore,
	provider domain.ImageProvider,
	applier domain.WallpaperApplier,
	state domain.WallpaperStateStore,
	notifier domain.DownloadNotifier,
) *Scheduler {
	return &Scheduler{
		logger:   logger,
		settings: settings,
		provider: provider,
		applier:  applier,
		state:    state,
		notifier: notifier,
	}
}

// Arm starts the recurring rotation timer with the cadence derived from
// the given settings, cancelling any previously active timer first. When
// auto-change is disabled or no API key is configured it is a no-op and
// the scheduler stays disarmed. An invalid interval is returned as a
// configuration error.
func (s *Scheduler) Arm(settings domain.RotationSettings) error {
	if !settings.AutoChange || settings.APIKey == "" {
		s.logger.Debug("Auto-change disabled or API key missing, scheduler stays disarmed")
		return nil
	}

	cadence, err := Cadence(settings.IntervalValue, settings.IntervalUnit)
	if err != nil {
		return err
	}

	s.arm(cadence)
	return nil
}

func (s *Scheduler) arm(cadence time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()

	s.cadence = cadence
	s.ticker = time.NewTicker(cadence)
	s.done = make(chan struct{})
	go s.tickLoop(s.ticker, s.done)

	s.logger.Info("Rotation scheduler armed", zap.Duration("cadence", cadence))
}

// Disarm cancels the recurring timer. It is idempotent and only prevents
// future ticks; a rotation already in flight runs to completion.
func (s *Scheduler) Disarm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
}

func (s *Scheduler) stopTimerLocked() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
	s.cadence = 0
	s.logger.Info("Rotation scheduler disarmed")
}

// Armed reports whether the recurring timer is active
func (s *Scheduler) Armed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticker != nil
}

func (s *Scheduler) tickLoop(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			// Each tick runs on its own goroutine so a rotation slower
			// than the cadence drops later ticks at the guard instead of
			// backlogging them behind the loop.
			go func() {
				if err := s.Rotate(context.Background()); err != nil {
					s.logger.Warn("Scheduled rotation failed", zap.Error(err))
				}
			}()
		}
	}
}

// Rotate executes one complete fetch→apply→persist→notify cycle. Timer
// ticks and manual triggers enter here alike. A call that overlaps a
// still-running rotation returns immediately without touching any
// collaborator. The registered observer is invoked exactly once per
// successful rotation, after the guard has been released.
func (s *Scheduler) Rotate(ctx context.Context) error {
	if !s.rotating.CompareAndSwap(false, true) {
		s.logger.Debug("Rotation already in flight, dropping trigger")
		return nil
	}

	record, err := func() (*domain.CurrentWallpaper, error) {
		defer s.rotating.Store(false)
		return s.rotate(ctx)
	}()
	if err != nil {
		return err
	}

	if record != nil {
		s.notifyRotated(*record)
	}
	return nil
}

// rotate runs the rotation steps with the guard held. It returns the new
// wallpaper record on success and nil when the rotation was skipped.
func (s *Scheduler) rotate(ctx context.Context) (*domain.CurrentWallpaper, error) {
	// Re-validate instead of trusting the arm-time snapshot: a stale timer
	// may fire after the user disabled rotation through a path that never
	// disarmed.
	settings, err := s.settings.Read()
	if err != nil {
		return nil, s.fail(domain.NewConfigurationError(fmt.Errorf("reading settings: %w", err)))
	}
	if !settings.AutoChange || settings.APIKey == "" {
		s.logger.Debug("Rotation disabled at tick time, skipping")
		return nil, nil
	}

	image, err := s.provider.FetchRandom(ctx, settings.CollectionID)
	if err != nil {
		return nil, s.fail(domain.NewProviderError(err))
	}

	localPath, err := s.applier.Apply(ctx, image.URLs.Full, image.ID)
	if err != nil {
		return nil, s.fail(domain.NewApplyError(err))
	}

	// The OS wallpaper is changed at this point. A failed save leaves the
	// persisted record stale until the next successful rotation but does
	// not undo the rotation itself.
	saved := true
	if err := s.state.Save(*image, localPath); err != nil {
		saved = false
		s.fail(domain.NewPersistenceError(err))
		s.logger.Error("Failed to persist current wallpaper", zap.Error(err))
	}

	if err := s.notifier.NotifyDownload(ctx, image.Links.DownloadLocation); err != nil {
		s.logger.Warn("Download attribution failed", zap.Error(err))
	}

	if saved {
		s.clearLastError()
	}

	s.logger.Info("Wallpaper rotated",
		zap.String("id", image.ID),
		zap.String("path", localPath))

	return &domain.CurrentWallpaper{
		Image:     image,
		LocalPath: localPath,
		SetAt:     time.Now().UTC(),
	}, nil
}

// SetOnRotated registers the single rotation-completed callback. Passing
// nil clears the slot. Fan-out to several observers is the caller's
// responsibility.
func (s *Scheduler) SetOnRotated(fn func(domain.CurrentWallpaper)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRotated = fn
}

func (s *Scheduler) notifyRotated(record domain.CurrentWallpaper) {
	s.mu.Lock()
	fn := s.onRotated
	s.mu.Unlock()
	if fn != nil {
		fn(record)
	}
}

// LastError returns the most recent rotation failure, or nil after a
// fully successful rotation
func (s *Scheduler) LastError() *domain.RotationError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Scheduler) fail(err *domain.RotationError) error {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	return err
}

func (s *Scheduler) clearLastError() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
}
