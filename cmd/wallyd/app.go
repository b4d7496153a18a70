package main

import (
	"context"

	"github.com/NiHaiden/wally/internal/applier"
	"github.com/NiHaiden/wally/internal/domain"
	"github.com/NiHaiden/wally/internal/scheduler"
	"github.com/NiHaiden/wally/internal/screen"
	"github.com/NiHaiden/wally/internal/store"
	"github.com/NiHaiden/wally/internal/unsplash"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// AppOptions is the daemon's full dependency graph
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		screen.Detect,
		newSettingsStore,
		newStateStore,
		unsplash.NewClient,
		newImageProvider,
		newDownloadNotifier,
		newWallpaperApplier,
		scheduler.New,
	),
	fx.Invoke(registerHooks),
)

// newLogger creates the process-wide zap logger
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func newSettingsStore(logger *zap.Logger) (domain.SettingsStore, error) {
	dir, err := store.DefaultConfigDir()
	if err != nil {
		return nil, err
	}
	return store.NewSettingsStore(logger, dir), nil
}

func newStateStore(logger *zap.Logger) (domain.WallpaperStateStore, error) {
	dir, err := store.DefaultConfigDir()
	if err != nil {
		return nil, err
	}
	return store.NewWallpaperStateStore(logger, dir), nil
}

func newImageProvider(client *unsplash.Client) domain.ImageProvider {
	return client
}

func newDownloadNotifier(client *unsplash.Client) domain.DownloadNotifier {
	return client
}

func newWallpaperApplier(logger *zap.Logger) (domain.WallpaperApplier, error) {
	setter, err := applier.NewSetter(logger)
	if err != nil {
		return nil, err
	}
	dir, err := applier.DefaultDir()
	if err != nil {
		return nil, err
	}
	return applier.New(logger, setter, dir), nil
}

// registerHooks arms the scheduler from the persisted settings on startup
// and releases the timer on shutdown
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	sched *scheduler.Scheduler,
	settings domain.SettingsStore,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sched.SetOnRotated(func(record domain.CurrentWallpaper) {
				logger.Info("Rotation completed",
					zap.String("id", record.Image.ID),
					zap.String("author", record.Image.User.Username),
					zap.String("path", record.LocalPath))
			})

			current, err := settings.Read()
			if err != nil {
				return err
			}
			if err := sched.Arm(current); err != nil {
				return err
			}
			if !sched.Armed() {
				logger.Info("Auto-change disabled, waiting for settings change")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sched.Disarm()
			logger.Info("Shutting down")
			return nil
		},
	})
}
