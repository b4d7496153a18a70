package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/NiHaiden/wally/internal/domain"
	"github.com/NiHaiden/wally/internal/scheduler"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	var (
		logger   *zap.Logger
		sched    *scheduler.Scheduler
		settings domain.SettingsStore
	)

	app := fx.New(
		AppOptions,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Populate(&logger, &sched, &settings),
	)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	// SIGHUP re-reads the settings file and re-arms the scheduler; this is
	// the imperative re-arm path for settings edited outside the process.
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	go func() {
		for range reload {
			current, err := settings.Read()
			if err != nil {
				logger.Error("Settings reload failed", zap.Error(err))
				continue
			}
			sched.Disarm()
			if err := sched.Arm(current); err != nil {
				logger.Error("Re-arming scheduler failed", zap.Error(err))
			}
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}
