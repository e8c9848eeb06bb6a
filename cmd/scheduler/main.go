// Job - daily reconciliation of the previous day
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/glkeru/loyalty/reconcile/internal/app"
	otel "github.com/glkeru/loyalty/reconcile/observability/otel"
	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using environment")
	}
	hour, minute, err := scheduleAt(os.Getenv("RECONCILE_SCHEDULE_AT"))
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracer, err := otel.InitTracer(ctx, "reconcile-scheduler", logger)
	if err != nil {
		panic(err)
	}
	defer shutdownTracer()

	a, err := app.New(ctx, logger)
	if err != nil {
		panic(err)
	}
	defer a.Close()

	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		panic(err)
	}
	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(func() {
			day := time.Now().UTC().AddDate(0, 0, -1)
			ledger, err := a.Ledger.RunRange(ctx, day, day)
			if err != nil {
				logger.Error("scheduled run", zap.Time("day", day), zap.Error(err))
				return
			}
			logger.Info("scheduled run",
				zap.String("run", ledger.RunID),
				zap.Int("players", ledger.Summary.UniquePlayers),
				zap.Int64("bonus", ledger.Summary.TotalBonus))
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		panic(err)
	}
	s.Start()
	logger.Info("scheduler started", zap.Uint("hour", hour), zap.Uint("minute", minute))

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	cancel()
	if err := s.Shutdown(); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

// scheduleAt parses HH:MM, empty means 02:00
func scheduleAt(value string) (hour uint, minute uint, err error) {
	if value == "" {
		return 2, 0, nil
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, fmt.Errorf("env RECONCILE_SCHEDULE_AT: %w", err)
	}
	return uint(t.Hour()), uint(t.Minute()), nil
}
