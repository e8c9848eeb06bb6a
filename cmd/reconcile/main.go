// Job - one-shot reconciliation of the scraped records
// usage: reconcile <from YYYY-MM-DD> [<to YYYY-MM-DD>]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/glkeru/loyalty/reconcile/internal/app"
	models "github.com/glkeru/loyalty/reconcile/internal/models"
	services "github.com/glkeru/loyalty/reconcile/internal/services"
	otel "github.com/glkeru/loyalty/reconcile/observability/otel"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		return fmt.Errorf("usage: %s <from YYYY-MM-DD> [<to YYYY-MM-DD>]", os.Args[0])
	}
	from, err := time.Parse(models.DateLayout, os.Args[1])
	if err != nil {
		return fmt.Errorf("from: %w", models.ErrInvalidRange)
	}
	to := from
	if len(os.Args) == 3 {
		if to, err = time.Parse(models.DateLayout, os.Args[2]); err != nil {
			return fmt.Errorf("to: %w", models.ErrInvalidRange)
		}
	}

	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := otel.InitTracer(ctx, "reconcile-job", logger)
	if err != nil {
		return err
	}
	defer shutdownTracer()

	a, err := app.New(ctx, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ledger, err := a.Ledger.RunRange(ctx, from, to)
	if err != nil {
		return err
	}
	return services.WriteSummary(os.Stdout, ledger)
}
