// HTTP API - batch and range reconciliation, latest ledger, bonus rules
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/glkeru/loyalty/reconcile/internal/api"
	app "github.com/glkeru/loyalty/reconcile/internal/app"
	otel "github.com/glkeru/loyalty/reconcile/observability/otel"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using environment")
	}
	port := os.Getenv("RECONCILE_PORT")
	if port == "" {
		panic("env RECONCILE_PORT is not set")
	}

	ctx := context.Background()
	shutdownTracer, err := otel.InitTracer(ctx, "reconcile", logger)
	if err != nil {
		panic(err)
	}
	defer shutdownTracer()

	a, err := app.New(ctx, logger)
	if err != nil {
		panic(err)
	}
	defer a.Close()

	// api handlers
	r := api.NewHandler(a.Rules, a.Ledger, logger)
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(r, "reconcile"),
		Addr:         ":" + port,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  30 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", port))

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
