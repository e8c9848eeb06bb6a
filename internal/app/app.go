package reconcile

import (
	"context"

	db "github.com/glkeru/loyalty/reconcile/internal/db"
	kafka "github.com/glkeru/loyalty/reconcile/internal/external/kafka"
	rabbit "github.com/glkeru/loyalty/reconcile/internal/external/rabbitmq"
	storage "github.com/glkeru/loyalty/reconcile/internal/external/storage"
	interf "github.com/glkeru/loyalty/reconcile/internal/interfaces"
	services "github.com/glkeru/loyalty/reconcile/internal/services"
	"go.uber.org/zap"
)

// App holds the collaborators shared by the binaries
type App struct {
	Rules  interf.RuleStorage
	Ledger *services.LedgerService
	closer []func()
}

// New connects mongo (required) and every optional collaborator whose env is set.
// Missing optional collaborators are logged and skipped.
func New(ctx context.Context, logger *zap.Logger) (*App, error) {
	app := &App{}

	mongo, err := db.NewMongoDB()
	if err != nil {
		return nil, err
	}
	app.closer = append(app.closer, func() { _ = mongo.Close(context.Background()) })
	app.Rules = mongo

	engine, err := services.NewReconcileService(mongo, logger)
	if err != nil {
		app.Close()
		return nil, err
	}

	var source interf.RecordSource
	records, err := db.NewRecordsDB(logger)
	if err != nil {
		logger.Error("record source", zap.Error(err))
	} else {
		app.closer = append(app.closer, records.Close)
		source = records
	}

	var cache interf.LedgerCache
	redis, err := db.NewCacheService()
	if err != nil {
		logger.Error("cache", zap.Error(err))
	} else {
		cache = redis
	}

	var publishers []interf.LedgerPublisher
	if k, err := kafka.NewKafkaLedger("ledger"); err != nil {
		logger.Error("kafka", zap.Error(err))
	} else {
		app.closer = append(app.closer, func() { _ = k.Close() })
		publishers = append(publishers, k)
	}
	if r, err := rabbit.NewRabbitReview(); err != nil {
		logger.Error("rabbitmq", zap.Error(err))
	} else {
		app.closer = append(app.closer, r.Close)
		publishers = append(publishers, r)
	}
	if b, err := storage.NewBucketArtifact(ctx); err != nil {
		logger.Error("bucket", zap.Error(err))
	} else {
		publishers = append(publishers, b)
	}
	if f, err := storage.NewFileArtifact(); err != nil {
		logger.Info("file artifact disabled", zap.Error(err))
	} else {
		publishers = append(publishers, f)
	}

	app.Ledger = services.NewLedgerService(logger, engine, source, mongo, cache, publishers...)
	return app, nil
}

func (a *App) Close() {
	for i := len(a.closer) - 1; i >= 0; i-- {
		a.closer[i]()
	}
}
