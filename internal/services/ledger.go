package reconcile

import (
	"context"
	"fmt"
	"time"

	interf "github.com/glkeru/loyalty/reconcile/internal/interfaces"
	models "github.com/glkeru/loyalty/reconcile/internal/models"
	"go.uber.org/zap"
)

type LedgerService struct {
	logger     *zap.Logger
	engine     *ReconcileService
	source     interf.RecordSource
	db         interf.LedgerStorage
	cache      interf.LedgerCache
	publishers []interf.LedgerPublisher
}

func NewLedgerService(logger *zap.Logger, engine *ReconcileService, source interf.RecordSource, db interf.LedgerStorage, cache interf.LedgerCache, publishers ...interf.LedgerPublisher) *LedgerService {
	return &LedgerService{logger, engine, source, db, cache, publishers}
}

// RunRange reconciles everything the scraper stored for [from, to]
func (l *LedgerService) RunRange(ctx context.Context, from time.Time, to time.Time) (models.Ledger, error) {
	if from.IsZero() || to.IsZero() {
		return models.Ledger{}, models.ErrInvalidRange
	}
	intake, err := NewIntake(from, to)
	if err != nil {
		return models.Ledger{}, err
	}
	if l.source == nil {
		return models.Ledger{}, fmt.Errorf("record source is not configured")
	}
	raws, err := l.source.GetRecords(ctx, intake.From, intake.To)
	if err != nil {
		return models.Ledger{}, fmt.Errorf("get records: %w", err)
	}
	l.logger.Info("records loaded",
		zap.String("from", intake.From.Format(models.DateLayout)),
		zap.String("to", intake.To.Format(models.DateLayout)),
		zap.Int("count", len(raws)))

	return l.ReconcileBatch(ctx, raws, intake)
}

// ReconcileBatch reconciles a batch supplied by the caller and stores the result
func (l *LedgerService) ReconcileBatch(ctx context.Context, raws []models.RawRecord, intake Intake) (models.Ledger, error) {
	ledger, err := l.engine.Reconcile(ctx, raws, intake)
	if err != nil {
		return models.Ledger{}, err
	}
	if err := l.Store(ctx, ledger); err != nil {
		return ledger, err
	}
	return ledger, nil
}

// Store replaces the snapshot and hands the ledger to the publishers.
// Publisher and cache failures are only logged.
func (l *LedgerService) Store(ctx context.Context, ledger models.Ledger) error {
	if l.db != nil {
		if err := l.db.SaveLedger(ctx, ledger); err != nil {
			return fmt.Errorf("save ledger: %w", err)
		}
	}
	if l.cache != nil {
		if err := l.cache.SetLedger(ctx, ledger); err != nil {
			l.logger.Error("cache ledger", zap.Error(err))
			_ = l.cache.InvalidateLedger(ctx)
		}
	}
	for _, p := range l.publishers {
		if err := p.PublishLedger(ctx, ledger); err != nil {
			l.logger.Error("publish ledger",
				zap.String("publisher", p.Name()),
				zap.String("run", ledger.RunID),
				zap.Error(err))
		}
	}
	return nil
}

// Latest returns the last stored ledger
func (l *LedgerService) Latest(ctx context.Context) (models.Ledger, error) {
	if l.cache != nil {
		ledger, err := l.cache.GetLedger(ctx)
		if err == nil {
			return ledger, nil
		}
	}
	if l.db == nil {
		return models.Ledger{}, models.ErrNotFound
	}
	ledger, err := l.db.GetLedger(ctx)
	if err != nil {
		return models.Ledger{}, err
	}
	if l.cache != nil {
		_ = l.cache.SetLedger(ctx, ledger)
	}
	return ledger, nil
}

func (l *LedgerService) Log(err error) {
	l.logger.Error(err.Error())
}

// WithEngine returns a copy reconciling with another engine, collaborators are shared
func (l *LedgerService) WithEngine(engine *ReconcileService) *LedgerService {
	c := *l
	c.engine = engine
	return &c
}
