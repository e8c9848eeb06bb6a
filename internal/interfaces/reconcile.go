package reconcile

import (
	"context"
	"time"

	models "github.com/glkeru/loyalty/reconcile/internal/models"
)

//go:generate mockgen -destination=./../services/mock_reconcile_test.go -package=reconcile . RuleStorage,RecordSource,LedgerStorage,LedgerCache,LedgerPublisher
//go:generate mockgen -destination=./../api/mock_reconcile_test.go -package=reconcile . RuleStorage,RecordSource,LedgerStorage,LedgerCache,LedgerPublisher

type RuleStorage interface {
	GetActiveRules(ctx context.Context) (models.BonusRules, error)
	GetAllRules(ctx context.Context) ([]models.BonusRules, error)
	SaveRules(ctx context.Context, rules models.BonusRules) error
}

// RecordSource - scraped bank transactions for a date range
type RecordSource interface {
	GetRecords(ctx context.Context, from time.Time, to time.Time) ([]models.RawRecord, error)
}

// LedgerStorage keeps only the latest snapshot
type LedgerStorage interface {
	SaveLedger(ctx context.Context, ledger models.Ledger) error
	GetLedger(ctx context.Context) (models.Ledger, error)
}

type LedgerCache interface {
	GetLedger(ctx context.Context) (models.Ledger, error)
	SetLedger(ctx context.Context, ledger models.Ledger) error
	InvalidateLedger(ctx context.Context) error
}

// LedgerPublisher hands a finished ledger to payout review
type LedgerPublisher interface {
	Name() string
	PublishLedger(ctx context.Context, ledger models.Ledger) error
}
