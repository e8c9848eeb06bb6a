package reconcile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	interf "github.com/glkeru/loyalty/reconcile/internal/interfaces"
	models "github.com/glkeru/loyalty/reconcile/internal/models"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("reconcile")

type ReconcileService struct {
	rules   models.BonusRules
	logger  *zap.Logger
	workers int
	strict  bool
}

func NewReconcileService(db interf.RuleStorage, logger *zap.Logger) (service *ReconcileService, err error) {
	rules, err := db.GetActiveRules(context.Background())
	switch {
	case errors.Is(err, models.ErrNotFound):
		logger.Info("no active bonus rules, using defaults")
		rules = models.DefaultRules()
	case err != nil:
		return nil, err
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	workers := 4
	if env := os.Getenv("RECONCILE_WORKERS"); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			workers = n
		}
	}
	strict, _ := strconv.ParseBool(os.Getenv("RECONCILE_STRICT"))

	return &ReconcileService{rules: rules, logger: logger, workers: workers, strict: strict}, nil
}

func (s *ReconcileService) Rules() models.BonusRules {
	return s.rules
}

func (s *ReconcileService) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	s.workers = n
}

// SetStrict makes unknown transaction kinds fail the run
func (s *ReconcileService) SetStrict(strict bool) {
	s.strict = strict
}

// Reconcile turns a batch of scraped rows into a ranked bonus ledger
func (s *ReconcileService) Reconcile(ctx context.Context, raws []models.RawRecord, intake Intake) (ledger models.Ledger, err error) {
	ctx, span := tracer.Start(ctx, "Reconcile")
	defer span.End()
	started := time.Now()
	defer func() {
		reconcileRunDuration.Observe(time.Since(started).Seconds())
		if err != nil {
			reconcileRunsTotal.WithLabelValues("error").Inc()
			span.RecordError(err)
			return
		}
		reconcileRunsTotal.WithLabelValues("ok").Inc()
	}()

	filtered, stats := intake.Filter(raws)
	records, issues := s.normalize(filtered)

	if s.strict {
		for _, is := range issues {
			if is.Severity == models.SeverityStructural {
				return models.Ledger{}, fmt.Errorf("order %q: %w", is.OrderID, models.ErrUnresolvableKind)
			}
		}
	}

	groups := Group(records)
	entries, err := s.evaluate(ctx, groups)
	if err != nil {
		return models.Ledger{}, err
	}
	ranked := Rank(entries)

	summary := Summarize(records, ranked, issues, stats, len(raws))
	observeSummary(summary)
	span.SetAttributes(
		attribute.Int("records", len(records)),
		attribute.Int("players", summary.UniquePlayers),
		attribute.Int64("bonus", summary.TotalBonus),
	)

	ledger = models.Ledger{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Rows:        Rows(ranked),
		Summary:     summary,
	}
	if !intake.From.IsZero() {
		ledger.From = intake.From.Format(models.DateLayout)
	}
	if !intake.To.IsZero() {
		ledger.To = intake.To.Format(models.DateLayout)
	}

	s.logger.Info("reconciliation finished",
		zap.String("run", ledger.RunID),
		zap.Int("players", summary.UniquePlayers),
		zap.Int("eligible", summary.EligiblePlayers),
		zap.Int64("bonus", summary.TotalBonus),
		zap.Int("issues", len(issues)),
	)
	return ledger, nil
}

func (s *ReconcileService) normalize(raws []models.RawRecord) ([]models.TransactionRecord, []models.Issue) {
	records := make([]models.TransactionRecord, 0, len(raws))
	var issues []models.Issue

	for i, raw := range raws {
		rec, warn, err := Normalize(raw, i)
		if err != nil {
			is := models.Issue{OrderID: raw.OrderID, PlayerKey: raw.PlayerKey, Severity: models.SeverityOf(err), Reason: err.Error()}
			issues = append(issues, is)
			if is.Severity == models.SeverityStructural {
				s.logger.Error("record excluded", zap.String("order", raw.OrderID), zap.String("kind", raw.Kind), zap.Error(err))
			} else {
				s.logger.Info("record rejected", zap.String("order", raw.OrderID), zap.Error(err))
			}
			continue
		}
		if warn != nil {
			issues = append(issues, models.Issue{OrderID: raw.OrderID, PlayerKey: rec.PlayerKey, Severity: models.SeverityWarning, Reason: warn.Error()})
			s.logger.Warn("amount set to zero", zap.String("order", raw.OrderID), zap.String("player", rec.PlayerKey), zap.Error(warn))
		}
		records = append(records, rec)
	}
	return records, issues
}

// evaluate players concurrently, entries keep the order of groups
func (s *ReconcileService) evaluate(ctx context.Context, groups []PlayerGroup) ([]models.LedgerEntry, error) {
	_, span := tracer.Start(ctx, "evaluate", trace.WithAttributes(attribute.Int("players", len(groups))))
	defer span.End()

	entries := make([]models.LedgerEntry, len(groups))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, group := range groups {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i] = Evaluate(group, s.rules)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
