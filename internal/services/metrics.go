package reconcile

import (
	models "github.com/glkeru/loyalty/reconcile/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcileRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconcile_runs_total",
			Help: "Reconciliation runs",
		},
		[]string{"result"},
	)

	reconcileRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconcile_records_total",
			Help: "Records seen by reconciliation, by outcome",
		},
		[]string{"outcome"},
	)

	reconcileBonusTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reconcile_bonus_total",
			Help: "Bonus awarded in ledgers",
		},
	)

	reconcileRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reconcile_run_duration_seconds",
			Help:    "Reconciliation run duration",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func observeSummary(s models.RunSummary) {
	reconcileRecordsTotal.WithLabelValues("accepted").Add(float64(s.Accepted))
	reconcileRecordsTotal.WithLabelValues("warning").Add(float64(s.Warnings))
	reconcileRecordsTotal.WithLabelValues("rejected").Add(float64(s.Rejected))
	reconcileRecordsTotal.WithLabelValues("structural").Add(float64(s.Structural))
	reconcileRecordsTotal.WithLabelValues("duplicate").Add(float64(s.Duplicates))
	reconcileRecordsTotal.WithLabelValues("out_of_range").Add(float64(s.OutOfRange))
	reconcileRecordsTotal.WithLabelValues("skipped").Add(float64(s.Skipped))
	reconcileBonusTotal.Add(float64(s.TotalBonus))
}
