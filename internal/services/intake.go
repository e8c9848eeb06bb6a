package reconcile

import (
	"strings"
	"time"

	models "github.com/glkeru/loyalty/reconcile/internal/models"
)

// summary rows the console appends to every table page
var summaryRowPrefixes = []string{"Page Summary", "Total Summary"}

// Intake - filter applied to batches coming from our own scraper
type Intake struct {
	From   time.Time // inclusive date, zero means unbounded
	To     time.Time // inclusive date, zero means unbounded
	Dedupe bool
}

type IntakeStats struct {
	Duplicates int
	OutOfRange int
	Skipped    int
}

func NewIntake(from, to time.Time) (Intake, error) {
	in := Intake{From: day(from), To: day(to), Dedupe: true}
	if !from.IsZero() && !to.IsZero() && in.To.Before(in.From) {
		return Intake{}, models.ErrInvalidRange
	}
	return in, nil
}

// Filter keeps rows in range, first occurrence of each order id.
// Rows with an unreadable timestamp pass through for the normalizer to reject.
func (in Intake) Filter(raws []models.RawRecord) ([]models.RawRecord, IntakeStats) {
	var stats IntakeStats
	seen := make(map[string]struct{})
	kept := make([]models.RawRecord, 0, len(raws))

	for _, raw := range raws {
		order := strings.TrimSpace(raw.OrderID)
		if isSummaryRow(order) {
			stats.Skipped++
			continue
		}
		if !in.inRange(raw.Timestamp) {
			stats.OutOfRange++
			continue
		}
		if in.Dedupe && order != "" {
			if _, ok := seen[order]; ok {
				stats.Duplicates++
				continue
			}
			seen[order] = struct{}{}
		}
		kept = append(kept, raw)
	}
	return kept, stats
}

func (in Intake) inRange(timestamp string) bool {
	if in.From.IsZero() && in.To.IsZero() {
		return true
	}
	ts, err := ParseTimestamp(timestamp)
	if err != nil {
		return true
	}
	d := day(ts)
	if !in.From.IsZero() && d.Before(in.From) {
		return false
	}
	if !in.To.IsZero() && d.After(in.To) {
		return false
	}
	return true
}

func isSummaryRow(order string) bool {
	for _, p := range summaryRowPrefixes {
		if strings.HasPrefix(order, p) {
			return true
		}
	}
	return false
}

func day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
