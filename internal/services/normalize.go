package reconcile

import (
	"fmt"
	"strings"
	"time"

	models "github.com/glkeru/loyalty/reconcile/internal/models"
	"github.com/shopspring/decimal"
)

// currency marks the consoles print around amounts
var currencyMarks = []string{"Rs.", "Rs", "NPR", "INR", "Rp", "$", "₹"}

// Normalize validates one scraped row.
// err rejects the record. warn reports a malformed amount: the record is kept with a zero amount.
func Normalize(raw models.RawRecord, seq int) (rec models.TransactionRecord, warn error, err error) {
	player := strings.TrimSpace(raw.PlayerKey)
	if player == "" {
		return rec, nil, fmt.Errorf("order %q: %w", raw.OrderID, models.ErrMissingPlayerKey)
	}

	ts, err := ParseTimestamp(raw.Timestamp)
	if err != nil {
		return rec, nil, fmt.Errorf("order %q: %w", raw.OrderID, err)
	}

	kind, ok := models.ParseKind(raw.Kind)
	if !ok {
		return rec, nil, fmt.Errorf("order %q: %w: %q", raw.OrderID, models.ErrUnresolvableKind, raw.Kind)
	}

	amount, aerr := ParseAmount(raw.Amount)
	if aerr != nil {
		warn = fmt.Errorf("order %q: %w", raw.OrderID, aerr)
		amount = decimal.Zero
	}

	return models.TransactionRecord{
		OrderID:   strings.TrimSpace(raw.OrderID),
		PlayerKey: player,
		Gateway:   strings.TrimSpace(raw.Gateway),
		Amount:    amount,
		Timestamp: ts,
		Kind:      kind,
		Direction: kind.Direction(),
		Seq:       seq,
	}, warn, nil
}

// ParseAmount accepts thousands separators and a currency mark before or after the number
func ParseAmount(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	for _, mark := range currencyMarks {
		s = strings.TrimSpace(strings.TrimPrefix(s, mark))
		s = strings.TrimSpace(strings.TrimSuffix(s, mark))
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", models.ErrMalformedAmount)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", models.ErrMalformedAmount, text)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative %q", models.ErrMalformedAmount, text)
	}
	return amount, nil
}

// ParseTimestamp reads the console layout, the run has a single timezone so UTC is used
func ParseTimestamp(text string) (time.Time, error) {
	ts, err := time.ParseInLocation(models.TimeLayout, strings.TrimSpace(text), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", models.ErrMalformedTimestamp, text)
	}
	return ts, nil
}
