package reconcile

import "errors"

var (
	ErrMalformedAmount    = errors.New("malformed amount")
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrUnresolvableKind   = errors.New("unresolvable transaction kind")
	ErrMissingPlayerKey   = errors.New("missing player key")
	ErrNotFound           = errors.New("not found")
	ErrInvalidRange       = errors.New("invalid date range")
	ErrInvalidRules       = errors.New("invalid bonus rules")
)

// Severity of a per-record issue
type Severity string

const (
	SeverityWarning    Severity = "warning"    // record kept, amount zeroed
	SeverityRejected   Severity = "rejected"   // record excluded
	SeverityStructural Severity = "structural" // record excluded, configuration problem
)

// Issue reported in the run summary
type Issue struct {
	OrderID   string   `json:"order_id" bson:"order_id"`
	PlayerKey string   `json:"player_key,omitempty" bson:"player_key,omitempty"`
	Severity  Severity `json:"severity" bson:"severity"`
	Reason    string   `json:"reason" bson:"reason"`
}

// SeverityOf classifies a normalization error
func SeverityOf(err error) Severity {
	switch {
	case errors.Is(err, ErrMalformedAmount):
		return SeverityWarning
	case errors.Is(err, ErrUnresolvableKind):
		return SeverityStructural
	default:
		return SeverityRejected
	}
}
