package reconcile

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the timestamp format of the bank transaction table
const TimeLayout = "2006-01-02 15:04:05"

// DateLayout is used for run ranges
const DateLayout = "2006-01-02"

// Direction of money for a player
type Direction int

const (
	Inflow Direction = iota + 1
	Outflow
)

func (d Direction) String() string {
	switch d {
	case Inflow:
		return "inflow"
	case Outflow:
		return "outflow"
	}
	return "unknown"
}

// Kind - closed set of transaction kinds the console reports
type Kind string

const (
	KindDeposit          Kind = "DEPOSIT"
	KindManualDeposit    Kind = "MANUAL_DEPOSIT"
	KindPendingDeposit   Kind = "PENDING_DEPOSIT"
	KindAdjustmentAdd    Kind = "ADJUSTMENTADD"
	KindCashIn           Kind = "CASH_IN"
	KindWithdrawal       Kind = "WITHDRAWAL"
	KindManualWithdrawal Kind = "MANUAL_WITHDRAWAL"
	KindAdjustmentDeduct Kind = "ADJUSTMENTDEDUCT"
	KindCashOut          Kind = "CASH_OUT"
)

var kindDirections = map[Kind]Direction{
	KindDeposit:          Inflow,
	KindManualDeposit:    Inflow,
	KindPendingDeposit:   Inflow,
	KindAdjustmentAdd:    Inflow,
	KindCashIn:           Inflow,
	KindWithdrawal:       Outflow,
	KindManualWithdrawal: Outflow,
	KindAdjustmentDeduct: Outflow,
	KindCashOut:          Outflow,
}

// alternative spellings seen in exports
var kindAliases = map[string]Kind{
	"ADJUSTMENT_ADD":    KindAdjustmentAdd,
	"ADJUSTMENT_DEDUCT": KindAdjustmentDeduct,
	"CASHIN":            KindCashIn,
	"CASHOUT":           KindCashOut,
}

// ParseKind maps a free-text label to a Kind. ok is false for labels outside the catalogue.
func ParseKind(label string) (kind Kind, ok bool) {
	s := strings.ToUpper(strings.TrimSpace(label))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	if _, found := kindDirections[Kind(s)]; found {
		return Kind(s), true
	}
	if k, found := kindAliases[s]; found {
		return k, true
	}
	return "", false
}

// Direction of the kind; zero for kinds outside the catalogue
func (k Kind) Direction() Direction {
	return kindDirections[k]
}

// Kinds returns the catalogue for the given direction
func Kinds(d Direction) []Kind {
	var kinds []Kind
	for _, k := range []Kind{
		KindDeposit, KindManualDeposit, KindPendingDeposit, KindAdjustmentAdd, KindCashIn,
		KindWithdrawal, KindManualWithdrawal, KindAdjustmentDeduct, KindCashOut,
	} {
		if k.Direction() == d {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// RawRecord - one scraped row, every field as text
type RawRecord struct {
	OrderID   string `json:"order_id"`
	PlayerKey string `json:"player_key"`
	Gateway   string `json:"gateway,omitempty"`
	Amount    string `json:"amount"`
	Timestamp string `json:"timestamp"`
	Kind      string `json:"kind"`
}

// TransactionRecord - validated record, immutable after normalization
type TransactionRecord struct {
	OrderID   string
	PlayerKey string
	Gateway   string
	Amount    decimal.Decimal
	Timestamp time.Time
	Kind      Kind
	Direction Direction
	Seq       int // arrival position in the batch
}

func (t TransactionRecord) IsInflow() bool {
	return t.Direction == Inflow
}

func (t TransactionRecord) IsOutflow() bool {
	return t.Direction == Outflow
}
