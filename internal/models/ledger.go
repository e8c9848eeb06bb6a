package reconcile

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlayerAggregate - running totals of one player
type PlayerAggregate struct {
	PlayerKey       string
	TotalIn         decimal.Decimal
	TotalOut        decimal.Decimal
	DepositCount    int
	WithdrawalCount int
}

// Net win/loss of the house against the player
func (a PlayerAggregate) Net() decimal.Decimal {
	return a.TotalIn.Sub(a.TotalOut)
}

// TotalAmount - money moved in both directions
func (a PlayerAggregate) TotalAmount() decimal.Decimal {
	return a.TotalIn.Add(a.TotalOut)
}

type BonusBreakdown struct {
	CountTierBonus  int64
	AmountTierBonus int64
	WindowedBonus   int64
	TotalBonus      int64
	Turnover        int64
}

// LedgerEntry - result for one player before serialization
type LedgerEntry struct {
	Aggregate PlayerAggregate
	Bonus     BonusBreakdown
	Eligible  bool // deposit/withdrawal window matched
}

// LedgerRow - serialized ledger line for payout review
type LedgerRow struct {
	PlayerKey       string `json:"player_key" bson:"player_key"`
	TotalAmount     string `json:"total_amount" bson:"total_amount"`
	TotalIn         string `json:"total_in" bson:"total_in"`
	DepositCount    int    `json:"deposit_count" bson:"deposit_count"`
	TotalOut        string `json:"total_out" bson:"total_out"`
	WithdrawalCount int    `json:"withdrawal_count" bson:"withdrawal_count"`
	Net             string `json:"net" bson:"net"`
	WindowedBonus   int64  `json:"windowed_bonus" bson:"windowed_bonus"`
	AmountTierBonus int64  `json:"amount_tier_bonus" bson:"amount_tier_bonus"`
	CountTierBonus  int64  `json:"count_tier_bonus" bson:"count_tier_bonus"`
	TotalBonus      int64  `json:"total_bonus" bson:"total_bonus"`
	Turnover        int64  `json:"turnover" bson:"turnover"`
}

func (e LedgerEntry) Row() LedgerRow {
	a := e.Aggregate
	return LedgerRow{
		PlayerKey:       a.PlayerKey,
		TotalAmount:     a.TotalAmount().StringFixed(2),
		TotalIn:         a.TotalIn.StringFixed(2),
		DepositCount:    a.DepositCount,
		TotalOut:        a.TotalOut.StringFixed(2),
		WithdrawalCount: a.WithdrawalCount,
		Net:             a.Net().StringFixed(2),
		WindowedBonus:   e.Bonus.WindowedBonus,
		AmountTierBonus: e.Bonus.AmountTierBonus,
		CountTierBonus:  e.Bonus.CountTierBonus,
		TotalBonus:      e.Bonus.TotalBonus,
		Turnover:        e.Bonus.Turnover,
	}
}

// GatewaySummary - breakdown per payment gateway
type GatewaySummary struct {
	Gateway          string `json:"gateway" bson:"gateway"`
	Deposits         int    `json:"deposits" bson:"deposits"`
	DepositAmount    string `json:"deposit_amount" bson:"deposit_amount"`
	Withdrawals      int    `json:"withdrawals" bson:"withdrawals"`
	WithdrawalAmount string `json:"withdrawal_amount" bson:"withdrawal_amount"`
}

type RunSummary struct {
	UniquePlayers          int              `json:"unique_players" bson:"unique_players"`
	EligiblePlayers        int              `json:"eligible_players" bson:"eligible_players"`
	WindowEligiblePlayers  int              `json:"window_eligible_players" bson:"window_eligible_players"`
	TotalBonus             int64            `json:"total_bonus" bson:"total_bonus"`
	DepositTransactions    int              `json:"deposit_transactions" bson:"deposit_transactions"`
	WithdrawalTransactions int              `json:"withdrawal_transactions" bson:"withdrawal_transactions"`
	Received               int              `json:"received" bson:"received"`
	Accepted               int              `json:"accepted" bson:"accepted"`
	Rejected               int              `json:"rejected" bson:"rejected"`
	Warnings               int              `json:"warnings" bson:"warnings"`
	Structural             int              `json:"structural" bson:"structural"`
	Duplicates             int              `json:"duplicates" bson:"duplicates"`
	OutOfRange             int              `json:"out_of_range" bson:"out_of_range"`
	Skipped                int              `json:"skipped" bson:"skipped"`
	Issues                 []Issue          `json:"issues,omitempty" bson:"issues,omitempty"`
	Gateways               []GatewaySummary `json:"gateways,omitempty" bson:"gateways,omitempty"`
}

// Ledger - full reconciliation result of one run
type Ledger struct {
	RunID       string      `json:"run_id" bson:"run_id"`
	GeneratedAt time.Time   `json:"generated_at" bson:"generated_at"`
	From        string      `json:"from,omitempty" bson:"from,omitempty"`
	To          string      `json:"to,omitempty" bson:"to,omitempty"`
	Rows        []LedgerRow `json:"rows" bson:"rows"`
	Summary     RunSummary  `json:"summary" bson:"summary"`
}
