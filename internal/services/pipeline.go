package reconcile

import (
	"slices"

	models "github.com/glkeru/loyalty/reconcile/internal/models"
	"github.com/shopspring/decimal"
)

// PlayerGroup - records of one player in arrival order
type PlayerGroup struct {
	PlayerKey string
	Records   []models.TransactionRecord
}

// Group partitions records by player. Groups are returned in discovery order.
func Group(records []models.TransactionRecord) []PlayerGroup {
	index := make(map[string]int)
	var groups []PlayerGroup
	for _, rec := range records {
		i, ok := index[rec.PlayerKey]
		if !ok {
			i = len(groups)
			index[rec.PlayerKey] = i
			groups = append(groups, PlayerGroup{PlayerKey: rec.PlayerKey})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}

// Sequence returns a copy ordered oldest first, equal timestamps keep arrival order
func Sequence(records []models.TransactionRecord) []models.TransactionRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.TransactionRecord) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return a.Seq - b.Seq
	})
	return sorted
}

func Aggregate(playerKey string, records []models.TransactionRecord) models.PlayerAggregate {
	agg := models.PlayerAggregate{
		PlayerKey: playerKey,
		TotalIn:   decimal.Zero,
		TotalOut:  decimal.Zero,
	}
	for _, rec := range records {
		switch rec.Direction {
		case models.Inflow:
			agg.TotalIn = agg.TotalIn.Add(rec.Amount)
			agg.DepositCount++
		case models.Outflow:
			agg.TotalOut = agg.TotalOut.Add(rec.Amount)
			agg.WithdrawalCount++
		}
	}
	return agg
}

// WindowEligible scans the sequenced records for a deposit of at least MinDeposit
// followed, before the next deposit, by withdrawals summing over WithdrawalsOver.
// The first qualifying window wins.
func WindowEligible(records []models.TransactionRecord, rule models.WindowRule) bool {
	minDeposit := decimal.NewFromFloat(rule.MinDeposit)
	limit := decimal.NewFromFloat(rule.WithdrawalsOver)

	open := false
	sum := decimal.Zero
	for _, rec := range records {
		switch rec.Direction {
		case models.Inflow:
			// every deposit closes the previous window
			open = rec.Amount.GreaterThanOrEqual(minDeposit)
			sum = decimal.Zero
		case models.Outflow:
			if !open {
				continue
			}
			sum = sum.Add(rec.Amount)
			if sum.GreaterThan(limit) {
				return true
			}
		}
	}
	return false
}

func Bonus(agg models.PlayerAggregate, eligible bool, rules models.BonusRules) models.BonusBreakdown {
	b := models.BonusBreakdown{
		CountTierBonus:  rules.CountLadder.Apply(decimal.NewFromInt(int64(agg.DepositCount))),
		AmountTierBonus: rules.AmountLadder.Apply(agg.TotalIn),
	}
	if eligible {
		b.WindowedBonus = rules.Window.Bonus
	}
	b.TotalBonus = b.WindowedBonus + b.AmountTierBonus + b.CountTierBonus
	b.Turnover = b.TotalBonus * rules.TurnoverMultiplier
	return b
}

// Evaluate runs sequencing, aggregation, the window scan and the ladders for one player
func Evaluate(group PlayerGroup, rules models.BonusRules) models.LedgerEntry {
	sequenced := Sequence(group.Records)
	agg := Aggregate(group.PlayerKey, sequenced)
	eligible := WindowEligible(sequenced, rules.Window)
	return models.LedgerEntry{
		Aggregate: agg,
		Bonus:     Bonus(agg, eligible, rules),
		Eligible:  eligible,
	}
}

// Rank orders entries by total bonus, biggest first. Ties keep discovery order.
func Rank(entries []models.LedgerEntry) []models.LedgerEntry {
	ranked := slices.Clone(entries)
	slices.SortStableFunc(ranked, func(a, b models.LedgerEntry) int {
		switch {
		case a.Bonus.TotalBonus > b.Bonus.TotalBonus:
			return -1
		case a.Bonus.TotalBonus < b.Bonus.TotalBonus:
			return 1
		}
		return 0
	})
	return ranked
}

func Rows(entries []models.LedgerEntry) []models.LedgerRow {
	rows := make([]models.LedgerRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.Row())
	}
	return rows
}
