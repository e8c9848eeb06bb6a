package reconcile

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	models "github.com/glkeru/loyalty/reconcile/internal/models"
	"github.com/shopspring/decimal"
)

type gatewayTotals struct {
	deposits, withdrawals           int
	depositAmount, withdrawalAmount decimal.Decimal
}

// Summarize builds the run summary from accepted records and ranked entries
func Summarize(records []models.TransactionRecord, entries []models.LedgerEntry, issues []models.Issue, stats IntakeStats, received int) models.RunSummary {
	s := models.RunSummary{
		UniquePlayers: len(entries),
		Received:      received,
		Accepted:      len(records),
		Duplicates:    stats.Duplicates,
		OutOfRange:    stats.OutOfRange,
		Skipped:       stats.Skipped,
		Issues:        issues,
	}

	for _, e := range entries {
		if e.Bonus.TotalBonus > 0 {
			s.EligiblePlayers++
		}
		if e.Eligible {
			s.WindowEligiblePlayers++
		}
		s.TotalBonus += e.Bonus.TotalBonus
	}

	for _, is := range issues {
		switch is.Severity {
		case models.SeverityWarning:
			s.Warnings++
		case models.SeverityStructural:
			s.Structural++
		default:
			s.Rejected++
		}
	}

	var order []string
	gateways := make(map[string]*gatewayTotals)
	for _, rec := range records {
		name := rec.Gateway
		if name == "" {
			name = "-"
		}
		g, ok := gateways[name]
		if !ok {
			g = &gatewayTotals{depositAmount: decimal.Zero, withdrawalAmount: decimal.Zero}
			gateways[name] = g
			order = append(order, name)
		}
		switch rec.Direction {
		case models.Inflow:
			s.DepositTransactions++
			g.deposits++
			g.depositAmount = g.depositAmount.Add(rec.Amount)
		case models.Outflow:
			s.WithdrawalTransactions++
			g.withdrawals++
			g.withdrawalAmount = g.withdrawalAmount.Add(rec.Amount)
		}
	}
	for _, name := range order {
		g := gateways[name]
		s.Gateways = append(s.Gateways, models.GatewaySummary{
			Gateway:          name,
			Deposits:         g.deposits,
			DepositAmount:    g.depositAmount.StringFixed(2),
			Withdrawals:      g.withdrawals,
			WithdrawalAmount: g.withdrawalAmount.StringFixed(2),
		})
	}
	return s
}

// WriteSummary renders the console summary of a run
func WriteSummary(w io.Writer, ledger models.Ledger) error {
	s := ledger.Summary
	line := strings.Repeat("=", 80)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, line)
	fmt.Fprintf(tw, "RECONCILIATION %s\t%s .. %s\n", ledger.RunID, orDash(ledger.From), orDash(ledger.To))
	fmt.Fprintln(tw, line)
	fmt.Fprintf(tw, "  Unique Players:\t%d\n", s.UniquePlayers)
	fmt.Fprintf(tw, "  Eligible Players:\t%d\n", s.EligiblePlayers)
	fmt.Fprintf(tw, "  Window Eligible Players:\t%d\n", s.WindowEligiblePlayers)
	fmt.Fprintf(tw, "  Eligible Bonus:\t%d (Total)\n", s.TotalBonus)
	fmt.Fprintf(tw, "  Total Deposit Transactions:\t%d\n", s.DepositTransactions)
	fmt.Fprintf(tw, "  Total Withdrawal Transactions:\t%d\n", s.WithdrawalTransactions)
	fmt.Fprintf(tw, "  Records received/accepted:\t%d/%d\n", s.Received, s.Accepted)
	fmt.Fprintf(tw, "  Duplicates/out of range/skipped:\t%d/%d/%d\n", s.Duplicates, s.OutOfRange, s.Skipped)
	fmt.Fprintf(tw, "  Warnings/rejected/structural:\t%d/%d/%d\n", s.Warnings, s.Rejected, s.Structural)

	for _, g := range s.Gateways {
		fmt.Fprintf(tw, "  pg %s\tdeposits %d (%s)\twithdrawals %d (%s)\n",
			g.Gateway, g.Deposits, g.DepositAmount, g.Withdrawals, g.WithdrawalAmount)
	}
	if s.Structural > 0 {
		fmt.Fprintf(tw, "  WARNING: %d records with unknown transaction kinds were excluded, review before payout\n", s.Structural)
	}
	for _, is := range s.Issues {
		fmt.Fprintf(tw, "  [%s]\t%s\t%s\n", is.Severity, is.OrderID, is.Reason)
	}
	fmt.Fprintln(tw, line)
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
