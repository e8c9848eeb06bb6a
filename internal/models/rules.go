package reconcile

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tier of a ladder: reaching Threshold adds Bonus
type Tier struct {
	Threshold float64 `bson:"threshold" json:"threshold"`
	Bonus     int64   `bson:"bonus" json:"bonus"`
}

// Ladder - tiers sorted by threshold, every tier reached is added
type Ladder []Tier

// Apply returns the sum of bonuses of all tiers with threshold <= value
func (l Ladder) Apply(value decimal.Decimal) int64 {
	var bonus int64
	for _, t := range l {
		if value.GreaterThanOrEqual(decimal.NewFromFloat(t.Threshold)) {
			bonus += t.Bonus
		}
	}
	return bonus
}

// WindowRule - deposit followed by a large cash-out before the next deposit
type WindowRule struct {
	MinDeposit      float64 `bson:"mindeposit" json:"min_deposit"`           // deposit amount >= MinDeposit opens a window
	WithdrawalsOver float64 `bson:"withdrawalsover" json:"withdrawals_over"` // window qualifies when sum > WithdrawalsOver
	Bonus           int64   `bson:"bonus" json:"bonus"`
}

type BonusRules struct {
	ID                 uuid.UUID  `bson:"id" json:"id"`
	Name               string     `bson:"name" json:"name"`
	Active             bool       `bson:"active" json:"active"`
	CountLadder        Ladder     `bson:"countladder" json:"count_ladder"`
	AmountLadder       Ladder     `bson:"amountladder" json:"amount_ladder"`
	Window             WindowRule `bson:"window" json:"window"`
	TurnoverMultiplier int64      `bson:"turnovermultiplier" json:"turnover_multiplier"`
}

// DefaultRules - the promotion currently run on the consoles
func DefaultRules() BonusRules {
	return BonusRules{
		Name:   "default",
		Active: true,
		CountLadder: Ladder{
			{Threshold: 5, Bonus: 50},
			{Threshold: 10, Bonus: 100},
			{Threshold: 15, Bonus: 150},
			{Threshold: 20, Bonus: 200},
			{Threshold: 30, Bonus: 500},
		},
		AmountLadder: Ladder{
			{Threshold: 500, Bonus: 18},
			{Threshold: 1000, Bonus: 28},
			{Threshold: 3000, Bonus: 38},
			{Threshold: 5000, Bonus: 58},
			{Threshold: 10000, Bonus: 108},
		},
		Window: WindowRule{
			MinDeposit:      500,
			WithdrawalsOver: 1000,
			Bonus:           68,
		},
		TurnoverMultiplier: 2,
	}
}

func (r BonusRules) Validate() error {
	if err := r.CountLadder.validate(); err != nil {
		return fmt.Errorf("%w: count ladder: %w", ErrInvalidRules, err)
	}
	if err := r.AmountLadder.validate(); err != nil {
		return fmt.Errorf("%w: amount ladder: %w", ErrInvalidRules, err)
	}
	if r.Window.MinDeposit < 0 || r.Window.WithdrawalsOver < 0 || r.Window.Bonus < 0 {
		return fmt.Errorf("%w: window values must not be negative", ErrInvalidRules)
	}
	if r.TurnoverMultiplier < 1 {
		return fmt.Errorf("%w: turnover multiplier must be at least 1", ErrInvalidRules)
	}
	return nil
}

func (l Ladder) validate() error {
	for i, t := range l {
		if t.Threshold < 0 || t.Bonus < 0 {
			return fmt.Errorf("tier %d: negative value", i)
		}
		if i > 0 && t.Threshold <= l[i-1].Threshold {
			return fmt.Errorf("tier %d: thresholds must be strictly increasing", i)
		}
	}
	return nil
}
