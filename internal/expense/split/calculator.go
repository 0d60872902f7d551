package split

import (
	"math"

	"github.com/shopspring/decimal"
)

// Calculator validates a split request and produces the normalized
// participant list. It holds only immutable options.
type Calculator struct {
	factory *Factory
}

// NewCalculator creates a calculator using opts
func NewCalculator(opts Options) *Calculator {
	return &Calculator{factory: NewSplitStrategyFactory(opts)}
}

var defaultCalculator = NewCalculator(DefaultOptions())

// Compute runs the default calculator. See Calculator.Compute.
func Compute(total decimal.Decimal, splitType SplitType, participants []SplitInput, payerID int64) ([]SplitOutput, error) {
	return defaultCalculator.Compute(total, splitType, participants, payerID)
}

// Compute returns one entry per selected participant, in input order, plus
// a zero entry for the payer when the payer was not selected. Every failure
// is a *ValidationError.
func (c *Calculator) Compute(total decimal.Decimal, splitType SplitType, participants []SplitInput, payerID int64) ([]SplitOutput, error) {
	if !validAmount(total) {
		return nil, ErrInvalidAmount
	}

	strategy, err := c.factory.Create(splitType)
	if err != nil {
		return nil, err
	}

	if len(participants) == 0 {
		return nil, ErrNoParticipantsSelected
	}
	if payerID <= 0 {
		return nil, ErrPayerNotSelected
	}
	if err := checkParticipantIDs(participants); err != nil {
		return nil, err
	}

	outputs, err := strategy.Calculate(total, participants)
	if err != nil {
		return nil, err
	}

	return withPayer(outputs, payerID), nil
}

// Sum adds up the owed amounts of outputs.
func Sum(outputs []SplitOutput) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range outputs {
		sum = sum.Add(o.Amount)
	}
	return sum
}

// ParseAmount parses a user-entered total. Non-numeric, non-positive and
// non-finite input, fractions of a cent and totals above maxAmount are
// reported as INVALID_AMOUNT.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil || !validAmount(d) {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// AmountFromFloat converts a float total, rejecting NaN and infinities
// which decimal.NewFromFloat would panic on.
func AmountFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return decimal.NewFromFloat(f), nil
}

func checkParticipantIDs(participants []SplitInput) error {
	seen := make(map[int64]struct{}, len(participants))
	for _, p := range participants {
		if p.UserID <= 0 {
			return &ValidationError{Kind: KindInvalidParticipant, UserID: p.UserID}
		}
		if _, dup := seen[p.UserID]; dup {
			return &ValidationError{Kind: KindDuplicateParticipant, UserID: p.UserID}
		}
		seen[p.UserID] = struct{}{}
	}
	return nil
}

// withPayer appends a zero entry for the payer if they are not listed.
func withPayer(outputs []SplitOutput, payerID int64) []SplitOutput {
	for _, o := range outputs {
		if o.UserID == payerID {
			return outputs
		}
	}
	return append(outputs, SplitOutput{UserID: payerID, Amount: decimal.Zero})
}
