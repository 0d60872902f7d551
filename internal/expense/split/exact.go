package split

import "github.com/shopspring/decimal"

// ExactStrategy uses the amount entered for each participant as-is. The
// amounts must add up to the total.
type ExactStrategy struct {
	// Tolerance is exclusive: |sum - total| must be strictly below it.
	// Zero means the sum must equal the total exactly.
	Tolerance decimal.Decimal
}

// Type returns the split type identifier
func (s *ExactStrategy) Type() SplitType {
	return SplitTypeExact
}

// Validate checks that every participant has an amount and that the
// amounts add up to the total.
func (s *ExactStrategy) Validate(total decimal.Decimal, participants []SplitInput) error {
	if len(participants) == 0 {
		return ErrNoParticipantsSelected
	}
	if !validAmount(total) {
		return ErrInvalidAmount
	}

	sum, err := checkInputs(SplitTypeExact, participants, amountPlaces, func(p SplitInput) *decimal.Decimal {
		return p.Amount
	})
	if err != nil {
		return err
	}

	diff := sum.Sub(total).Abs()
	mismatch := !diff.IsZero()
	if s.Tolerance.IsPositive() {
		mismatch = diff.GreaterThanOrEqual(s.Tolerance)
	}
	if mismatch {
		return &ValidationError{Kind: KindExactSumMismatch, Sum: sum, Expected: total}
	}
	return nil
}

// Calculate returns each participant's entered amount in cents
func (s *ExactStrategy) Calculate(total decimal.Decimal, participants []SplitInput) ([]SplitOutput, error) {
	if err := s.Validate(total, participants); err != nil {
		return nil, err
	}

	outputs := make([]SplitOutput, len(participants))
	for i, p := range participants {
		outputs[i] = SplitOutput{UserID: p.UserID, Amount: round2(*p.Amount)}
	}
	return outputs, nil
}
