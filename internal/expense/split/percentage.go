package split

import (
	"slices"

	"github.com/shopspring/decimal"
)

// PercentageStrategy charges each participant their entered percentage of
// the total. The percentages must add up to 100 within Tolerance.
type PercentageStrategy struct {
	Tolerance decimal.Decimal
}

// Type returns the split type identifier
func (s *PercentageStrategy) Type() SplitType {
	return SplitTypePercentage
}

// Validate checks that every participant has a percentage and that they
// sum to 100 within the tolerance (inclusive).
func (s *PercentageStrategy) Validate(total decimal.Decimal, participants []SplitInput) error {
	if len(participants) == 0 {
		return ErrNoParticipantsSelected
	}
	if !validAmount(total) {
		return ErrInvalidAmount
	}

	sum, err := checkInputs(SplitTypePercentage, participants, percentagePlaces, func(p SplitInput) *decimal.Decimal {
		return p.Percentage
	})
	if err != nil {
		return err
	}

	if sum.Sub(hundred).Abs().GreaterThan(s.Tolerance) {
		return &ValidationError{Kind: KindPercentageSumMismatch, Sum: sum, Expected: hundred}
	}
	return nil
}

// Calculate returns round2(total x percentage / 100) per participant. When
// that rounding leaves the shares more than one cent away from the amount
// the percentages cover, the difference is reconciled cent by cent.
func (s *PercentageStrategy) Calculate(total decimal.Decimal, participants []SplitInput) ([]SplitOutput, error) {
	if err := s.Validate(total, participants); err != nil {
		return nil, err
	}

	outputs := make([]SplitOutput, len(participants))
	exact := make([]decimal.Decimal, len(participants))
	pctSum := decimal.Zero
	for i, p := range participants {
		exact[i] = total.Mul(*p.Percentage).Div(hundred)
		outputs[i] = SplitOutput{UserID: p.UserID, Amount: round2(exact[i])}
		pctSum = pctSum.Add(*p.Percentage)
	}

	reconcile(outputs, exact, round2(total.Mul(pctSum).Div(hundred)))
	return outputs, nil
}

// reconcile moves whole cents onto (or off) the shares whose rounding moved
// them furthest from their exact value, earliest participant first on ties,
// until the shares add up to target. A drift of one cent or less is left as
// is so that shares stay equal to their plain rounding.
func reconcile(outputs []SplitOutput, exact []decimal.Decimal, target decimal.Decimal) {
	drift := target.Sub(Sum(outputs)).Shift(2).IntPart()
	if drift >= -1 && drift <= 1 {
		return
	}

	cent := decimal.New(1, -2)
	if drift < 0 {
		cent = cent.Neg()
		drift = -drift
	}

	// residual > 0: rounded down, residual < 0: rounded up
	residual := func(i int) decimal.Decimal { return exact[i].Sub(outputs[i].Amount) }
	order := make([]int, len(outputs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if cent.IsPositive() {
			return residual(b).Cmp(residual(a))
		}
		return residual(a).Cmp(residual(b))
	})

	for k := int64(0); k < drift; k++ {
		i := order[k%int64(len(order))]
		outputs[i].Amount = outputs[i].Amount.Add(cent)
	}
}
