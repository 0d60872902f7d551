package split

import "github.com/shopspring/decimal"

// EqualStrategy divides the total evenly among all selected participants.
//
// Each share is round2(total / N). With DistributeRemainder unset the
// rounded shares may differ from the total by up to N x 0.005.
type EqualStrategy struct {
	DistributeRemainder bool
}

// Type returns the split type identifier
func (s *EqualStrategy) Type() SplitType {
	return SplitTypeEqual
}

// Validate checks the inputs for an equal split. Per-participant values are
// ignored.
func (s *EqualStrategy) Validate(total decimal.Decimal, participants []SplitInput) error {
	if len(participants) == 0 {
		return ErrNoParticipantsSelected
	}
	if !validAmount(total) {
		return ErrInvalidAmount
	}
	return nil
}

// Calculate returns the same share for every participant
func (s *EqualStrategy) Calculate(total decimal.Decimal, participants []SplitInput) ([]SplitOutput, error) {
	if err := s.Validate(total, participants); err != nil {
		return nil, err
	}

	if s.DistributeRemainder {
		return s.distribute(total, participants), nil
	}

	share := round2(total.Div(decimal.NewFromInt(int64(len(participants)))))
	outputs := make([]SplitOutput, len(participants))
	for i, p := range participants {
		outputs[i] = SplitOutput{UserID: p.UserID, Amount: share}
	}
	return outputs, nil
}

// distribute works in whole cents: everyone gets floor(cents / N) and the
// leftover cents go one each to the first participants in input order.
func (s *EqualStrategy) distribute(total decimal.Decimal, participants []SplitInput) []SplitOutput {
	n := int64(len(participants))
	cents := round2(total).Shift(2).IntPart()
	base := cents / n
	leftover := cents % n

	outputs := make([]SplitOutput, len(participants))
	for i, p := range participants {
		c := base
		if int64(i) < leftover {
			c++
		}
		outputs[i] = SplitOutput{UserID: p.UserID, Amount: decimal.New(c, -2)}
	}
	return outputs
}
