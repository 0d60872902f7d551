// Package split turns a total amount, a split type and per-participant inputs
// into the normalized list of owed amounts stored with an expense.
//
// Everything here is pure: no I/O, no logging, no package-level mutable
// state. A Calculator can be shared between goroutines.
package split

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SplitType defines the type of split strategy
type SplitType string

const (
	SplitTypeEqual      SplitType = "EQUAL"
	SplitTypeExact      SplitType = "EXACT"
	SplitTypePercentage SplitType = "PERCENTAGE"

	// SplitTypeShares is accepted by clients but has no computation path.
	SplitTypeShares SplitType = "SHARES"
)

// ParseSplitType normalizes a client-supplied split type. "EVEN" is accepted
// as an alias of EQUAL. Unknown values are returned upper-cased so the
// factory can report them.
func ParseSplitType(s string) SplitType {
	t := SplitType(strings.ToUpper(strings.TrimSpace(s)))
	if t == "EVEN" {
		return SplitTypeEqual
	}
	return t
}

// SupportedTypes lists the split types with an implemented strategy.
func SupportedTypes() []SplitType {
	return []SplitType{SplitTypeEqual, SplitTypeExact, SplitTypePercentage}
}

// SplitInput is one selected participant with the value the user entered
// for the chosen split type. Percentage is read for PERCENTAGE, Amount for
// EXACT; both are ignored for EQUAL.
type SplitInput struct {
	UserID     int64            `json:"user_id"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
}

// SplitOutput is one entry of the normalized participant list.
type SplitOutput struct {
	UserID int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

// Strategy is the interface that all split strategies implement
type Strategy interface {
	// Type returns the split type this strategy handles
	Type() SplitType

	// Validate checks the strategy-specific inputs
	Validate(total decimal.Decimal, participants []SplitInput) error

	// Calculate returns one output per participant, in input order
	Calculate(total decimal.Decimal, participants []SplitInput) ([]SplitOutput, error)
}

// Options tunes the validation tolerances and the EQUAL rounding rule.
type Options struct {
	// PercentageTolerance is the allowed |sum - 100|, inclusive.
	PercentageTolerance decimal.Decimal

	// ExactTolerance is the allowed |sum - total|, exclusive. Zero requires
	// the amounts to sum to the total exactly.
	ExactTolerance decimal.Decimal

	// DistributeRemainder hands leftover cents of an EQUAL split to the
	// first participants so the shares add up to the total.
	DistributeRemainder bool
}

// DefaultOptions returns a 0.01 tolerance for both checks and leaves EQUAL
// rounding remainders unreconciled.
func DefaultOptions() Options {
	return Options{
		PercentageTolerance: decimal.New(1, -2),
		ExactTolerance:      decimal.New(1, -2),
	}
}

// Factory creates split strategies based on the requested type
type Factory struct {
	opts Options
}

// NewSplitStrategyFactory creates a factory whose strategies use opts
func NewSplitStrategyFactory(opts Options) *Factory {
	return &Factory{opts: opts}
}

// Create returns the strategy for splitType
func (f *Factory) Create(splitType SplitType) (Strategy, error) {
	switch splitType {
	case SplitTypeEqual:
		return &EqualStrategy{DistributeRemainder: f.opts.DistributeRemainder}, nil
	case SplitTypePercentage:
		return &PercentageStrategy{Tolerance: f.opts.PercentageTolerance}, nil
	case SplitTypeExact:
		return &ExactStrategy{Tolerance: f.opts.ExactTolerance}, nil
	default:
		return nil, &ValidationError{Kind: KindUnsupportedStrategy, SplitType: splitType}
	}
}

// CreateFromString parses s and creates the matching strategy
func (f *Factory) CreateFromString(s string) (Strategy, error) {
	return f.Create(ParseSplitType(s))
}

var hundred = decimal.NewFromInt(100)

// maxAmount is the largest total an expense can carry. Totals and exact
// amounts are held to cents and percentages to four decimal places, which
// is the precision they are stored with.
var maxAmount = decimal.RequireFromString("9999999999.99")

const (
	amountPlaces     = 2
	percentagePlaces = 4
)

// hasPlaces reports whether d needs no more than places decimal places.
func hasPlaces(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}

// validAmount reports whether total is positive, in cents and not above
// maxAmount.
func validAmount(total decimal.Decimal) bool {
	return total.IsPositive() && hasPlaces(total, amountPlaces) && total.LessThanOrEqual(maxAmount)
}

// round2 rounds half away from zero to cents
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// checkInputs enforces that every participant carries a non-negative value
// with at most places decimal places and returns the sum of those values.
func checkInputs(splitType SplitType, participants []SplitInput, places int32, pick func(SplitInput) *decimal.Decimal) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range participants {
		v := pick(p)
		if v == nil {
			return decimal.Zero, &ValidationError{Kind: KindMissingSplitInput, UserID: p.UserID, SplitType: splitType}
		}
		if v.IsNegative() {
			return decimal.Zero, &ValidationError{Kind: KindNegativeSplitInput, UserID: p.UserID}
		}
		if !hasPlaces(*v, places) {
			return decimal.Zero, &ValidationError{Kind: KindInvalidAmount, UserID: p.UserID, SplitType: splitType}
		}
		sum = sum.Add(*v)
	}
	return sum, nil
}
