package split

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrorKind identifies why a split was rejected
type ErrorKind string

const (
	KindInvalidAmount          ErrorKind = "INVALID_AMOUNT"
	KindNoParticipantsSelected ErrorKind = "NO_PARTICIPANTS_SELECTED"
	KindMissingSplitInput      ErrorKind = "MISSING_SPLIT_INPUT"
	KindPercentageSumMismatch  ErrorKind = "PERCENTAGE_SUM_MISMATCH"
	KindExactSumMismatch       ErrorKind = "EXACT_SUM_MISMATCH"
	KindPayerNotSelected       ErrorKind = "PAYER_NOT_SELECTED"
	KindNegativeSplitInput     ErrorKind = "NEGATIVE_SPLIT_INPUT"
	KindDuplicateParticipant   ErrorKind = "DUPLICATE_PARTICIPANT"
	KindInvalidParticipant     ErrorKind = "INVALID_PARTICIPANT"
	KindUnsupportedStrategy    ErrorKind = "UNSUPPORTED_STRATEGY"
)

// ValidationError is returned for every rejected split. All kinds are
// recoverable: the user edits the inputs and submits again.
type ValidationError struct {
	Kind ErrorKind

	// UserID is the participant the error refers to, 0 when not applicable.
	UserID int64

	// Sum is the actual sum of the inputs for the *_SUM_MISMATCH kinds.
	Sum decimal.Decimal

	// Expected is the value Sum was checked against.
	Expected decimal.Decimal

	// SplitType is set for UNSUPPORTED_STRATEGY, MISSING_SPLIT_INPUT and a
	// per-participant INVALID_AMOUNT.
	SplitType SplitType
}

// Sentinels for errors.Is matching. Only Kind is compared.
var (
	ErrInvalidAmount          = &ValidationError{Kind: KindInvalidAmount}
	ErrNoParticipantsSelected = &ValidationError{Kind: KindNoParticipantsSelected}
	ErrMissingSplitInput      = &ValidationError{Kind: KindMissingSplitInput}
	ErrPercentageSumMismatch  = &ValidationError{Kind: KindPercentageSumMismatch}
	ErrExactSumMismatch       = &ValidationError{Kind: KindExactSumMismatch}
	ErrPayerNotSelected       = &ValidationError{Kind: KindPayerNotSelected}
	ErrNegativeSplitInput     = &ValidationError{Kind: KindNegativeSplitInput}
	ErrDuplicateParticipant   = &ValidationError{Kind: KindDuplicateParticipant}
	ErrInvalidParticipant     = &ValidationError{Kind: KindInvalidParticipant}
	ErrUnsupportedStrategy    = &ValidationError{Kind: KindUnsupportedStrategy}
)

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindInvalidAmount:
		switch e.SplitType {
		case SplitTypePercentage:
			return fmt.Sprintf("participant %d has a percentage with more than %d decimal places", e.UserID, percentagePlaces)
		case SplitTypeExact:
			return fmt.Sprintf("participant %d has an amount with more than %d decimal places", e.UserID, amountPlaces)
		}
		return fmt.Sprintf("amount must be greater than zero, in whole cents and at most %s", maxAmount.StringFixed(2))
	case KindNoParticipantsSelected:
		return "at least one participant must be selected"
	case KindMissingSplitInput:
		if e.SplitType == SplitTypePercentage {
			return fmt.Sprintf("participant %d is missing a percentage", e.UserID)
		}
		return fmt.Sprintf("participant %d is missing an exact amount", e.UserID)
	case KindPercentageSumMismatch:
		return fmt.Sprintf("percentages must add up to 100, got %s", e.Sum.String())
	case KindExactSumMismatch:
		return fmt.Sprintf("exact amounts must add up to %s, got %s", e.Expected.StringFixed(2), e.Sum.StringFixed(2))
	case KindPayerNotSelected:
		if e.UserID > 0 {
			return fmt.Sprintf("payer %d is not a known user", e.UserID)
		}
		return "a payer must be selected"
	case KindNegativeSplitInput:
		return fmt.Sprintf("participant %d has a negative split value", e.UserID)
	case KindDuplicateParticipant:
		return fmt.Sprintf("participant %d is selected more than once", e.UserID)
	case KindInvalidParticipant:
		if e.UserID == 0 {
			return "participant id is required"
		}
		return fmt.Sprintf("participant %d is not a known user", e.UserID)
	case KindUnsupportedStrategy:
		return fmt.Sprintf("split type %q is not supported", string(e.SplitType))
	default:
		return "invalid split"
	}
}

// Is reports whether target is a *ValidationError of the same kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// AsValidationError unwraps err to a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// Details returns the structured fields worth reporting to a client.
func (e *ValidationError) Details() map[string]any {
	details := map[string]any{}
	if e.UserID != 0 {
		details["user_id"] = e.UserID
	}
	switch e.Kind {
	case KindPercentageSumMismatch:
		details["sum"] = e.Sum.String()
		details["expected"] = hundred.String()
	case KindExactSumMismatch:
		details["sum"] = e.Sum.StringFixed(2)
		details["expected"] = e.Expected.StringFixed(2)
	case KindUnsupportedStrategy, KindMissingSplitInput:
		details["split_type"] = string(e.SplitType)
	case KindInvalidAmount:
		if e.SplitType != "" {
			details["split_type"] = string(e.SplitType)
		}
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
