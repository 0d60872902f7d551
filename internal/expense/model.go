package expense

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/expensesplit/internal/expense/split"
)

// Expense is a paid amount shared between participants
type Expense struct {
	ID          int64           `json:"id"`
	GroupID     *int64          `json:"group_id,omitempty"`
	PayerID     int64           `json:"payer_id"`
	CreatedBy   int64           `json:"created_by"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ImageURL    *string         `json:"image_url,omitempty"`
	SplitType   split.SplitType `json:"split_type"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Populated via JOIN
	PayerUsername string `json:"payer_username,omitempty"`
}

// Participant is one row of an expense's normalized participant list. The
// payer has a row even when they owe nothing.
type Participant struct {
	ExpenseID  int64           `json:"expense_id"`
	UserID     int64           `json:"user_id"`
	AmountOwed decimal.Decimal `json:"amount_owed"`

	// The value entered for PERCENTAGE or EXACT splits, kept for editing
	Percentage  *decimal.Decimal `json:"percentage,omitempty"`
	ExactAmount *decimal.Decimal `json:"exact_amount,omitempty"`

	// Populated via JOIN
	Username string `json:"username,omitempty"`
}

// ExpenseWithParticipants combines an expense with its participant rows
type ExpenseWithParticipants struct {
	Expense      *Expense
	Participants []*Participant
}

// CanModify reports whether userID may edit or delete the expense
func (e *Expense) CanModify(userID int64) bool {
	return userID == e.CreatedBy || userID == e.PayerID
}

// buildParticipants pairs the calculator outputs with the values the user
// entered. Outputs and inputs share order; the appended payer has no input.
func buildParticipants(outputs []split.SplitOutput, inputs []split.SplitInput, splitType split.SplitType) []*Participant {
	entered := make(map[int64]split.SplitInput, len(inputs))
	for _, in := range inputs {
		entered[in.UserID] = in
	}

	participants := make([]*Participant, len(outputs))
	for i, out := range outputs {
		p := &Participant{UserID: out.UserID, AmountOwed: out.Amount}
		if in, ok := entered[out.UserID]; ok {
			switch splitType {
			case split.SplitTypePercentage:
				p.Percentage = in.Percentage
			case split.SplitTypeExact:
				p.ExactAmount = in.Amount
			}
		}
		participants[i] = p
	}
	return participants
}
