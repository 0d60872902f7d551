package expense

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/expensesplit/internal/expense/split"
)

// ParticipantRequest is one selected participant and the value entered for them
type ParticipantRequest struct {
	UserID     int64            `json:"user_id"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"` // For PERCENTAGE split
	Amount     *decimal.Decimal `json:"amount,omitempty"`     // For EXACT split
}

// ToSplitInput converts to the split package's input type
func (p *ParticipantRequest) ToSplitInput() split.SplitInput {
	if p == nil {
		return split.SplitInput{}
	}
	return split.SplitInput{
		UserID:     p.UserID,
		Percentage: p.Percentage,
		Amount:     p.Amount,
	}
}

// SplitRequest is the state of the split screen when the user confirms
type SplitRequest struct {
	Amount       decimal.Decimal       `json:"amount"`
	SplitType    string                `json:"split_type" example:"EQUAL"`
	PayerID      int64                 `json:"payer_id"`
	Participants []*ParticipantRequest `json:"participants"`
}

// Inputs converts the participants to calculator inputs
func (r *SplitRequest) Inputs() []split.SplitInput {
	inputs := make([]split.SplitInput, len(r.Participants))
	for i, p := range r.Participants {
		inputs[i] = p.ToSplitInput()
	}
	return inputs
}

// PreviewRequest asks for a split to be computed without saving it
type PreviewRequest struct {
	GroupID *int64 `json:"group_id,omitempty"`
	SplitRequest
}

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	GroupID     *int64  `json:"group_id,omitempty"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty"`
	SplitRequest
}

// UpdateExpenseRequest replaces an expense's details and participants
type UpdateExpenseRequest struct {
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty"`
	SplitRequest
}

// PreviewResponse is the normalized participant list for a split
type PreviewResponse struct {
	SplitType    split.SplitType     `json:"split_type"`
	Amount       decimal.Decimal     `json:"amount"`
	Allocated    decimal.Decimal     `json:"allocated"`
	Participants []split.SplitOutput `json:"participants"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID            int64                  `json:"id"`
	GroupID       *int64                 `json:"group_id,omitempty"`
	PayerID       int64                  `json:"payer_id"`
	PayerUsername string                 `json:"payer_username,omitempty"`
	CreatedBy     int64                  `json:"created_by"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"`
	ImageURL      *string                `json:"image_url,omitempty"`
	SplitType     split.SplitType        `json:"split_type"`
	CreatedAt     string                 `json:"created_at"`
	UpdatedAt     string                 `json:"updated_at"`
	Participants  []*ParticipantResponse `json:"participants,omitempty"`
}

// ParticipantResponse is one entry of an expense's participant list
type ParticipantResponse struct {
	UserID      int64            `json:"id"`
	Username    string           `json:"username,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`
	Percentage  *decimal.Decimal `json:"percentage,omitempty"`
	ExactAmount *decimal.Decimal `json:"exact_amount,omitempty"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:            e.ID,
		GroupID:       e.GroupID,
		PayerID:       e.PayerID,
		PayerUsername: e.PayerUsername,
		CreatedBy:     e.CreatedBy,
		Description:   e.Description,
		Amount:        e.Amount,
		ImageURL:      e.ImageURL,
		SplitType:     e.SplitType,
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToResponse converts a Participant model to a ParticipantResponse DTO
func (p *Participant) ToResponse() *ParticipantResponse {
	return &ParticipantResponse{
		UserID:      p.UserID,
		Username:    p.Username,
		Amount:      p.AmountOwed,
		Percentage:  p.Percentage,
		ExactAmount: p.ExactAmount,
	}
}

// ToResponse converts an expense and its participants to a single DTO
func (e *ExpenseWithParticipants) ToResponse() *ExpenseResponse {
	resp := e.Expense.ToResponse()
	resp.Participants = make([]*ParticipantResponse, len(e.Participants))
	for i, p := range e.Participants {
		resp.Participants[i] = p.ToResponse()
	}
	return resp
}
