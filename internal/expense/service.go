package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fkhayef/expensesplit/internal/expense/split"
	"github.com/fkhayef/expensesplit/internal/metrics"
)

// Common errors
var (
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrNotAuthorized      = errors.New("only the creator or payer can modify this expense")
	ErrNotGroupMember     = errors.New("user is not a member of the expense's group")
	ErrInvalidDescription = errors.New("description must be between 1 and 255 characters")
)

// Store is the persistence the expense service needs
type Store interface {
	Create(ctx context.Context, e *Expense, participants []*Participant) (int64, error)
	Update(ctx context.Context, e *Expense, participants []*Participant) (bool, error)
	GetByID(ctx context.Context, id int64) (*Expense, error)
	GetParticipants(ctx context.Context, expenseID int64) ([]*Participant, error)
	ListByGroupID(ctx context.Context, groupID int64, limit, offset int) ([]*Expense, int, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserLookup resolves user IDs to stored users
type UserLookup interface {
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
}

// GroupLookup resolves group membership
type GroupLookup interface {
	MemberIDs(ctx context.Context, groupID int64) ([]int64, error)
}

// Service handles expense business logic
type Service struct {
	repo   Store
	users  UserLookup
	groups GroupLookup
	calc   *split.Calculator
	logger *slog.Logger
}

// NewService creates a new expense service with dependencies injected
func NewService(repo Store, users UserLookup, groups GroupLookup, calc *split.Calculator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		users:  users,
		groups: groups,
		calc:   calc,
		logger: logger.With("component", "expense"),
	}
}

// Preview computes the participant list for a split without saving it
func (s *Service) Preview(ctx context.Context, req *PreviewRequest) (*PreviewResponse, error) {
	splitType, outputs, err := s.computeSplit(ctx, req.GroupID, &req.SplitRequest)
	if err != nil {
		return nil, err
	}

	return &PreviewResponse{
		SplitType:    splitType,
		Amount:       req.Amount,
		Allocated:    split.Sum(outputs),
		Participants: outputs,
	}, nil
}

// Create validates the split, computes it and stores the expense with its
// participant rows
func (s *Service) Create(ctx context.Context, creatorID int64, req *CreateExpenseRequest) (*ExpenseWithParticipants, error) {
	description, err := cleanDescription(req.Description)
	if err != nil {
		return nil, err
	}

	splitType, outputs, err := s.computeSplit(ctx, req.GroupID, &req.SplitRequest)
	if err != nil {
		return nil, err
	}

	expense := &Expense{
		GroupID:     req.GroupID,
		PayerID:     req.PayerID,
		CreatedBy:   creatorID,
		Description: description,
		Amount:      req.Amount,
		ImageURL:    req.ImageURL,
		SplitType:   splitType,
	}

	id, err := s.repo.Create(ctx, expense, buildParticipants(outputs, req.Inputs(), splitType))
	if err != nil {
		return nil, err
	}
	metrics.ExpensesWritten.WithLabelValues("create").Inc()

	s.logger.InfoContext(ctx, "expense created",
		"expense_id", id,
		"split_type", splitType,
		"participants", len(outputs),
		"created_by", creatorID)

	return s.Get(ctx, id)
}

// Update re-validates and recomputes the split and replaces the stored
// expense. Only the creator or current payer may edit; the group is fixed.
func (s *Service) Update(ctx context.Context, id, userID int64, req *UpdateExpenseRequest) (*ExpenseWithParticipants, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrExpenseNotFound
	}
	if !existing.CanModify(userID) {
		return nil, ErrNotAuthorized
	}

	description, err := cleanDescription(req.Description)
	if err != nil {
		return nil, err
	}

	splitType, outputs, err := s.computeSplit(ctx, existing.GroupID, &req.SplitRequest)
	if err != nil {
		return nil, err
	}

	existing.PayerID = req.PayerID
	existing.Description = description
	existing.Amount = req.Amount
	existing.ImageURL = req.ImageURL
	existing.SplitType = splitType

	found, err := s.repo.Update(ctx, existing, buildParticipants(outputs, req.Inputs(), splitType))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrExpenseNotFound
	}
	metrics.ExpensesWritten.WithLabelValues("update").Inc()

	s.logger.InfoContext(ctx, "expense updated", "expense_id", id, "split_type", splitType, "updated_by", userID)

	return s.Get(ctx, id)
}

// Get retrieves an expense with its participants
func (s *Service) Get(ctx context.Context, id int64) (*ExpenseWithParticipants, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	participants, err := s.repo.GetParticipants(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithParticipants{
		Expense:      expense,
		Participants: participants,
	}, nil
}

// ListByGroupID retrieves expenses for a group
func (s *Service) ListByGroupID(ctx context.Context, groupID int64, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	if _, err := s.groups.MemberIDs(ctx, groupID); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	return s.repo.ListByGroupID(ctx, groupID, perPage, offset)
}

// Delete removes an expense. Only the creator or payer may delete.
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return ErrExpenseNotFound
	}
	if !expense.CanModify(userID) {
		return ErrNotAuthorized
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	metrics.ExpensesWritten.WithLabelValues("delete").Inc()

	s.logger.InfoContext(ctx, "expense deleted", "expense_id", id, "deleted_by", userID)
	return nil
}

// computeSplit runs the calculator, then checks that the payer and every
// participant are known users and, for group expenses, group members.
func (s *Service) computeSplit(ctx context.Context, groupID *int64, req *SplitRequest) (split.SplitType, []split.SplitOutput, error) {
	splitType := split.ParseSplitType(req.SplitType)

	outputs, err := s.calc.Compute(req.Amount, splitType, req.Inputs(), req.PayerID)
	recordComputation(splitType, err)
	if err != nil {
		s.logger.DebugContext(ctx, "split rejected", "split_type", splitType, "error", err)
		return "", nil, err
	}

	ids := make([]int64, len(outputs))
	for i, o := range outputs {
		ids[i] = o.UserID
	}

	known, err := s.users.ExistingIDs(ctx, ids)
	if err != nil {
		return "", nil, err
	}
	if !known[req.PayerID] {
		return "", nil, &split.ValidationError{Kind: split.KindPayerNotSelected, UserID: req.PayerID}
	}
	for _, id := range ids {
		if !known[id] {
			return "", nil, &split.ValidationError{Kind: split.KindInvalidParticipant, UserID: id}
		}
	}

	if groupID != nil {
		memberIDs, err := s.groups.MemberIDs(ctx, *groupID)
		if err != nil {
			return "", nil, err
		}
		members := make(map[int64]bool, len(memberIDs))
		for _, id := range memberIDs {
			members[id] = true
		}
		for _, id := range ids {
			if !members[id] {
				return "", nil, fmt.Errorf("%w: user %d", ErrNotGroupMember, id)
			}
		}
	}

	return splitType, outputs, nil
}

func recordComputation(splitType split.SplitType, err error) {
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeRejected
		if verr, ok := split.AsValidationError(err); ok {
			outcome = string(verr.Kind)
		}
	}

	strategy := string(splitType)
	if _, supported := supportedLabel[splitType]; !supported {
		strategy = "unknown"
	}
	metrics.SplitComputations.WithLabelValues(strategy, outcome).Inc()
}

// supportedLabel bounds the strategy label to known values
var supportedLabel = map[split.SplitType]struct{}{
	split.SplitTypeEqual:      {},
	split.SplitTypeExact:      {},
	split.SplitTypePercentage: {},
	split.SplitTypeShares:     {},
}

func cleanDescription(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 255 {
		return "", ErrInvalidDescription
	}
	return s, nil
}
