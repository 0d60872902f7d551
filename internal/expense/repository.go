package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/expensesplit/internal/expense/split"
)

const expenseColumns = `e.id, e.group_id, e.payer_id, e.created_by, e.description, e.amount,
	e.image_url, e.split_type, e.created_at, e.updated_at, u.username`

// Repository handles expense and participant persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an expense and its participant rows in one transaction and
// returns the new expense ID.
func (r *Repository) Create(ctx context.Context, e *Expense, participants []*Participant) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO expenses (group_id, payer_id, created_by, description, amount, image_url, split_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, e.GroupID, e.PayerID, e.CreatedBy, e.Description, e.Amount, e.ImageURL, string(e.SplitType)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create expense: %w", err)
	}

	if err := insertParticipants(ctx, tx, id, participants); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit expense: %w", err)
	}

	return id, nil
}

// Update rewrites an expense and replaces its participant rows in one
// transaction. It reports whether the expense existed.
func (r *Repository) Update(ctx context.Context, e *Expense, participants []*Participant) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE expenses
		SET payer_id = $2, description = $3, amount = $4, image_url = $5, split_type = $6, updated_at = NOW()
		WHERE id = $1
	`, e.ID, e.PayerID, e.Description, e.Amount, e.ImageURL, string(e.SplitType))
	if err != nil {
		return false, fmt.Errorf("failed to update expense: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM expense_participants WHERE expense_id = $1`, e.ID); err != nil {
		return false, fmt.Errorf("failed to clear participants: %w", err)
	}

	if err := insertParticipants(ctx, tx, e.ID, participants); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit expense: %w", err)
	}

	return true, nil
}

func insertParticipants(ctx context.Context, tx *sql.Tx, expenseID int64, participants []*Participant) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO expense_participants (expense_id, user_id, position, amount_owed, percentage, exact_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare participant insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range participants {
		_, err := stmt.ExecContext(ctx, expenseID, p.UserID, i, p.AmountOwed, nullDecimal(p.Percentage), nullDecimal(p.ExactAmount))
		if err != nil {
			return fmt.Errorf("failed to insert participant %d: %w", p.UserID, err)
		}
	}
	return nil
}

// GetByID retrieves an expense by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN users u ON e.payer_id = u.id
		WHERE e.id = $1
	`

	expense, err := scanExpense(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// GetParticipants retrieves the participant rows of an expense in the order
// they were computed
func (r *Repository) GetParticipants(ctx context.Context, expenseID int64) ([]*Participant, error) {
	query := `
		SELECT p.expense_id, p.user_id, p.amount_owed, p.percentage, p.exact_amount, u.username
		FROM expense_participants p
		JOIN users u ON p.user_id = u.id
		WHERE p.expense_id = $1
		ORDER BY p.position
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []*Participant
	for rows.Next() {
		p := &Participant{}
		var percentage, exact decimal.NullDecimal
		if err := rows.Scan(
			&p.ExpenseID,
			&p.UserID,
			&p.AmountOwed,
			&percentage,
			&exact,
			&p.Username,
		); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		p.Percentage = decimalPtr(percentage)
		p.ExactAmount = decimalPtr(exact)
		participants = append(participants, p)
	}

	return participants, rows.Err()
}

// ListByGroupID retrieves a page of a group's expenses, newest first
func (r *Repository) ListByGroupID(ctx context.Context, groupID int64, limit, offset int) ([]*Expense, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses WHERE group_id = $1`, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN users u ON e.payer_id = u.id
		WHERE e.group_id = $1
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	return expenses, total, rows.Err()
}

// Delete removes an expense; participant rows cascade. It reports whether
// a row was removed.
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*Expense, error) {
	e := &Expense{}
	var groupID sql.NullInt64
	var splitType string
	if err := row.Scan(
		&e.ID,
		&groupID,
		&e.PayerID,
		&e.CreatedBy,
		&e.Description,
		&e.Amount,
		&e.ImageURL,
		&splitType,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.PayerUsername,
	); err != nil {
		return nil, err
	}
	if groupID.Valid {
		e.GroupID = &groupID.Int64
	}
	e.SplitType = split.SplitType(splitType)
	return e, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
