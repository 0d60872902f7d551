package group

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const (
	groupColumns  = `id, name, description, is_temporary, created_at`
	memberColumns = `group_id, user_id, status, role, joined_at`

	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// Repository handles group data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGroup(row rowScanner) (*Group, error) {
	g := &Group{}
	if err := row.Scan(&g.ID, &g.Name, &g.Description, &g.IsTemporary, &g.CreatedAt); err != nil {
		return nil, err
	}
	return g, nil
}

// scanMember reads memberColumns followed by any extra destinations
func scanMember(row rowScanner, extra ...any) (*GroupMember, error) {
	m := &GroupMember{}
	dest := append([]any{&m.GroupID, &m.UserID, &m.Status, &m.Role, &m.JoinedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return m, nil
}

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

// CreateWithAdmin inserts a group and its creator as a joined admin in one
// transaction.
func (r *Repository) CreateWithAdmin(ctx context.Context, creatorID int64, req *CreateGroupRequest) (*Group, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	g, err := scanGroup(tx.QueryRowContext(ctx, `
		INSERT INTO groups (name, description, is_temporary)
		VALUES ($1, $2, $3)
		RETURNING `+groupColumns,
		req.Name, req.Description, req.IsTemporary))
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO group_members (group_id, user_id, status, role)
		VALUES ($1, $2, $3, $4)`,
		g.ID, creatorID, MemberStatusJoined, MemberRoleAdmin); err != nil {
		if pqCode(err) == pqForeignKeyViolation {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("failed to add group admin: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit group: %w", err)
	}
	return g, nil
}

// GetByID returns nil, nil when the group does not exist
func (r *Repository) GetByID(ctx context.Context, id int64) (*Group, error) {
	g, err := scanGroup(r.db.QueryRowContext(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return g, nil
}

// ListByUserID retrieves the groups a user belongs to, newest first
func (r *Repository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*Group, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM group_members WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count groups: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.name, g.description, g.is_temporary, g.created_at
		FROM groups g
		JOIN group_members gm ON g.id = gm.group_id
		WHERE gm.user_id = $1
		ORDER BY g.created_at DESC, g.id DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	groups := make([]*Group, 0, limit)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, total, rows.Err()
}

// AddMember inserts an invited member. The unique (group_id, user_id)
// constraint and the users foreign key surface as ErrMemberAlreadyExists and
// ErrUnknownUser.
func (r *Repository) AddMember(ctx context.Context, groupID, userID int64, role MemberRole) (*GroupMember, error) {
	m, err := scanMember(r.db.QueryRowContext(ctx, `
		INSERT INTO group_members (group_id, user_id, status, role)
		VALUES ($1, $2, $3, $4)
		RETURNING `+memberColumns,
		groupID, userID, MemberStatusInvited, role))
	if err != nil {
		switch pqCode(err) {
		case pqUniqueViolation:
			return nil, ErrMemberAlreadyExists
		case pqForeignKeyViolation:
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	return m, nil
}

// GetMembers retrieves all members of a group in join order
func (r *Repository) GetMembers(ctx context.Context, groupID int64) ([]*GroupMember, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT gm.group_id, gm.user_id, gm.status, gm.role, gm.joined_at, u.username, u.email
		FROM group_members gm
		JOIN users u ON gm.user_id = u.id
		WHERE gm.group_id = $1
		ORDER BY gm.joined_at, gm.id`,
		groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*GroupMember
	for rows.Next() {
		var username, email string
		m, err := scanMember(rows, &username, &email)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.Username, m.Email = username, email
		members = append(members, m)
	}
	return members, rows.Err()
}

// GetMember returns nil, nil when userID is not in the group
func (r *Repository) GetMember(ctx context.Context, groupID, userID int64) (*GroupMember, error) {
	m, err := scanMember(r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+`
		FROM group_members
		WHERE group_id = $1 AND user_id = $2`,
		groupID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return m, nil
}

// MemberIDs returns the user IDs of every member of a group
func (r *Repository) MemberIDs(ctx context.Context, groupID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id FROM group_members WHERE group_id = $1`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan member id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RemoveMember deletes a membership. It reports whether a row was removed.
func (r *Repository) RemoveMember(ctx context.Context, groupID, userID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`, groupID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to remove member: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}
