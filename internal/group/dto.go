package group

import "strings"

const maxNameLen = 100

// CreateGroupRequest represents the request to create a new group
type CreateGroupRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsTemporary bool    `json:"is_temporary"`
}

// Validate trims the name and description in place
func (r *CreateGroupRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" || len(r.Name) > maxNameLen {
		return ErrInvalidName
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
	return nil
}

// AddMemberRequest represents the request to add a member to a group.
// Role defaults to MEMBER.
type AddMemberRequest struct {
	UserID int64      `json:"user_id"`
	Role   MemberRole `json:"role,omitempty"`
}

// Validate normalizes Role in place
func (r *AddMemberRequest) Validate() error {
	if r.UserID <= 0 {
		return ErrUnknownUser
	}
	switch MemberRole(strings.ToUpper(string(r.Role))) {
	case "", MemberRoleMember:
		r.Role = MemberRoleMember
	case MemberRoleAdmin:
		r.Role = MemberRoleAdmin
	default:
		return ErrInvalidRole
	}
	return nil
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	IsTemporary bool              `json:"is_temporary"`
	CreatedAt   string            `json:"created_at"`
	Members     []*MemberResponse `json:"members,omitempty"`
}

// MemberResponse represents a member in a group response
type MemberResponse struct {
	UserID   int64        `json:"user_id"`
	Username string       `json:"username,omitempty"`
	Email    string       `json:"email,omitempty"`
	Status   MemberStatus `json:"status"`
	Role     MemberRole   `json:"role"`
	JoinedAt string       `json:"joined_at"`
}
