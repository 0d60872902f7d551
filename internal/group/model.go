package group

import "time"

// MemberStatus represents the status of a group member
type MemberStatus string

const (
	MemberStatusInvited MemberStatus = "INVITED"
	MemberStatusJoined  MemberStatus = "JOINED"
)

// MemberRole represents the role of a group member
type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "ADMIN"
	MemberRoleMember MemberRole = "MEMBER"
)

// Group is a set of users that share expenses. Only members can be payers
// or participants of the group's expenses.
type Group struct {
	ID          int64
	Name        string
	Description *string
	IsTemporary bool
	CreatedAt   time.Time
}

// GroupMember is a user's membership in a group. Invited members can
// already take part in the group's expenses.
type GroupMember struct {
	GroupID  int64
	UserID   int64
	Status   MemberStatus
	Role     MemberRole
	JoinedAt time.Time

	// Set by GetMembers only
	Username string
	Email    string
}

// IsAdmin reports whether m may manage the group's members
func (m *GroupMember) IsAdmin() bool {
	return m != nil && m.Role == MemberRoleAdmin
}

func countAdmins(members []*GroupMember) int {
	n := 0
	for _, m := range members {
		if m.IsAdmin() {
			n++
		}
	}
	return n
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		IsTemporary: g.IsTemporary,
		CreatedAt:   g.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToResponse converts a GroupMember model to a MemberResponse DTO
func (m *GroupMember) ToResponse() *MemberResponse {
	return &MemberResponse{
		UserID:   m.UserID,
		Username: m.Username,
		Email:    m.Email,
		Status:   m.Status,
		Role:     m.Role,
		JoinedAt: m.JoinedAt.UTC().Format(time.RFC3339),
	}
}
