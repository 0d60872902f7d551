package group

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("user is already a member of this group")
	ErrNotAuthorized       = errors.New("not authorized to perform this action")
	ErrInvalidName         = errors.New("group name must be between 1 and 100 characters")
	ErrLastAdmin           = errors.New("the last admin cannot leave the group")
	ErrInvalidRole         = errors.New("role must be ADMIN or MEMBER")
	ErrUnknownUser         = errors.New("user does not exist")
)

// Store is the persistence the group service needs
type Store interface {
	CreateWithAdmin(ctx context.Context, creatorID int64, req *CreateGroupRequest) (*Group, error)
	GetByID(ctx context.Context, id int64) (*Group, error)
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*Group, int, error)
	AddMember(ctx context.Context, groupID, userID int64, role MemberRole) (*GroupMember, error)
	GetMembers(ctx context.Context, groupID int64) ([]*GroupMember, error)
	GetMember(ctx context.Context, groupID, userID int64) (*GroupMember, error)
	MemberIDs(ctx context.Context, groupID int64) ([]int64, error)
	RemoveMember(ctx context.Context, groupID, userID int64) (bool, error)
}

// Service handles group business logic
type Service struct {
	repo Store
}

// NewService creates a new group service
func NewService(repo Store) *Service {
	return &Service{repo: repo}
}

// Create creates a new group with the creator as its joined admin
func (s *Service) Create(ctx context.Context, creatorID int64, req *CreateGroupRequest) (*Group, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateWithAdmin(ctx, creatorID, req)
}

// GetByID retrieves a group by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Group, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// GetByIDWithMembers retrieves a group with all its members
func (s *Service) GetByIDWithMembers(ctx context.Context, id int64) (*Group, []*GroupMember, error) {
	group, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return group, members, nil
}

// ListByUserID retrieves all groups for a user
func (s *Service) ListByUserID(ctx context.Context, userID int64, page, perPage int) ([]*Group, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByUserID(ctx, userID, perPage, offset)
}

// AddMember invites a user to a group. Only admins may add members.
func (s *Service) AddMember(ctx context.Context, actorID, groupID int64, req *AddMemberRequest) (*GroupMember, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	if err := s.requireAdmin(ctx, groupID, actorID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetMember(ctx, groupID, req.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMemberAlreadyExists
	}

	return s.repo.AddMember(ctx, groupID, req.UserID, req.Role)
}

// RemoveMember removes a user from a group. Admins may remove anyone; other
// members may only remove themselves.
func (s *Service) RemoveMember(ctx context.Context, actorID, groupID, userID int64) error {
	if _, err := s.GetByID(ctx, groupID); err != nil {
		return err
	}
	if actorID != userID {
		if err := s.requireAdmin(ctx, groupID, actorID); err != nil {
			return err
		}
	}

	target, err := s.repo.GetMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrMemberNotFound
	}

	if target.IsAdmin() {
		members, err := s.repo.GetMembers(ctx, groupID)
		if err != nil {
			return err
		}
		if countAdmins(members) <= 1 {
			return ErrLastAdmin
		}
	}

	removed, err := s.repo.RemoveMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrMemberNotFound
	}
	return nil
}

// MemberIDs returns the user IDs belonging to a group, or ErrGroupNotFound
func (s *Service) MemberIDs(ctx context.Context, groupID int64) ([]int64, error) {
	if _, err := s.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.repo.MemberIDs(ctx, groupID)
}

func (s *Service) requireAdmin(ctx context.Context, groupID, userID int64) error {
	member, err := s.repo.GetMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !member.IsAdmin() {
		return ErrNotAuthorized
	}
	return nil
}
