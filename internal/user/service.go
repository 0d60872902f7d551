package user

import (
	"context"
	"errors"
	"fmt"
)

// Common errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrInvalidUsername   = errors.New("username must be between 3 and 50 characters")
	ErrInvalidEmail      = errors.New("email is invalid")
	ErrUserHasExpenses   = errors.New("user is still part of an expense")
	ErrTooManyIDs        = fmt.Errorf("at most %d ids can be looked up at once", maxLookupIDs)
)

// Store is the persistence the user service needs
type Store interface {
	Create(ctx context.Context, req *CreateUserRequest) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, limit, offset int) ([]*User, int, error)
	Update(ctx context.Context, id int64, req *UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, id int64) error
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
}

// Service handles user business logic
type Service struct {
	repo Store
}

// NewService creates a new user service with repository dependency injected
func NewService(repo Store) *Service {
	return &Service{repo: repo}
}

// Create creates a new user
func (s *Service) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Check if email is already in use
	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyInUse
	}

	return s.repo.Create(ctx, req)
}

// GetByID retrieves a user by their ID
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List retrieves all users with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*User, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

// Update modifies an existing user
func (s *Service) Update(ctx context.Context, id int64, req *UpdateUserRequest) (*User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	return s.repo.Update(ctx, id, req)
}

// Delete removes a user
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, errNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// ExistingIDs reports which of ids belong to a stored user. Duplicates and
// non-positive ids are skipped.
func (s *Service) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	seen := make(map[int64]bool, len(ids))
	lookup := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		lookup = append(lookup, id)
	}
	return s.repo.ExistingIDs(ctx, lookup)
}

// Lookup partitions ids into known and unknown users. Each id is reported
// once, at its first position.
func (s *Service) Lookup(ctx context.Context, ids []int64) (*LookupResponse, error) {
	if len(ids) > maxLookupIDs {
		return nil, ErrTooManyIDs
	}

	found, err := s.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	resp := &LookupResponse{Known: []int64{}, Unknown: []int64{}}
	reported := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if reported[id] {
			continue
		}
		reported[id] = true
		if found[id] {
			resp.Known = append(resp.Known, id)
		} else {
			resp.Unknown = append(resp.Unknown, id)
		}
	}
	return resp, nil
}
