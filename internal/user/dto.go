package user

import "strings"

const (
	minUsernameLen = 3
	maxUsernameLen = 50

	// maxLookupIDs bounds a single POST /users/lookup
	maxLookupIDs = 200
)

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Normalize trims the fields and lower-cases the email.
func (r *CreateUserRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Validate expects a normalized request
func (r *CreateUserRequest) Validate() error {
	if !validUsername(r.Username) {
		return ErrInvalidUsername
	}
	at := strings.Index(r.Email, "@")
	if at < 1 || at == len(r.Email)-1 {
		return ErrInvalidEmail
	}
	return nil
}

// UpdateUserRequest represents the request body for updating a user.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Validate trims Username in place and checks its length
func (r *UpdateUserRequest) Validate() error {
	if r.Username == nil {
		return nil
	}
	name := strings.TrimSpace(*r.Username)
	if !validUsername(name) {
		return ErrInvalidUsername
	}
	r.Username = &name
	return nil
}

func validUsername(name string) bool {
	return len(name) >= minUsernameLen && len(name) <= maxUsernameLen
}

// LookupRequest asks which of IDs belong to existing users
type LookupRequest struct {
	IDs []int64 `json:"ids"`
}

// LookupResponse splits the requested ids into known and unknown, in request order
type LookupResponse struct {
	Known   []int64 `json:"known"`
	Unknown []int64 `json:"unknown"`
}

// UserResponse represents the response for a single user
type UserResponse struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	CreatedAt string  `json:"created_at"`
}
