// Package transport defines request/response DTOs for the profiles module.
package transport

// CreateRepRequest registers a profile row for an auth-provider user.
type CreateRepRequest struct {
	ID       string `json:"id" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=rep admin"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
}

// UpdateRepRequest is a partial update of a rep profile.
type UpdateRepRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=1,max=200"`
	Role     *string `json:"role" validate:"omitempty,oneof=rep admin"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
}

// ToggleActiveRequest sets the active flag on a profile.
type ToggleActiveRequest struct {
	Active bool `json:"active"`
}
