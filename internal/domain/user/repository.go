package user

import "context"

// UserRepository - interface for users table
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context, filter ListFilter) ([]User, int64, error)
	UpdateRole(ctx context.Context, id string, role Role) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	SetActive(ctx context.Context, id string, active bool) error
}
