package employee

import "context"

// ProfileRepository - interface for employee_profiles table
type ProfileRepository interface {
	Create(ctx context.Context, profile Profile) (Profile, error)
	GetByID(ctx context.Context, id string) (Profile, error)
	GetByUserID(ctx context.Context, userID string) (Profile, error)
	Update(ctx context.Context, req UpdateProfileRequest) error
	SetManager(ctx context.Context, profileID string, managerID *string) error
	Search(ctx context.Context, filter DirectoryFilter) ([]Profile, int64, error)
	ListByManager(ctx context.Context, managerID string) ([]Profile, error)
}
