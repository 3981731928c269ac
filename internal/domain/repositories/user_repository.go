package repositories

import (
	"context"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
)

// AuthRepository defines account operations. Login and Register are the
// only unauthenticated calls.
type AuthRepository interface {
	// Login exchanges credentials for a token and stores the session
	Login(ctx context.Context, req entities.LoginRequest) (*entities.LoginResponse, error)

	// Register creates an account
	Register(ctx context.Context, req entities.RegisterRequest) (*entities.RegisterResponse, error)

	// Profile returns the signed-in user as the backend sees it
	Profile(ctx context.Context) (*entities.UserInfo, error)

	// Logout clears the stored session
	Logout(ctx context.Context) error
}

// StaffRepository defines staff operations
type StaffRepository interface {
	List(ctx context.Context) ([]entities.Staff, error)
	GetByID(ctx context.Context, id int64) (*entities.Staff, error)

	// Create registers a STAFF account first and only then creates the
	// staff record
	Create(ctx context.Context, req entities.StaffRequest) (*entities.Staff, error)
	Update(ctx context.Context, id int64, req entities.StaffRequest) (*entities.Staff, error)
	Delete(ctx context.Context, id int64) error
	SearchByName(ctx context.Context, name string) ([]entities.Staff, error)
	ListByGender(ctx context.Context, gender entities.Gender) ([]entities.Staff, error)
	ListByActive(ctx context.Context, active bool) ([]entities.Staff, error)
}

// DashboardRepository defines the admin dashboard reads
type DashboardRepository interface {
	Stats(ctx context.Context) (*entities.DashboardStats, error)
	RecentActivities(ctx context.Context, limit int) ([]entities.Activity, error)
	SystemOverview(ctx context.Context) (*entities.SystemOverview, error)
}
