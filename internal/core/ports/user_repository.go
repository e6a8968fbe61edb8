package ports

import (
	"context"

	"github.com/aquasense/water-quality-api/internal/core/domain"
)

// RoleUserStats is one row of the per-role user aggregate.
type RoleUserStats struct {
	Role             string  `json:"role"`
	UserCount        int64   `json:"user_count"`
	AvgDaysSinceJoin float64 `json:"avg_days_since_join"`
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with ID and CreatedAt set.
	// A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// RoleStatistics returns user count and average account age in days,
	// grouped by role.
	RoleStatistics(ctx context.Context) ([]RoleUserStats, error)
}
