package ports

import (
	"context"

	"github.com/aquasense/water-quality-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account. Role is the
// requested role string; unknown values fall back to community.
type RegisterInput struct {
	Name         string
	Email        string
	Address      string
	Telephone    string
	Password     string
	Organization string
	Role         string
}

// AuthService implements registration, login and identity lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed session token plus
	// the user. Unknown email and wrong password are indistinguishable.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, userID int64) (*domain.User, error)
}
