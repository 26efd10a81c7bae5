package ports

import (
	"context"

	"github.com/showcatalog/catalog-api/internal/core/domain"
)

type AuthService interface {
	// Authenticate verifies credentials and returns the matching user
	// regardless of activation state. Callers decide what an inactive
	// account is allowed to do.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	// Login authenticates, refuses inactive accounts, and mints a signed
	// access token for the user.
	Login(ctx context.Context, username, password string) (string, error)
	// Signup registers a new, inactive account.
	Signup(ctx context.Context, username, password string) (*domain.User, error)
}
