package ports

import (
	"context"

	"github.com/wimtiaz/user_registration_service/internal/core/domain"
)

type UserRepository interface {
	// CreateUser inserts the user and returns it with the generated id.
	// A call that succeeds without yielding a record returns (nil, nil).
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	// GetUserByID returns (nil, nil) when no user has the given id.
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	// GetUserByEmail returns (nil, nil) when no user has the given email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type UserService interface {
	Register(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
