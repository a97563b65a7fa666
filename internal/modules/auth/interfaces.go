package auth

import (
	"context"

	"crewhub/internal/domain"
)

// UserRepositoryInterface is the slice of the user repository the auth
// service needs.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type SessionRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByTokenHash(ctx context.Context, hash string) (*domain.Session, error)
	Revoke(ctx context.Context, id int64) error
	RevokeOldestBeyond(ctx context.Context, userID int64, keep int) error
}

type tokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}
