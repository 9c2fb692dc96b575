package repository

import (
	"context"

	"github.com/you/hello-users/internal/domain"
)

type UserRepo interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	Ping(ctx context.Context) error
}
