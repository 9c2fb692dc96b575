package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/you/hello-users/internal/domain"
	"github.com/you/hello-users/internal/repository"
)

var ErrQueryFailed = errors.New("query failed")

type UsersUsecase struct {
	Repo         repository.UserRepo
	QueryTimeout time.Duration
}

func NewUsersUsecase(r repository.UserRepo, queryTimeout time.Duration) *UsersUsecase {
	return &UsersUsecase{Repo: r, QueryTimeout: queryTimeout}
}

// ListUsers returns every user. An empty table yields an empty slice and
// no error.
func (u *UsersUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	users, err := u.Repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Ping reports whether the store is reachable within the query timeout.
func (u *UsersUsecase) Ping(ctx context.Context) error {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()
	return u.Repo.Ping(ctx)
}

func (u *UsersUsecase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.QueryTimeout)
}
