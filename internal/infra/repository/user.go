package repository

import (
	"context"

	"ezrent/internal/domain/user"
	"ezrent/internal/infra"
	"ezrent/internal/infra/repository/converter"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	UpdateUserPassword(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserPasswordParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUserPassword(ctx, tx, sqlc.UpdateUserPasswordParams{
		ID:           u.ID(),
		PasswordHash: u.PasswordHash(),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
