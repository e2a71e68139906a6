package commands

import (
	"context"
	"log/slog"
	"time"

	"ezrent/internal/domain/auth"
	"ezrent/internal/domain/user"
	"ezrent/internal/infra"
	"ezrent/internal/pkg/clock"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginRequest struct {
	Email    string
	Password string
}

type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

type AuthResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Signup(ctx context.Context, req SignupRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
	ChangePassword(ctx context.Context, actor shared.Actor, req ChangePasswordRequest) error
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	hasher PasswordHasher
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, hasher PasswordHasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		hasher: hasher,
		clock:  clk,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	reg, err := auth.NewRegistration(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return nil, invalid(err)
	}

	hash, err := a.hasher.Hash(reg.Credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u := user.NewUser(reg.Name, reg.Credentials.Email(), hash, reg.Role, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, err
	}

	return a.issue(u.ID(), u.Role())
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	// Any malformed input is reported as bad credentials so the response does not reveal which part failed.
	creds, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	snap, err := a.uow.CommandReads().UserByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}

	if err = a.hasher.Compare(snap.PasswordHash, creds.Password().Value()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	slog.Info("user logged in", "user_id", snap.ID, "role", snap.Role)
	return a.issue(snap.ID, snap.Role)
}

func (a *authCommandsImpl) ChangePassword(ctx context.Context, actor shared.Actor, req ChangePasswordRequest) error {
	newPassword, err := user.NewPassword(req.NewPassword)
	if err != nil {
		return invalid(err)
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UserByID(ctx, actor.UserID)
		if derr != nil {
			return notFoundAs(derr, ErrUserNotFound)
		}
		if derr = a.hasher.Compare(snap.PasswordHash, req.CurrentPassword); derr != nil {
			return errs.Mark(derr, ErrInvalidCredentials)
		}

		hash, derr := a.hasher.Hash(newPassword.Value())
		if derr != nil {
			return errs.Wrap(derr, "hash password")
		}

		u, derr := userFromSnapshot(snap)
		if derr != nil {
			return derr
		}
		u.ChangePassword(hash, a.clock.Now())
		return tx.Users().UpdatePassword(ctx, tx.DB(), u)
	})
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*AuthResult, error) {
	token, err := a.tokens.GenerateToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{
		UserID:      userID,
		Role:        role,
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}

func userFromSnapshot(s *shared.UserSnapshot) (*user.User, error) {
	name, err := user.NewName(s.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(s.ID, name, email, s.PasswordHash, s.Role, s.CreatedAt, s.CreatedAt), nil
}
