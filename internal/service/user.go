package service

import (
	"context"
	"fmt"
	"log/slog"

	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/store"
)

type UserService interface {
	Get(ctx context.Context, userID int64) (*model.User, error)
	SetRole(ctx context.Context, actor *model.Actor, userID int64, role model.Role) (*model.User, error)
	ListByRole(ctx context.Context, actor *model.Actor, role model.Role) ([]model.User, error)
	ListEditorialStaff(ctx context.Context) ([]model.User, error)
}

type userService struct {
	userStore store.UserStore
}

func NewUserService(userStore store.UserStore) UserService {
	return &userService{userStore: userStore}
}

func (s *userService) Get(ctx context.Context, userID int64) (*model.User, error) {
	return s.userStore.GetByID(ctx, userID)
}

func (s *userService) SetRole(ctx context.Context, actor *model.Actor, userID int64, role model.Role) (*model.User, error) {
	if !actor.Role.AtLeast(model.RoleAdmin) {
		return nil, ErrForbidden
	}
	if !role.Valid() {
		verr := newValidationError()
		verr.add("role", "unknown role")
		return nil, verr
	}
	// Nobody grants a role above their own.
	if role.Level() > actor.Role.Level() {
		return nil, ErrForbidden
	}

	user, err := s.userStore.SetRole(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("setting role: %w", err)
	}

	slog.InfoContext(ctx, "user role changed",
		"user_id", userID,
		"role", role,
		"changed_by", actor.ID)
	return user, nil
}

func (s *userService) ListByRole(ctx context.Context, actor *model.Actor, role model.Role) ([]model.User, error) {
	if !actor.Role.IsEditorial() {
		return nil, ErrForbidden
	}
	return s.userStore.ListByRole(ctx, role)
}

func (s *userService) ListEditorialStaff(ctx context.Context) ([]model.User, error) {
	return s.userStore.ListEditorialStaff(ctx)
}
