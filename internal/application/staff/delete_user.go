package staff

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
)

type DeleteUserInput struct {
	ID int64
}

type DeleteUser interface {
	Execute(ctx context.Context, in DeleteUserInput) error
}

type deleteUser struct {
	users domain.UserRepository
}

func NewDeleteUser(users domain.UserRepository) DeleteUser {
	return &deleteUser{users: users}
}

func (uc *deleteUser) Execute(ctx context.Context, in DeleteUserInput) error {
	if in.ID <= 0 {
		return ErrInvalidUserID
	}
	if in.ID == domain.DefaultAdminID {
		return ErrAdminProtected
	}

	if err := uc.users.SoftDelete(ctx, in.ID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
