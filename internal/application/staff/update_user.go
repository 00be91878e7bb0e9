package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
)

type UpdateUserInput struct {
	ID           int64  `json:"-"`
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	DepartmentID int64  `json:"department_id"`
	Password     string `json:"password"`
	Title        string `json:"title"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
}

type UpdateUser interface {
	Execute(ctx context.Context, in UpdateUserInput) error
}

type updateUser struct {
	users  domain.UserRepository
	hasher domain.PasswordHasher
}

func NewUpdateUser(users domain.UserRepository, hasher domain.PasswordHasher) UpdateUser {
	return &updateUser{users: users, hasher: hasher}
}

func (uc *updateUser) Execute(ctx context.Context, in UpdateUserInput) error {
	if in.ID <= 0 {
		return ErrInvalidUserID
	}

	detail, err := uc.users.GetDetail(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}

	user := detail.User
	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	if gender := strings.TrimSpace(in.Gender); gender != "" {
		user.Gender = gender
	}
	if in.DepartmentID > 0 {
		user.DepartmentID = in.DepartmentID
	}
	if title := strings.TrimSpace(in.Title); title != "" {
		user.Title = title
	}
	if mobile := strings.TrimSpace(in.Mobile); mobile != "" {
		user.Mobile = mobile
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		user.Email = email
	}

	// The stored hash is kept unless a new password is submitted.
	if in.Password != "" {
		hash, err := uc.hasher.Hash(in.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := uc.users.Update(ctx, &user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
