package staff

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
)

type GetUserInput struct {
	ID int64
}

type GetUserOutput struct {
	ID         int64    `json:"id"`
	Username   string   `json:"username"`
	Name       string   `json:"name"`
	Gender     string   `json:"gender"`
	Department string   `json:"department"`
	Title      string   `json:"title,omitempty"`
	Mobile     string   `json:"mobile,omitempty"`
	Email      string   `json:"email,omitempty"`
	ADTag      int      `json:"ad_tag"`
	Roles      []string `json:"roles"`
}

type GetUser interface {
	Execute(ctx context.Context, in GetUserInput) (GetUserOutput, error)
}

type getUser struct {
	users domain.UserRepository
}

func NewGetUser(users domain.UserRepository) GetUser {
	return &getUser{users: users}
}

func (uc *getUser) Execute(ctx context.Context, in GetUserInput) (GetUserOutput, error) {
	if in.ID <= 0 {
		return GetUserOutput{}, ErrInvalidUserID
	}

	detail, err := uc.users.GetDetail(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return GetUserOutput{}, ErrUserNotFound
		}
		return GetUserOutput{}, fmt.Errorf("get user: %w", err)
	}

	return toUserOutput(*detail), nil
}

func toUserOutput(detail domain.UserDetail) GetUserOutput {
	roles := detail.Roles
	if roles == nil {
		roles = []string{}
	}
	return GetUserOutput{
		ID:         detail.ID,
		Username:   detail.Username,
		Name:       detail.Name,
		Gender:     detail.Gender,
		Department: detail.DepartmentName,
		Title:      detail.Title,
		Mobile:     detail.Mobile,
		Email:      detail.Email,
		ADTag:      detail.ADTag,
		Roles:      roles,
	}
}
