package staff

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
)

// SelectUsers backs select widgets: id/text pairs matched by display name.

type SelectUsers interface {
	Execute(ctx context.Context, query string) ([]domain.SelectOption, error)
}

type selectUsers struct {
	users domain.UserRepository
}

func NewSelectUsers(users domain.UserRepository) SelectUsers {
	return &selectUsers{users: users}
}

func (uc *selectUsers) Execute(ctx context.Context, query string) ([]domain.SelectOption, error) {
	options, err := uc.users.SelectList(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	if options == nil {
		options = []domain.SelectOption{}
	}
	return options, nil
}
