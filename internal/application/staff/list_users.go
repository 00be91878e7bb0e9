package staff

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

type ListUsersInput struct {
	Query        string
	DepartmentID int64
	Page         int
	PageSize     int
}

type ListUsersOutput struct {
	Users    []GetUserOutput `json:"users"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

type ListUsers interface {
	Execute(ctx context.Context, in ListUsersInput) (ListUsersOutput, error)
}

type listUsers struct {
	users domain.UserRepository
}

func NewListUsers(users domain.UserRepository) ListUsers {
	return &listUsers{users: users}
}

func (uc *listUsers) Execute(ctx context.Context, in ListUsersInput) (ListUsersOutput, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.PageSize <= 0 {
		in.PageSize = defaultPageSize
	}
	if in.PageSize > maxPageSize {
		in.PageSize = maxPageSize
	}

	details, total, err := uc.users.List(ctx, domain.UserListFilter{
		Query:        in.Query,
		DepartmentID: in.DepartmentID,
		Page:         in.Page,
		PageSize:     in.PageSize,
	})
	if err != nil {
		return ListUsersOutput{}, fmt.Errorf("list users: %w", err)
	}

	out := ListUsersOutput{
		Users:    make([]GetUserOutput, 0, len(details)),
		Total:    total,
		Page:     in.Page,
		PageSize: in.PageSize,
	}
	for _, detail := range details {
		out.Users = append(out.Users, toUserOutput(detail))
	}
	return out, nil
}
