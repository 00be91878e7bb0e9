package staff

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
)

type CreateUserInput struct {
	Username     string `json:"username"`
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	DepartmentID int64  `json:"department_id"`
	Password     string `json:"password"`
	Title        string `json:"title"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
}

type CreateUserOutput struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type CreateUser interface {
	Execute(ctx context.Context, in CreateUserInput) (CreateUserOutput, error)
}

type createUser struct {
	users  domain.UserRepository
	hasher domain.PasswordHasher
}

func NewCreateUser(users domain.UserRepository, hasher domain.PasswordHasher) CreateUser {
	return &createUser{users: users, hasher: hasher}
}

func (uc *createUser) Execute(ctx context.Context, in CreateUserInput) (CreateUserOutput, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Gender) == "" || in.Password == "" {
		return CreateUserOutput{}, ErrInvalidInput
	}

	match, err := uc.users.FindByUsernameAnyState(ctx, username)
	if err != nil {
		return CreateUserOutput{}, fmt.Errorf("check username: %w", err)
	}
	if match.State != domain.MatchNone {
		return CreateUserOutput{}, ErrUsernameTaken
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return CreateUserOutput{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		Username:     username,
		Name:         strings.TrimSpace(in.Name),
		Gender:       strings.TrimSpace(in.Gender),
		DepartmentID: in.DepartmentID,
		PasswordHash: hash,
		Title:        strings.TrimSpace(in.Title),
		Mobile:       strings.TrimSpace(in.Mobile),
		Email:        strings.TrimSpace(in.Email),
	}
	if err := uc.users.Create(ctx, &user); err != nil {
		return CreateUserOutput{}, fmt.Errorf("create user: %w", err)
	}

	return CreateUserOutput{ID: user.ID, Username: user.Username}, nil
}
