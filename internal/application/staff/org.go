package staff

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
)

// Read-only organization listings backing the department/role/permission
// tabs. No mutation surface is exposed here.

type DepartmentOutput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RoleOutput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type PermissionOutput struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID int64  `json:"parent_id"`
}

type ListDepartments interface {
	Execute(ctx context.Context) ([]DepartmentOutput, error)
}

type ListRoles interface {
	Execute(ctx context.Context) ([]RoleOutput, error)
}

type ListPermissions interface {
	Execute(ctx context.Context) ([]PermissionOutput, error)
}

type listDepartments struct {
	departments domain.DepartmentRepository
}

func NewListDepartments(departments domain.DepartmentRepository) ListDepartments {
	return &listDepartments{departments: departments}
}

func (uc *listDepartments) Execute(ctx context.Context) ([]DepartmentOutput, error) {
	departments, err := uc.departments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	out := make([]DepartmentOutput, 0, len(departments))
	for _, department := range departments {
		out = append(out, DepartmentOutput{ID: department.ID, Name: department.Name})
	}
	return out, nil
}

type listRoles struct {
	roles domain.RoleRepository
}

func NewListRoles(roles domain.RoleRepository) ListRoles {
	return &listRoles{roles: roles}
}

func (uc *listRoles) Execute(ctx context.Context) ([]RoleOutput, error) {
	roles, err := uc.roles.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	out := make([]RoleOutput, 0, len(roles))
	for _, role := range roles {
		out = append(out, RoleOutput{ID: role.ID, Name: role.Name, Slug: role.Slug})
	}
	return out, nil
}

type listPermissions struct {
	roles domain.RoleRepository
}

func NewListPermissions(roles domain.RoleRepository) ListPermissions {
	return &listPermissions{roles: roles}
}

func (uc *listPermissions) Execute(ctx context.Context) ([]PermissionOutput, error) {
	permissions, err := uc.roles.ListPermissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	out := make([]PermissionOutput, 0, len(permissions))
	for _, permission := range permissions {
		out = append(out, PermissionOutput{
			ID:       permission.ID,
			Name:     permission.Name,
			Slug:     permission.Slug,
			ParentID: permission.ParentID,
		})
	}
	return out, nil
}
