package repository

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
	"github.com/mohammadpnp/staff-admin/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	var rows []models.Role

	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	roles := make([]domain.Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, domain.Role{ID: row.ID, Name: row.Name, Slug: row.Slug})
	}
	return roles, nil
}

func (r *RoleRepository) ListPermissions(ctx context.Context) ([]domain.Permission, error) {
	var rows []models.Permission

	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}

	permissions := make([]domain.Permission, 0, len(rows))
	for _, row := range rows {
		permissions = append(permissions, domain.Permission{
			ID:       row.ID,
			Name:     row.Name,
			Slug:     row.Slug,
			ParentID: row.ParentID,
		})
	}
	return permissions, nil
}
