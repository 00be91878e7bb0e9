package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
	"github.com/mohammadpnp/staff-admin/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// GetOrCreate resolves a department by exact name, creating it on first
// reference. Lookup and insert are not atomic; concurrent imports of the
// same new name can create duplicates.
func (r *DepartmentRepository) GetOrCreate(ctx context.Context, name string) (domain.Department, error) {
	var row models.Department

	err := r.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if err == nil {
		return domain.Department{ID: row.ID, Name: row.Name}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Department{}, fmt.Errorf("find department: %w", err)
	}

	row = models.Department{Name: name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Department{}, fmt.Errorf("create department: %w", err)
	}
	return domain.Department{ID: row.ID, Name: row.Name}, nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	var rows []models.Department

	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}

	departments := make([]domain.Department, 0, len(rows))
	for _, row := range rows {
		departments = append(departments, domain.Department{ID: row.ID, Name: row.Name})
	}
	return departments, nil
}
