package repository

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
	"github.com/mohammadpnp/staff-admin/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type ImportRunRepository struct {
	db *gorm.DB
}

func NewImportRunRepository(db *gorm.DB) *ImportRunRepository {
	return &ImportRunRepository{db: db}
}

func (r *ImportRunRepository) Record(ctx context.Context, run *domain.ImportRun) error {
	row := models.ImportRun{
		Source:       run.Source,
		Mode:         run.Mode,
		SourcePath:   run.SourcePath,
		Status:       run.Status,
		Processed:    run.Processed,
		Created:      run.Created,
		Resurrected:  run.Resurrected,
		ErrorMessage: run.ErrorMessage,
		StartedAt:    run.StartedAt,
		FinishedAt:   run.FinishedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("record import run: %w", err)
	}
	run.ID = row.ID
	return nil
}
