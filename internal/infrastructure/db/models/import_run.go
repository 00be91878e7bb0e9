package models

import "time"

type ImportRun struct {
	ID           int64  `gorm:"primaryKey"`
	Source       string `gorm:"size:16;not null"`
	Mode         string `gorm:"size:16"`
	SourcePath   string `gorm:"type:text"`
	Status       string `gorm:"size:16;not null"`
	Processed    int64  `gorm:"not null;default:0"`
	Created      int64  `gorm:"not null;default:0"`
	Resurrected  int64  `gorm:"not null;default:0"`
	ErrorMessage string `gorm:"type:text"`
	StartedAt    time.Time
	FinishedAt   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ImportRun) TableName() string {
	return "import_runs"
}
