package models

import (
	"time"

	"gorm.io/gorm"
)

type ServiceRecord struct {
	ID        int64   `gorm:"primaryKey"`
	Price     float64 `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ServiceRecord) TableName() string {
	return "service_records"
}
