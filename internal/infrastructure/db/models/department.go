package models

import "time"

type Department struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:255;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Department) TableName() string {
	return "departments"
}
