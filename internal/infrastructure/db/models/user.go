package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"size:190;index;not null"`
	Name         string `gorm:"size:255;not null"`
	Gender       string `gorm:"size:16;not null"`
	DepartmentID int64  `gorm:"index"`
	Department   Department
	Password     string `gorm:"size:100;not null"`
	Title        string `gorm:"size:255"`
	Mobile       string `gorm:"size:32"`
	Email        string `gorm:"size:320"`
	ADTag        int    `gorm:"column:ad_tag;not null;default:0"`
	Roles        []Role `gorm:"many2many:user_roles"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
