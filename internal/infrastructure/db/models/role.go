package models

import "time"

type Role struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:120;not null"`
	Slug      string `gorm:"size:120;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Role) TableName() string {
	return "roles"
}

type Permission struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:120;not null"`
	Slug      string `gorm:"size:120;uniqueIndex;not null"`
	ParentID  int64  `gorm:"index;not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Permission) TableName() string {
	return "permissions"
}
