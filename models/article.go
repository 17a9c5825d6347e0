package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Article struct {
	ID         uint           `json:"id" gorm:"primarykey"`
	Title      string         `json:"title" gorm:"not null"`
	Slug       string         `json:"slug" gorm:"uniqueIndex;not null"`
	CoverImage string         `json:"coverimage" gorm:"column:coverimage"`
	Author     string         `json:"author" gorm:"not null"`
	Blocks     datatypes.JSON `json:"blocks" gorm:"type:jsonb"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
