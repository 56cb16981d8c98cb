package model

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	Id          string                      `gorm:"type:varchar(64);primaryKey"`
	Category    string                      `gorm:"type:varchar(32);not null;index"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	Type        string                      `gorm:"type:varchar(64);not null"`
	Format      string                      `gorm:"type:varchar(64);not null"`
	Thc         float64                     `gorm:"not null"`
	Cbd         float64                     `gorm:"not null"`
	Effects     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Mood        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Conditions  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Slang       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Description string                      `gorm:"type:text"`
	Rating      float64                     `gorm:"not null;default:0"`
	Reviews     int                         `gorm:"not null;default:0"`
	Price       float64                     `gorm:"not null;default:0"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
