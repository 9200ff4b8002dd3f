package models

import "time"

// Artículo declarable del catálogo (ropa, zapatos, medicinas...).
type PackageItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Slug     string `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Icon     string `gorm:"size:10" json:"icon"`
	Category string `gorm:"size:50" json:"category"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
