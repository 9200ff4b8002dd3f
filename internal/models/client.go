package models

import "time"

// Remitente registrado en mostrador. La categoría define la tarifa:
// B = sin registro consular, G = con registro consular.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:100;not null" json:"full_name"`
	Phone    string `gorm:"size:20;not null" json:"phone"`
	Email    string `gorm:"size:100" json:"email"`
	Address  string `gorm:"size:255;not null" json:"address"`
	IDNumber string `gorm:"size:20;not null" json:"id_number"`

	Category string `gorm:"size:1;not null" json:"category"`

	ConsularRegistrationNumber string `gorm:"size:50" json:"consular_registration_number"`

	PhotoURL string `gorm:"size:500" json:"photo_url"`

	FamilyMembers []FamilyMember `gorm:"constraint:OnDelete:CASCADE;" json:"family_members"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
