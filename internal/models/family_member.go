package models

import "time"

// Familiar / destinatario en Ecuador, siempre ligado a un cliente.
// No existe fuera de su cliente: se crea y se borra a través de él.
type FamilyMember struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"not null;index" json:"client_id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Relationship string `gorm:"size:30;not null" json:"relationship"`
	EcuadorianID string `gorm:"size:20;not null" json:"ecuadorian_id"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
	Address      string `gorm:"size:255;not null" json:"address"`
	City         string `gorm:"size:100;not null" json:"city"`
	Province     string `gorm:"size:100;not null" json:"province"`

	IDPhotoFrontURL string `gorm:"size:500" json:"id_photo_front_url"`
	IDPhotoBackURL  string `gorm:"size:500" json:"id_photo_back_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FamilyMember) TableName() string {
	return "family_members"
}
