package models

import "time"

// Cuenta del portal de casilleros (autoservicio web). Separada del
// registro de mostrador: aquí el cliente se crea solo y recibe su suite.
type CustomerAccount struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	FullName string `gorm:"size:100;not null" json:"full_name"`
	Phone    string `gorm:"size:20" json:"phone"`
	Province string `gorm:"size:100" json:"province"`
	City     string `gorm:"size:100" json:"city"`
	Address  string `gorm:"size:255" json:"address"`

	PhotoURL string `gorm:"size:500" json:"photo_url"`

	// Casillero virtual asignado al registrarse, p.ej. FE-48213.
	SuiteID string `gorm:"size:20;uniqueIndex;not null" json:"suite_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
