package models

import "time"

const (
	PreAlertStatusPending  = "pending"
	PreAlertStatusReceived = "received"
)

// Pre-alerta: el cliente avisa que un paquete viene en camino a su
// casillero. Pasa a "received" solo por el flujo de recepción en bodega.
type PreAlert struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID   uint            `gorm:"not null;index" json:"customer_id"`
	Customer     CustomerAccount `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`
	CustomerName string          `gorm:"size:100" json:"customer_name"`
	SuiteID      string          `gorm:"size:20;index" json:"suite_id"`

	Store              string `gorm:"size:100;not null" json:"store"`
	ExternalTracking   string `gorm:"size:60;not null" json:"external_tracking"`
	ContentDescription string `gorm:"size:255" json:"content_description"`
	InvoiceURL         string `gorm:"size:500" json:"invoice_url"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	ReceivedAt       *time.Time `json:"received_at"`
	WeightLb         float64    `json:"weight_lb"`
	Dimensions       string     `gorm:"size:60" json:"dimensions"`
	ReceivedPhotoURL string     `gorm:"size:500" json:"received_photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
