package models

import "time"

// Destinatario congelado al momento del despacho. Es una copia, no una
// referencia: editar al familiar después no cambia envíos históricos.
type RecipientSnapshot struct {
	Name     string `gorm:"size:100" json:"name"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	City     string `gorm:"size:100" json:"city"`
	Province string `gorm:"size:100" json:"province"`
	IDNumber string `gorm:"size:20" json:"id_number"`
}

type CostBreakdown struct {
	Shipping   float64 `json:"shipping"`
	CourierTax float64 `json:"courier_tax"`
	Fodinfa    float64 `json:"fodinfa"`
	Total      float64 `json:"total"`
}

type PaymentRecord struct {
	Amount float64 `json:"amount"`
	Method string  `gorm:"size:20" json:"method"`
	Paid   bool    `gorm:"default:false" json:"paid"`

	PaidAt *time.Time `json:"paid_at"`

	ReceiptPrinted bool `gorm:"default:false" json:"receipt_printed"`
	LabelPrinted   bool `gorm:"default:false" json:"label_printed"`
}

type Shipment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TrackingCode string `gorm:"size:40;uniqueIndex;not null" json:"tracking_code"`

	ClientID   uint   `gorm:"not null;index" json:"client_id"`
	Client     Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`
	ClientName string `gorm:"size:100" json:"client_name"`

	Category string `gorm:"size:1;not null" json:"category"`

	Recipient RecipientSnapshot `gorm:"embedded;embeddedPrefix:recipient_" json:"recipient"`

	Items         []string `gorm:"serializer:json;type:text" json:"items"`
	DeclaredValue float64  `gorm:"not null" json:"declared_value"`
	WeightLb      float64  `json:"weight_lb"`

	Costs   CostBreakdown `gorm:"embedded;embeddedPrefix:cost_" json:"costs"`
	Payment PaymentRecord `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	// Origen casillero: seteados cuando el envío nace de una pre-alerta.
	// CustomerID liga el envío a la cuenta del portal para su dashboard.
	PreAlertID       *uint  `json:"pre_alert_id"`
	CustomerID       *uint  `gorm:"index" json:"customer_id"`
	ReceivedPhotoURL string `gorm:"size:500" json:"received_photo_url"`

	DeliveredAt *time.Time `json:"delivered_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
