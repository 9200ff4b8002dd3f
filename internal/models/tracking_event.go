package models

import "time"

// Entrada del historial de tracking. Append-only: nunca se edita ni se
// borra; es la bitácora que consulta el tracking público.
type TrackingEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShipmentID   uint   `gorm:"not null;index" json:"shipment_id"`
	TrackingCode string `gorm:"size:40;not null;index" json:"tracking_code"`

	Status   string `gorm:"size:20;not null" json:"status"`
	Location string `gorm:"size:100" json:"location"`
	Note     string `gorm:"size:255" json:"note"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (TrackingEvent) TableName() string {
	return "tracking_events"
}
