package dto

import (
	"time"

	"github.com/familyexpressec/courier-api/internal/models"
)

// ShipmentSummary es la fila que ve el mostrador en los listados: lo
// justo para ubicar el paquete sin cargar el detalle completo.
type ShipmentSummary struct {
	ID           uint   `json:"id"`
	TrackingCode string `json:"tracking_code"`

	ClientID   uint   `json:"client_id"`
	ClientName string `json:"client_name"`

	RecipientName string `json:"recipient_name"`
	DestCity      string `json:"destination_city"`

	Category string  `json:"category"`
	WeightLb float64 `json:"weight_lb"`

	Total  float64 `json:"total"`
	Paid   bool    `json:"paid"`
	Status string  `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

func NewShipmentSummary(sh models.Shipment) ShipmentSummary {
	return ShipmentSummary{
		ID:           sh.ID,
		TrackingCode: sh.TrackingCode,

		ClientID:   sh.ClientID,
		ClientName: sh.ClientName,

		RecipientName: sh.Recipient.Name,
		DestCity:      sh.Recipient.City,

		Category: sh.Category,
		WeightLb: sh.WeightLb,

		Total:  sh.Costs.Total,
		Paid:   sh.Payment.Paid,
		Status: sh.Status,

		CreatedAt: sh.CreatedAt,
	}
}

func NewShipmentSummaries(shipments []models.Shipment) []ShipmentSummary {
	out := make([]ShipmentSummary, 0, len(shipments))
	for _, sh := range shipments {
		out = append(out, NewShipmentSummary(sh))
	}
	return out
}
