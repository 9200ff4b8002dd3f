package shipment

import (
	"time"

	"github.com/familyexpressec/courier-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition cambia el estado y devuelve la entrada de historial que ese
// cambio genera: exactamente una por transición. El que llama persiste
// ambos.
func Transition(sh *models.Shipment, to Status, location, note string, now time.Time) (*models.TrackingEvent, error) {
	if err := CanTransition(Status(sh.Status), to); err != nil {
		return nil, err
	}

	sh.Status = string(to)

	switch to {
	case StatusDelivered:
		sh.DeliveredAt = &now
	case StatusCancelled:
		sh.CancelledAt = &now
	}

	return NewEvent(sh, to, location, note, now), nil
}

func NewEvent(sh *models.Shipment, status Status, location, note string, at time.Time) *models.TrackingEvent {
	return &models.TrackingEvent{
		ShipmentID:   sh.ID,
		TrackingCode: sh.TrackingCode,
		Status:       string(status),
		Location:     location,
		Note:         note,
		CreatedAt:    at,
	}
}

// Los flags de impresión son idempotentes e independientes del estado;
// no generan historial.

func MarkReceiptPrinted(sh *models.Shipment) {
	sh.Payment.ReceiptPrinted = true
}

func MarkLabelPrinted(sh *models.Shipment) {
	sh.Payment.LabelPrinted = true
}
