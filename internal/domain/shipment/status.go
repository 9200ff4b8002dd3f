package shipment

import "github.com/familyexpressec/courier-api/internal/httperr"

// ===============================
// Shipment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// Entregado y cancelado son estados finales.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pendiente"
	case StatusInTransit:
		return "En tránsito"
	case StatusDelivered:
		return "Entregado"
	case StatusCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}

// ===============================
// Validations
// ===============================

// CanTransition define las transiciones permitidas:
// pending → in_transit → delivered; cancelled desde pending o in_transit.
// Desde un estado final no se sale: se rechaza, no es no-op.
func CanTransition(from, to Status) error {
	if !to.IsValid() {
		return httperr.ErrBusiness("invalid_status")
	}
	if from.IsTerminal() {
		return httperr.ErrBusiness("invalid_transition")
	}

	switch to {
	case StatusInTransit:
		if from != StatusPending {
			return httperr.ErrBusiness("invalid_transition")
		}
	case StatusDelivered:
		if from != StatusInTransit {
			return httperr.ErrBusiness("invalid_transition")
		}
	case StatusCancelled:
		// pending o in_transit; los finales ya quedaron fuera arriba
	case StatusPending:
		return httperr.ErrBusiness("invalid_transition")
	}

	return nil
}
