package shipment

import (
	"context"

	"github.com/familyexpressec/courier-api/internal/audit"
	domain "github.com/familyexpressec/courier-api/internal/domain/shipment"
	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/models"
)

const (
	DocumentReceipt = "receipt"
	DocumentLabel   = "label"
)

// MarkPrinted marca recibo o etiqueta como impresos. Idempotente y sin
// entrada de historial: imprimir no es un evento del paquete.
type MarkPrinted struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkPrinted(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkPrinted {
	return &MarkPrinted{
		repo:  repo,
		audit: audit,
	}
}

func (uc *MarkPrinted) Execute(
	ctx context.Context,
	staffID uint,
	shipmentID uint,
	document string,
) (*models.Shipment, error) {

	sh, err := uc.repo.GetShipmentByID(ctx, shipmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("shipment_not_found")
	}

	switch document {
	case DocumentReceipt:
		domain.MarkReceiptPrinted(sh)
	case DocumentLabel:
		domain.MarkLabelPrinted(sh)
	default:
		return nil, httperr.ErrBusiness("invalid_document")
	}

	if err := uc.repo.UpdateShipment(ctx, sh); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &staffID,
			Action:   "shipment_" + document + "_printed",
			Entity:   "shipment",
			EntityID: &sh.ID,
		})
	}

	return sh, nil
}
