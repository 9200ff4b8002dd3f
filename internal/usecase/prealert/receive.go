package prealert

import (
	"context"

	"github.com/familyexpressec/courier-api/internal/audit"
	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/models"
	"github.com/familyexpressec/courier-api/internal/timezone"
	shipmentuc "github.com/familyexpressec/courier-api/internal/usecase/shipment"
)

// ======================================================
// INPUT
// ======================================================

// ReceiveInput es lo que bodega digita al recibir el paquete: el peso
// real en balanza más los datos de facturación y destino que el aviso
// del cliente no trae.
type ReceiveInput struct {
	// Cliente de mostrador al que se factura el envío.
	ClientID       uint
	FamilyMemberID *uint
	Recipient      shipmentuc.RecipientInput

	Category      string
	Items         []string
	DeclaredValue float64

	WeightLb   float64
	Dimensions string

	ReceivedPhotoURL string

	PaymentMethod string
	PaymentAmount *float64
}

// ======================================================
// GUARD
// ======================================================

// CanReceive permite recibir solo pre-alertas pendientes: recibir dos
// veces duplicaría el envío y el cobro.
func CanReceive(alert *models.PreAlert) error {
	if alert.Status != models.PreAlertStatusPending {
		return httperr.ErrBusiness("pre_alert_already_received")
	}
	return nil
}

// ======================================================
// USE CASE
// ======================================================

// Receive convierte una pre-alerta pendiente en un envío real: marca el
// aviso como recibido y registra el paquete con su foto de bodega.
type Receive struct {
	repo      Repository
	shipments *shipmentuc.CreateShipment
	audit     *audit.Dispatcher
}

func NewReceive(
	repo Repository,
	shipments *shipmentuc.CreateShipment,
	audit *audit.Dispatcher,
) *Receive {
	return &Receive{
		repo:      repo,
		shipments: shipments,
		audit:     audit,
	}
}

func (uc *Receive) Execute(
	ctx context.Context,
	staffID uint,
	preAlertID uint,
	in ReceiveInput,
) (*models.PreAlert, *models.Shipment, error) {

	alert, err := uc.repo.GetPreAlertByID(ctx, preAlertID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("pre_alert_not_found")
	}

	if err := CanReceive(alert); err != nil {
		return nil, nil, err
	}

	if in.WeightLb <= 0 {
		return nil, nil, httperr.ErrValidation([]string{"Peso recibido debe ser mayor a 0"})
	}

	// El envío nace del flujo normal de mostrador; lo propio del
	// casillero viaja en PreAlertID y la foto de recepción.
	sh, err := uc.shipments.Execute(ctx, staffID, shipmentuc.CreateShipmentInput{
		ClientID:       in.ClientID,
		FamilyMemberID: in.FamilyMemberID,
		Recipient:      in.Recipient,

		Category:      in.Category,
		Items:         in.Items,
		DeclaredValue: in.DeclaredValue,
		WeightLb:      in.WeightLb,

		PaymentMethod: in.PaymentMethod,
		PaymentAmount: in.PaymentAmount,

		PreAlertID:       &alert.ID,
		CustomerID:       &alert.CustomerID,
		ReceivedPhotoURL: in.ReceivedPhotoURL,
		InitialLocation:  "Bodega Miami",
		InitialNote:      "Paquete recibido en casillero",
	})
	if err != nil {
		return nil, nil, err
	}

	// Si este update falla el envío ya existe y la alerta queda
	// pendiente; bodega la cierra a mano. Sin transacción entre ambos.
	now := timezone.Now()
	alert.Status = models.PreAlertStatusReceived
	alert.ReceivedAt = &now
	alert.WeightLb = in.WeightLb
	alert.Dimensions = in.Dimensions
	alert.ReceivedPhotoURL = in.ReceivedPhotoURL

	if err := uc.repo.UpdatePreAlert(ctx, alert); err != nil {
		return nil, nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &staffID,
			Action:   "pre_alert_received",
			Entity:   "pre_alert",
			EntityID: &alert.ID,
			Metadata: map[string]any{"tracking_code": sh.TrackingCode},
		})
	}

	return alert, sh, nil
}
