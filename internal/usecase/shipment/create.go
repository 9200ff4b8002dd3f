package shipment

import (
	"context"
	"fmt"
	"strings"

	"github.com/familyexpressec/courier-api/internal/audit"
	domain "github.com/familyexpressec/courier-api/internal/domain/shipment"
	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/models"
	"github.com/familyexpressec/courier-api/internal/pricing"
	"github.com/familyexpressec/courier-api/internal/timezone"
	"github.com/familyexpressec/courier-api/internal/tracking"
)

// ======================================================
// INPUT
// ======================================================

type RecipientInput struct {
	Name     string
	Phone    string
	Address  string
	City     string
	Province string
	IDNumber string
}

type CreateShipmentInput struct {
	ClientID uint

	// Destinatario: o un familiar registrado del cliente, o uno digitado.
	FamilyMemberID *uint
	Recipient      RecipientInput

	Category      string
	Items         []string
	DeclaredValue float64
	WeightLb      float64

	PaymentMethod string
	// Monto cobrado; si viene nil se cobra el total cotizado.
	PaymentAmount *float64

	// Seteados por el flujo de recepción de casillero.
	PreAlertID       *uint
	CustomerID       *uint
	ReceivedPhotoURL string
	InitialLocation  string
	InitialNote      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateShipment struct {
	repo  domain.Repository
	codes *tracking.Generator
	audit *audit.Dispatcher
}

func NewCreateShipment(
	repo domain.Repository,
	codes *tracking.Generator,
	audit *audit.Dispatcher,
) *CreateShipment {
	return &CreateShipment{
		repo:  repo,
		codes: codes,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateShipment) Execute(
	ctx context.Context,
	staffID uint,
	in CreateShipmentInput,
) (*models.Shipment, error) {

	// --------------------------------------------------
	// 1. Cliente
	// --------------------------------------------------
	client, err := uc.repo.GetClientByID(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	// --------------------------------------------------
	// 2. Destinatario (familiar registrado o digitado)
	// --------------------------------------------------
	recipient := models.RecipientSnapshot{
		Name:     strings.TrimSpace(in.Recipient.Name),
		Phone:    strings.TrimSpace(in.Recipient.Phone),
		Address:  strings.TrimSpace(in.Recipient.Address),
		City:     strings.TrimSpace(in.Recipient.City),
		Province: strings.TrimSpace(in.Recipient.Province),
		IDNumber: strings.TrimSpace(in.Recipient.IDNumber),
	}

	if in.FamilyMemberID != nil {
		member, err := uc.repo.GetFamilyMember(ctx, client.ID, *in.FamilyMemberID)
		if err != nil {
			return nil, httperr.ErrBusiness("family_member_not_found")
		}
		// Copia al momento del despacho; ediciones posteriores del
		// familiar no tocan envíos históricos.
		recipient = models.RecipientSnapshot{
			Name:     member.Name,
			Phone:    member.Phone,
			Address:  member.Address,
			City:     member.City,
			Province: member.Province,
			IDNumber: member.EcuadorianID,
		}
	}

	// --------------------------------------------------
	// 3. Validación (todos los mensajes de una vez)
	// --------------------------------------------------
	if errs := validateCreate(in, recipient); len(errs) > 0 {
		return nil, httperr.ErrValidation(errs)
	}

	// --------------------------------------------------
	// 4. Código de tracking (best-effort, nunca bloquea)
	// --------------------------------------------------
	code := uc.codes.Generate(ctx)

	// --------------------------------------------------
	// 5. Cotización
	// --------------------------------------------------
	quote, err := pricing.Calculate(
		pricing.Category(in.Category),
		in.DeclaredValue,
		in.WeightLb,
	)
	if err != nil {
		return nil, err
	}

	amount := quote.Total
	if in.PaymentAmount != nil {
		amount = *in.PaymentAmount
	}

	method := in.PaymentMethod
	if method == "" {
		method = "cash"
	}

	// --------------------------------------------------
	// 6. Envío
	// --------------------------------------------------
	now := timezone.Now()

	sh := &models.Shipment{
		TrackingCode: code,
		ClientID:     client.ID,
		ClientName:   client.FullName,
		Category:     in.Category,
		Recipient:    recipient,

		Items:         in.Items,
		DeclaredValue: in.DeclaredValue,
		WeightLb:      quote.WeightLb,

		Costs: models.CostBreakdown{
			Shipping:   quote.Shipping,
			CourierTax: quote.CourierTax,
			Fodinfa:    quote.Fodinfa,
			Total:      quote.Total,
		},
		Payment: models.PaymentRecord{
			Amount: amount,
			Method: method,
			Paid:   true,
			PaidAt: &now,
		},

		Status: string(domain.InitialStatus()),

		PreAlertID:       in.PreAlertID,
		CustomerID:       in.CustomerID,
		ReceivedPhotoURL: in.ReceivedPhotoURL,
	}

	if err := uc.repo.CreateShipment(ctx, sh); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Primera entrada del historial
	// --------------------------------------------------
	// Sin rollback: si esto falla el envío ya quedó escrito y el código
	// generado queda usado. El mostrador reintenta a mano.
	location := in.InitialLocation
	if location == "" {
		location = "USA"
	}
	note := in.InitialNote
	if note == "" {
		note = "Paquete registrado y pagado"
	}

	ev := domain.NewEvent(sh, domain.InitialStatus(), location, note, now)
	if err := uc.repo.AppendEvent(ctx, ev); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8. Auditoría
	// --------------------------------------------------
	uc.dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "shipment_created",
		Entity:   "shipment",
		EntityID: &sh.ID,
		Metadata: map[string]any{"tracking_code": sh.TrackingCode},
	})

	return sh, nil
}

func (uc *CreateShipment) dispatch(ev audit.Event) {
	if uc.audit != nil {
		uc.audit.Dispatch(ev)
	}
}

// ======================================================
// VALIDATION
// ======================================================

func validateCreate(in CreateShipmentInput, recipient models.RecipientSnapshot) []string {
	var errs []string

	if in.ClientID == 0 {
		errs = append(errs, "Cliente es requerido")
	}
	if in.Category != "B" && in.Category != "G" {
		errs = append(errs, "Categoría debe ser B o G")
	}
	if len(in.Items) == 0 {
		errs = append(errs, "Debe seleccionar al menos un artículo")
	}
	if in.DeclaredValue <= 0 {
		errs = append(errs, "Valor declarado debe ser mayor a 0")
	}
	if in.DeclaredValue > pricing.MaxDeclaredUSD {
		errs = append(errs, fmt.Sprintf("Valor declarado no puede exceder $%.0f USD", pricing.MaxDeclaredUSD))
	}
	if in.PaymentAmount != nil && *in.PaymentAmount < 0 {
		errs = append(errs, "Monto cobrado no puede ser negativo")
	}
	if recipient.Name == "" {
		errs = append(errs, "Nombre del destinatario es requerido")
	}
	if recipient.Phone == "" {
		errs = append(errs, "Teléfono del destinatario es requerido")
	}
	if recipient.Address == "" {
		errs = append(errs, "Dirección del destinatario es requerida")
	}

	return errs
}
