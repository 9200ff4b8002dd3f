package prealert

import (
	"context"
	"strings"

	"github.com/familyexpressec/courier-api/internal/audit"
	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	Store              string
	ExternalTracking   string
	ContentDescription string
	InvoiceURL         string
}

// ======================================================
// USE CASE
// ======================================================

// Create registra el aviso del cliente de que un paquete viene en
// camino a su casillero. Lo dispara el propio cliente desde el portal.
type Create struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewCreate(repo Repository, audit *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: audit}
}

func (uc *Create) Execute(
	ctx context.Context,
	customerID uint,
	in CreateInput,
) (*models.PreAlert, error) {

	customer, err := uc.repo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, httperr.ErrBusiness("customer_not_found")
	}

	if errs := validateCreate(in); len(errs) > 0 {
		return nil, httperr.ErrValidation(errs)
	}

	alert := &models.PreAlert{
		CustomerID:   customer.ID,
		CustomerName: customer.FullName,
		SuiteID:      customer.SuiteID,

		Store:              strings.TrimSpace(in.Store),
		ExternalTracking:   strings.TrimSpace(in.ExternalTracking),
		ContentDescription: strings.TrimSpace(in.ContentDescription),
		InvoiceURL:         in.InvoiceURL,

		Status: models.PreAlertStatusPending,
	}

	if err := uc.repo.CreatePreAlert(ctx, alert); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "pre_alert_created",
			Entity:   "pre_alert",
			EntityID: &alert.ID,
			Metadata: map[string]any{"suite_id": alert.SuiteID, "store": alert.Store},
		})
	}

	return alert, nil
}

func validateCreate(in CreateInput) []string {
	var errs []string

	if strings.TrimSpace(in.Store) == "" {
		errs = append(errs, "Tienda es requerida")
	}
	if strings.TrimSpace(in.ExternalTracking) == "" {
		errs = append(errs, "Número de tracking de la tienda es requerido")
	}

	return errs
}
