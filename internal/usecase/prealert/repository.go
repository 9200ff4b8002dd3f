package prealert

import (
	"context"

	"github.com/familyexpressec/courier-api/internal/models"
)

// Repository es el contrato de persistencia del casillero: cuentas del
// portal y sus pre-alertas.
type Repository interface {
	GetCustomerByID(ctx context.Context, id uint) (*models.CustomerAccount, error)

	CreatePreAlert(ctx context.Context, alert *models.PreAlert) error
	GetPreAlertByID(ctx context.Context, id uint) (*models.PreAlert, error)
	UpdatePreAlert(ctx context.Context, alert *models.PreAlert) error
	ListPreAlertsByCustomer(ctx context.Context, customerID uint) ([]models.PreAlert, error)
	ListPreAlertsByStatus(ctx context.Context, status string) ([]models.PreAlert, error)
}
