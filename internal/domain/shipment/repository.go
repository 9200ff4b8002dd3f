package shipment

import (
	"context"
	"time"

	"github.com/familyexpressec/courier-api/internal/models"
)

type Repository interface {
	// -------- Client --------
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetFamilyMember(
		ctx context.Context,
		clientID uint,
		memberID uint,
	) (*models.FamilyMember, error)

	// -------- Shipment (create / lookup) --------
	CreateShipment(
		ctx context.Context,
		sh *models.Shipment,
	) error

	GetShipmentByID(
		ctx context.Context,
		id uint,
	) (*models.Shipment, error)

	GetShipmentByTrackingCode(
		ctx context.Context,
		code string,
	) (*models.Shipment, error)

	UpdateShipment(
		ctx context.Context,
		sh *models.Shipment,
	) error

	// -------- Tracking ledger --------
	AppendEvent(
		ctx context.Context,
		ev *models.TrackingEvent,
	) error

	ListEventsByTrackingCode(
		ctx context.Context,
		code string,
	) ([]models.TrackingEvent, error)

	// -------- Listing --------
	ListShipments(
		ctx context.Context,
	) ([]models.Shipment, error)

	ListShipmentsByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Shipment, error)

	// Envíos ligados a una cuenta del portal (nacidos de pre-alertas).
	ListShipmentsByCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Shipment, error)

	ListShipmentsByStatus(
		ctx context.Context,
		status string,
	) ([]models.Shipment, error)

	ListShipmentsByDateRange(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Shipment, error)

	// -------- Tracking code generation --------
	CountShipmentsCreatedBetween(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) (int64, error)

	ExistsByTrackingCode(
		ctx context.Context,
		code string,
	) (bool, error)
}
