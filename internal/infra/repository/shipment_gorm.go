package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/familyexpressec/courier-api/internal/domain/shipment"
	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/models"
)

type ShipmentGormRepository struct {
	db *gorm.DB
}

func NewShipmentGormRepository(db *gorm.DB) *ShipmentGormRepository {
	return &ShipmentGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ShipmentGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Preload("FamilyMembers").
		First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ShipmentGormRepository) GetFamilyMember(
	ctx context.Context,
	clientID uint,
	memberID uint,
) (*models.FamilyMember, error) {

	var member models.FamilyMember
	if err := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", memberID, clientID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// --------------------------------------------------
// Shipment
// --------------------------------------------------

func (r *ShipmentGormRepository) CreateShipment(
	ctx context.Context,
	sh *models.Shipment,
) error {
	return r.db.WithContext(ctx).Create(sh).Error
}

func (r *ShipmentGormRepository) GetShipmentByID(
	ctx context.Context,
	id uint,
) (*models.Shipment, error) {

	var sh models.Shipment
	if err := r.db.WithContext(ctx).First(&sh, id).Error; err != nil {
		return nil, err
	}
	return &sh, nil
}

func (r *ShipmentGormRepository) GetShipmentByTrackingCode(
	ctx context.Context,
	code string,
) (*models.Shipment, error) {

	var sh models.Shipment
	if err := r.db.WithContext(ctx).
		Where("tracking_code = ?", code).
		First(&sh).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("shipment_not_found")
		}
		return nil, err
	}
	return &sh, nil
}

func (r *ShipmentGormRepository) UpdateShipment(
	ctx context.Context,
	sh *models.Shipment,
) error {
	return r.db.WithContext(ctx).Save(sh).Error
}

// --------------------------------------------------
// Tracking ledger (append-only)
// --------------------------------------------------

func (r *ShipmentGormRepository) AppendEvent(
	ctx context.Context,
	ev *models.TrackingEvent,
) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *ShipmentGormRepository) ListEventsByTrackingCode(
	ctx context.Context,
	code string,
) ([]models.TrackingEvent, error) {

	var events []models.TrackingEvent
	if err := r.db.WithContext(ctx).
		Where("tracking_code = ?", code).
		Order("created_at ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *ShipmentGormRepository) ListShipments(
	ctx context.Context,
) ([]models.Shipment, error) {

	var shipments []models.Shipment
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}

func (r *ShipmentGormRepository) ListShipmentsByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Shipment, error) {

	var shipments []models.Shipment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}

func (r *ShipmentGormRepository) ListShipmentsByCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Shipment, error) {

	var shipments []models.Shipment
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}

func (r *ShipmentGormRepository) ListShipmentsByStatus(
	ctx context.Context,
	status string,
) ([]models.Shipment, error) {

	var shipments []models.Shipment
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}

func (r *ShipmentGormRepository) ListShipmentsByDateRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Shipment, error) {

	var shipments []models.Shipment
	if err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}

// --------------------------------------------------
// Tracking code generation
// --------------------------------------------------

func (r *ShipmentGormRepository) CountShipmentsCreatedBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Shipment{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ShipmentGormRepository) ExistsByTrackingCode(
	ctx context.Context,
	code string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Shipment{}).
		Where("tracking_code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*ShipmentGormRepository)(nil)
