package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/familyexpressec/courier-api/internal/models"
	"github.com/familyexpressec/courier-api/internal/usecase/prealert"
)

type PreAlertGormRepository struct {
	db *gorm.DB
}

func NewPreAlertGormRepository(db *gorm.DB) *PreAlertGormRepository {
	return &PreAlertGormRepository{db: db}
}

// --------------------------------------------------
// Customer accounts
// --------------------------------------------------

func (r *PreAlertGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.CustomerAccount, error) {

	var customer models.CustomerAccount
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// --------------------------------------------------
// Pre-alerts
// --------------------------------------------------

func (r *PreAlertGormRepository) CreatePreAlert(
	ctx context.Context,
	alert *models.PreAlert,
) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *PreAlertGormRepository) GetPreAlertByID(
	ctx context.Context,
	id uint,
) (*models.PreAlert, error) {

	var alert models.PreAlert
	if err := r.db.WithContext(ctx).First(&alert, id).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *PreAlertGormRepository) UpdatePreAlert(
	ctx context.Context,
	alert *models.PreAlert,
) error {
	return r.db.WithContext(ctx).Save(alert).Error
}

func (r *PreAlertGormRepository) ListPreAlertsByCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.PreAlert, error) {

	var alerts []models.PreAlert
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *PreAlertGormRepository) ListPreAlertsByStatus(
	ctx context.Context,
	status string,
) ([]models.PreAlert, error) {

	var alerts []models.PreAlert
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// Compile-time check
var _ prealert.Repository = (*PreAlertGormRepository)(nil)
