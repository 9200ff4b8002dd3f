package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/models"
)

// LockerHandler es la vista de bodega sobre los casilleros: cuentas del
// portal y lo que cada una tiene pre-alertado.
type LockerHandler struct {
	db *gorm.DB
}

func NewLockerHandler(db *gorm.DB) *LockerHandler {
	return &LockerHandler{db: db}
}

func (h *LockerHandler) ListAccounts(c *gin.Context) {
	q := h.db.Model(&models.CustomerAccount{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"full_name ILIKE ? OR email ILIKE ? OR suite_id ILIKE ?",
			like, like, like,
		)
	}

	var accounts []models.CustomerAccount
	if err := q.Order("created_at DESC").Find(&accounts).Error; err != nil {
		httperr.Internal(c, "account_list_failed", "No se pudo listar las cuentas.")
		return
	}

	c.JSON(http.StatusOK, accounts)
}

func (h *LockerHandler) GetAccount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var account models.CustomerAccount
	if err := h.db.First(&account, id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Cuenta no encontrada.")
		return
	}

	var alerts []models.PreAlert
	if err := h.db.
		Where("customer_id = ?", account.ID).
		Order("created_at DESC").
		Find(&alerts).Error; err != nil {
		httperr.Internal(c, "pre_alert_list_failed", "No se pudo listar las pre-alertas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account":    account,
		"pre_alerts": alerts,
	})
}
