package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/imaging"
	"github.com/familyexpressec/courier-api/internal/models"
	"github.com/familyexpressec/courier-api/internal/storage"
)

type MeHandler struct {
	db    *gorm.DB
	store storage.ObjectStore
}

func NewMeHandler(db *gorm.DB, store storage.ObjectStore) *MeHandler {
	return &MeHandler{db: db, store: store}
}

// Me devuelve el perfil del usuario de staff autenticado.
func (h *MeHandler) Me(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, staffID(c)).Error; err != nil {
		httperr.Unauthorized(c, "invalid_token", "Usuario no encontrado.")
		return
	}

	c.JSON(http.StatusOK, user)
}

// CustomerMe devuelve la cuenta del portal autenticada.
func (h *MeHandler) CustomerMe(c *gin.Context) {
	var customer models.CustomerAccount
	if err := h.db.First(&customer, customerID(c)).Error; err != nil {
		httperr.Unauthorized(c, "invalid_token", "Cuenta no encontrada.")
		return
	}

	c.JSON(http.StatusOK, customer)
}

type CustomerProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Province string `json:"province"`
	City     string `json:"city"`
	Address  string `json:"address"`
}

func (h *MeHandler) CustomerUpdateProfile(c *gin.Context) {
	var customer models.CustomerAccount
	if err := h.db.First(&customer, customerID(c)).Error; err != nil {
		httperr.Unauthorized(c, "invalid_token", "Cuenta no encontrada.")
		return
	}

	var req CustomerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.FullName != "" {
		customer.FullName = req.FullName
	}
	customer.Phone = req.Phone
	customer.Province = req.Province
	customer.City = req.City
	customer.Address = req.Address

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "profile_update_failed", "No se pudo actualizar el perfil.")
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *MeHandler) CustomerUploadPhoto(c *gin.Context) {
	var customer models.CustomerAccount
	if err := h.db.First(&customer, customerID(c)).Error; err != nil {
		httperr.Unauthorized(c, "invalid_token", "Cuenta no encontrada.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Debe adjuntar la foto en el campo 'photo'.")
		return
	}
	defer file.Close()

	normalized, err := imaging.Normalize(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "El archivo no es una imagen válida.")
		return
	}

	key := fmt.Sprintf("customers/%s.webp", uuid.NewString())
	url, err := h.store.Upload(c.Request.Context(), key, "image/webp", bytesReader(normalized))
	if err != nil {
		httperr.Internal(c, "photo_upload_failed", "No se pudo subir la foto.")
		return
	}

	old := customer.PhotoURL
	customer.PhotoURL = url

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "profile_update_failed", "No se pudo guardar la foto.")
		return
	}

	if old != "" {
		_ = h.store.Delete(c.Request.Context(), old)
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
