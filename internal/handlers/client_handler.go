package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/imaging"
	"github.com/familyexpressec/courier-api/internal/models"
	"github.com/familyexpressec/courier-api/internal/storage"
	"github.com/familyexpressec/courier-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	db    *gorm.DB
	store storage.ObjectStore
}

func NewClientHandler(db *gorm.DB, store storage.ObjectStore) *ClientHandler {
	return &ClientHandler{db: db, store: store}
}

// --------- Requests ---------

type ClientRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	IDNumber string `json:"id_number"`

	Category                   string `json:"category"`
	ConsularRegistrationNumber string `json:"consular_registration_number"`
}

type FamilyMemberRequest struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	EcuadorianID string `json:"ecuadorian_id"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Province     string `json:"province"`
}

// ======================================================
// CLIENTS
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	errs := validators.ValidateClient(validators.ClientInput{
		FullName:                   req.FullName,
		Phone:                      req.Phone,
		Address:                    req.Address,
		IDNumber:                   req.IDNumber,
		Category:                   req.Category,
		ConsularRegistrationNumber: req.ConsularRegistrationNumber,
	})
	if len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	client := models.Client{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		IDNumber: req.IDNumber,

		Category:                   req.Category,
		ConsularRegistrationNumber: req.ConsularRegistrationNumber,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "client_create_failed", "No se pudo crear el cliente.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Client{}).Preload("FamilyMembers")

	// Búsqueda rápida de mostrador por nombre, teléfono o cédula.
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"full_name ILIKE ? OR phone LIKE ? OR id_number LIKE ?",
			like, like, like,
		)
	}

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var clients []models.Client
	if err := q.Order("full_name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "client_list_failed", "No se pudo listar los clientes.")
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, ok := h.findClient(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	client, ok := h.findClient(c)
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	errs := validators.ValidateClient(validators.ClientInput{
		FullName:                   req.FullName,
		Phone:                      req.Phone,
		Address:                    req.Address,
		IDNumber:                   req.IDNumber,
		Category:                   req.Category,
		ConsularRegistrationNumber: req.ConsularRegistrationNumber,
	})
	if len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	client.FullName = req.FullName
	client.Phone = req.Phone
	client.Email = req.Email
	client.Address = req.Address
	client.IDNumber = req.IDNumber
	client.Category = req.Category
	client.ConsularRegistrationNumber = req.ConsularRegistrationNumber

	if err := h.db.Save(client).Error; err != nil {
		httperr.Internal(c, "client_update_failed", "No se pudo actualizar el cliente.")
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	client, ok := h.findClient(c)
	if !ok {
		return
	}

	// Si el cliente tiene envíos no se borra: el histórico manda.
	var count int64
	h.db.Model(&models.Shipment{}).Where("client_id = ?", client.ID).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "client_has_shipments", "El cliente tiene envíos registrados y no puede eliminarse.")
		return
	}

	if err := h.db.Delete(client).Error; err != nil {
		httperr.Internal(c, "client_delete_failed", "No se pudo eliminar el cliente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ======================================================
// PHOTO
// ======================================================

// UploadPhoto recibe la foto del cliente por multipart, la normaliza a
// WebP y la sube a B2. La foto anterior se borra en best-effort.
func (h *ClientHandler) UploadPhoto(c *gin.Context) {
	client, ok := h.findClient(c)
	if !ok {
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

	key := fmt.Sprintf("clients/%s.webp", uuid.NewString())
	url, err := h.store.Upload(c.Request.Context(), key, "image/webp", bytesReader(normalized))
	if err != nil {
		httperr.Internal(c, "photo_upload_failed", "No se pudo subir la foto.")
		return
	}

	old := client.PhotoURL
	client.PhotoURL = url

	if err := h.db.Save(client).Error; err != nil {
		httperr.Internal(c, "client_update_failed", "No se pudo guardar la foto.")
		return
	}

	if old != "" {
		_ = h.store.Delete(c.Request.Context(), old)
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

// ======================================================
// FAMILY MEMBERS
// ======================================================

func (h *ClientHandler) AddFamilyMember(c *gin.Context) {
	client, ok := h.findClient(c)
	if !ok {
		return
	}

	var req FamilyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	errs := validators.ValidateFamilyMember(validators.FamilyMemberInput{
		Name:         req.Name,
		Relationship: req.Relationship,
		EcuadorianID: req.EcuadorianID,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Province:     req.Province,
	})
	if len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	member := models.FamilyMember{
		ClientID:     client.ID,
		Name:         req.Name,
		Relationship: req.Relationship,
		EcuadorianID: req.EcuadorianID,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Province:     req.Province,
	}

	if err := h.db.Create(&member).Error; err != nil {
		httperr.Internal(c, "family_member_create_failed", "No se pudo registrar al familiar.")
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *ClientHandler) UpdateFamilyMember(c *gin.Context) {
	client, ok := h.findClient(c)
	if !ok {
		return
	}

	member, ok := h.findFamilyMember(c, client.ID)
	if !ok {
		return
	}

	var req FamilyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	errs := validators.ValidateFamilyMember(validators.FamilyMemberInput{
		Name:         req.Name,
		Relationship: req.Relationship,
		EcuadorianID: req.EcuadorianID,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Province:     req.Province,
	})
	if len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	member.Name = req.Name
	member.Relationship = req.Relationship
	member.EcuadorianID = req.EcuadorianID
	member.Phone = req.Phone
	member.Address = req.Address
	member.City = req.City
	member.Province = req.Province

	if err := h.db.Save(member).Error; err != nil {
		httperr.Internal(c, "family_member_update_failed", "No se pudo actualizar al familiar.")
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *ClientHandler) RemoveFamilyMember(c *gin.Context) {
	client, ok := h.findClient(c)
	if !ok {
		return
	}

	member, ok := h.findFamilyMember(c, client.ID)
	if !ok {
		return
	}

	// Los envíos ya creados guardan copia del destinatario, así que
	// borrar al familiar no afecta el histórico.
	if err := h.db.Delete(member).Error; err != nil {
		httperr.Internal(c, "family_member_delete_failed", "No se pudo eliminar al familiar.")
		return
	}

	for _, url := range []string{member.IDPhotoFrontURL, member.IDPhotoBackURL} {
		if url != "" {
			_ = h.store.Delete(c.Request.Context(), url)
		}
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// UploadFamilyMemberIDPhoto sube la foto de la cédula ("side" = front o
// back) normalizada a WebP.
func (h *ClientHandler) UploadFamilyMemberIDPhoto(c *gin.Context) {
	client, ok := h.findClient(c)
	if !ok {
		return
	}

	member, ok := h.findFamilyMember(c, client.ID)
	if !ok {
		return
	}

	side := c.Param("side")
	if side != "front" && side != "back" {
		httperr.BadRequest(c, "invalid_side", "El lado debe ser 'front' o 'back'.")
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

	key := fmt.Sprintf("family-members/%s-%s.webp", uuid.NewString(), side)
	url, err := h.store.Upload(c.Request.Context(), key, "image/webp", bytesReader(normalized))
	if err != nil {
		httperr.Internal(c, "photo_upload_failed", "No se pudo subir la foto.")
		return
	}

	var old string
	if side == "front" {
		old = member.IDPhotoFrontURL
		member.IDPhotoFrontURL = url
	} else {
		old = member.IDPhotoBackURL
		member.IDPhotoBackURL = url
	}

	if err := h.db.Save(member).Error; err != nil {
		httperr.Internal(c, "family_member_update_failed", "No se pudo guardar la foto.")
		return
	}

	if old != "" {
		_ = h.store.Delete(c.Request.Context(), old)
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

// ======================================================
// HELPERS
// ======================================================

func (h *ClientHandler) findClient(c *gin.Context) (*models.Client, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return nil, false
	}

	var client models.Client
	if err := h.db.Preload("FamilyMembers").First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return nil, false
	}
	return &client, true
}

func (h *ClientHandler) findFamilyMember(c *gin.Context, clientID uint) (*models.FamilyMember, bool) {
	memberID, err := strconv.Atoi(c.Param("memberId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return nil, false
	}

	var member models.FamilyMember
	if err := h.db.
		Where("id = ? AND client_id = ?", memberID, clientID).
		First(&member).Error; err != nil {
		httperr.NotFound(c, "family_member_not_found", "Familiar no encontrado.")
		return nil, false
	}
	return &member, true
}
