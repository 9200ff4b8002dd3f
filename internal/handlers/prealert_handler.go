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
	prealertuc "github.com/familyexpressec/courier-api/internal/usecase/prealert"
	shipmentuc "github.com/familyexpressec/courier-api/internal/usecase/shipment"
)

// ======================================================
// HANDLER
// ======================================================

type PreAlertHandler struct {
	db    *gorm.DB
	store storage.ObjectStore

	repo    prealertuc.Repository
	create  *prealertuc.Create
	receive *prealertuc.Receive
}

func NewPreAlertHandler(
	db *gorm.DB,
	store storage.ObjectStore,
	repo prealertuc.Repository,
	create *prealertuc.Create,
	receive *prealertuc.Receive,
) *PreAlertHandler {
	return &PreAlertHandler{
		db:      db,
		store:   store,
		repo:    repo,
		create:  create,
		receive: receive,
	}
}

// --------- Requests ---------

type PreAlertRequest struct {
	Store              string `json:"store"`
	ExternalTracking   string `json:"external_tracking"`
	ContentDescription string `json:"content_description"`
}

type ReceivePreAlertRequest struct {
	ClientID       uint             `json:"client_id"`
	FamilyMemberID *uint            `json:"family_member_id"`
	Recipient      RecipientRequest `json:"recipient"`

	Category      string   `json:"category"`
	Items         []string `json:"items"`
	DeclaredValue float64  `json:"declared_value"`

	WeightLb   float64 `json:"weight_lb"`
	Dimensions string  `json:"dimensions"`

	ReceivedPhotoURL string `json:"received_photo_url"`

	PaymentMethod string   `json:"payment_method"`
	PaymentAmount *float64 `json:"payment_amount"`
}

// ======================================================
// CUSTOMER (portal)
// ======================================================

func (h *PreAlertHandler) Create(c *gin.Context) {
	var req PreAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	alert, err := h.create.Execute(c.Request.Context(), customerID(c), prealertuc.CreateInput{
		Store:              req.Store,
		ExternalTracking:   req.ExternalTracking,
		ContentDescription: req.ContentDescription,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

func (h *PreAlertHandler) ListMine(c *gin.Context) {
	alerts, err := h.repo.ListPreAlertsByCustomer(c.Request.Context(), customerID(c))
	if err != nil {
		httperr.Internal(c, "pre_alert_list_failed", "No se pudo listar las pre-alertas.")
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// UploadInvoice adjunta la factura de la tienda a una pre-alerta propia
// que siga pendiente.
func (h *PreAlertHandler) UploadInvoice(c *gin.Context) {
	alert, ok := h.findOwnPending(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("invoice")
	if err != nil {
		httperr.BadRequest(c, "missing_invoice", "Debe adjuntar la factura en el campo 'invoice'.")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("invoices/%s", uuid.NewString())
	url, err := h.store.Upload(c.Request.Context(), key, contentType, file)
	if err != nil {
		httperr.Internal(c, "invoice_upload_failed", "No se pudo subir la factura.")
		return
	}

	old := alert.InvoiceURL
	alert.InvoiceURL = url

	if err := h.db.Save(alert).Error; err != nil {
		httperr.Internal(c, "pre_alert_update_failed", "No se pudo guardar la factura.")
		return
	}

	if old != "" {
		_ = h.store.Delete(c.Request.Context(), old)
	}

	c.JSON(http.StatusOK, gin.H{"invoice_url": url})
}

// ======================================================
// STAFF (bodega)
// ======================================================

func (h *PreAlertHandler) ListPending(c *gin.Context) {
	status := c.DefaultQuery("status", models.PreAlertStatusPending)

	alerts, err := h.repo.ListPreAlertsByStatus(c.Request.Context(), status)
	if err != nil {
		httperr.Internal(c, "pre_alert_list_failed", "No se pudo listar las pre-alertas.")
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// UploadReceivedPhoto sube la foto de bodega del paquete; la URL
// resultante va después en el request de recepción.
func (h *PreAlertHandler) UploadReceivedPhoto(c *gin.Context) {
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

	key := fmt.Sprintf("received/%s.webp", uuid.NewString())
	url, err := h.store.Upload(c.Request.Context(), key, "image/webp", bytesReader(normalized))
	if err != nil {
		httperr.Internal(c, "photo_upload_failed", "No se pudo subir la foto.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

// Receive cierra la pre-alerta y crea el envío en un solo paso.
func (h *PreAlertHandler) Receive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req ReceivePreAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	alert, sh, err := h.receive.Execute(c.Request.Context(), staffID(c), uint(id), prealertuc.ReceiveInput{
		ClientID:       req.ClientID,
		FamilyMemberID: req.FamilyMemberID,
		Recipient: shipmentuc.RecipientInput{
			Name:     req.Recipient.Name,
			Phone:    req.Recipient.Phone,
			Address:  req.Recipient.Address,
			City:     req.Recipient.City,
			Province: req.Recipient.Province,
			IDNumber: req.Recipient.IDNumber,
		},
		Category:      req.Category,
		Items:         req.Items,
		DeclaredValue: req.DeclaredValue,

		WeightLb:   req.WeightLb,
		Dimensions: req.Dimensions,

		ReceivedPhotoURL: req.ReceivedPhotoURL,

		PaymentMethod: req.PaymentMethod,
		PaymentAmount: req.PaymentAmount,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pre_alert": alert,
		"shipment":  sh,
	})
}

// ======================================================
// HELPERS
// ======================================================

func (h *PreAlertHandler) findOwnPending(c *gin.Context) (*models.PreAlert, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return nil, false
	}

	alert, err := h.repo.GetPreAlertByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "pre_alert_not_found", "Pre-alerta no encontrada.")
		return nil, false
	}

	if alert.CustomerID != customerID(c) {
		httperr.NotFound(c, "pre_alert_not_found", "Pre-alerta no encontrada.")
		return nil, false
	}

	if alert.Status != models.PreAlertStatusPending {
		httperr.BadRequest(c, "pre_alert_already_received", "La pre-alerta ya fue recibida.")
		return nil, false
	}

	return alert, true
}
