package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/familyexpressec/courier-api/internal/domain/shipment"
	"github.com/familyexpressec/courier-api/internal/dto"
	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/models"
	"github.com/familyexpressec/courier-api/internal/pricing"
	shipmentuc "github.com/familyexpressec/courier-api/internal/usecase/shipment"
)

// ======================================================
// HANDLER
// ======================================================

type ShipmentHandler struct {
	repo domain.Repository

	create      *shipmentuc.CreateShipment
	updateSt    *shipmentuc.UpdateStatus
	markPrinted *shipmentuc.MarkPrinted
	stats       *shipmentuc.GetStatistics
}

func NewShipmentHandler(
	repo domain.Repository,
	create *shipmentuc.CreateShipment,
	updateSt *shipmentuc.UpdateStatus,
	markPrinted *shipmentuc.MarkPrinted,
	stats *shipmentuc.GetStatistics,
) *ShipmentHandler {
	return &ShipmentHandler{
		repo:        repo,
		create:      create,
		updateSt:    updateSt,
		markPrinted: markPrinted,
		stats:       stats,
	}
}

// --------- Requests ---------

type RecipientRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Province string `json:"province"`
	IDNumber string `json:"id_number"`
}

type CreateShipmentRequest struct {
	ClientID       uint             `json:"client_id"`
	FamilyMemberID *uint            `json:"family_member_id"`
	Recipient      RecipientRequest `json:"recipient"`

	Category      string   `json:"category"`
	Items         []string `json:"items"`
	DeclaredValue float64  `json:"declared_value"`
	WeightLb      float64  `json:"weight_lb"`

	PaymentMethod string   `json:"payment_method"`
	PaymentAmount *float64 `json:"payment_amount"`
}

type UpdateStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Location string `json:"location"`
	Note     string `json:"note"`
}

type QuoteRequest struct {
	Category      string  `json:"category"`
	DeclaredValue float64 `json:"declared_value"`
	WeightLb      float64 `json:"weight_lb"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ShipmentHandler) Create(c *gin.Context) {
	var req CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	sh, err := h.create.Execute(c.Request.Context(), staffID(c), shipmentuc.CreateShipmentInput{
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
		WeightLb:      req.WeightLb,
		PaymentMethod: req.PaymentMethod,
		PaymentAmount: req.PaymentAmount,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sh)
}

// Quote cotiza sin crear nada: el mostrador la muestra antes de cobrar.
func (h *ShipmentHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	quote, err := pricing.Calculate(pricing.Category(req.Category), req.DeclaredValue, req.WeightLb)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ShipmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		shipments []models.Shipment
		err       error
	)

	switch {
	case c.Query("client_id") != "":
		id, convErr := strconv.Atoi(c.Query("client_id"))
		if convErr != nil {
			httperr.BadRequest(c, "invalid_client_id", "client_id inválido.")
			return
		}
		shipments, err = h.repo.ListShipmentsByClient(ctx, uint(id))

	case c.Query("status") != "":
		status := domain.Status(c.Query("status"))
		if !status.IsValid() {
			httperr.BadRequest(c, "invalid_status", "Estado inválido.")
			return
		}
		shipments, err = h.repo.ListShipmentsByStatus(ctx, string(status))

	case c.Query("from") != "" && c.Query("to") != "":
		from, err1 := time.Parse("2006-01-02", c.Query("from"))
		to, err2 := time.Parse("2006-01-02", c.Query("to"))
		if err1 != nil || err2 != nil {
			httperr.BadRequest(c, "invalid_date_range", "Las fechas deben ser YYYY-MM-DD.")
			return
		}
		shipments, err = h.repo.ListShipmentsByDateRange(ctx, from, to.Add(24*time.Hour))

	default:
		shipments, err = h.repo.ListShipments(ctx)
	}

	if err != nil {
		httperr.Internal(c, "shipment_list_failed", "No se pudo listar los envíos.")
		return
	}

	c.JSON(http.StatusOK, dto.NewShipmentSummaries(shipments))
}

func (h *ShipmentHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	sh, err := h.repo.GetShipmentByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "shipment_not_found", "Envío no encontrado.")
		return
	}

	events, err := h.repo.ListEventsByTrackingCode(c.Request.Context(), sh.TrackingCode)
	if err != nil {
		httperr.Internal(c, "shipment_events_failed", "No se pudo cargar el historial.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shipment": sh,
		"events":   events,
	})
}

// ListMine lista los envíos de la cuenta del portal autenticada: los
// que nacieron de sus pre-alertas.
func (h *ShipmentHandler) ListMine(c *gin.Context) {
	shipments, err := h.repo.ListShipmentsByCustomer(c.Request.Context(), customerID(c))
	if err != nil {
		httperr.Internal(c, "shipment_list_failed", "No se pudo listar los envíos.")
		return
	}

	c.JSON(http.StatusOK, dto.NewShipmentSummaries(shipments))
}

// ======================================================
// STATUS / PRINT FLAGS
// ======================================================

func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	sh, err := h.updateSt.Execute(
		c.Request.Context(),
		staffID(c),
		uint(id),
		domain.Status(req.Status),
		req.Location,
		req.Note,
	)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, sh)
}

func (h *ShipmentHandler) MarkReceiptPrinted(c *gin.Context) {
	h.markDocument(c, shipmentuc.DocumentReceipt)
}

func (h *ShipmentHandler) MarkLabelPrinted(c *gin.Context) {
	h.markDocument(c, shipmentuc.DocumentLabel)
}

func (h *ShipmentHandler) markDocument(c *gin.Context, document string) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	sh, err := h.markPrinted.Execute(c.Request.Context(), staffID(c), uint(id), document)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, sh)
}

// ======================================================
// STATS
// ======================================================

func (h *ShipmentHandler) Statistics(c *gin.Context) {
	var from, to *time.Time

	if fromStr := c.Query("from"); fromStr != "" {
		if t, err := time.Parse("2006-01-02", fromStr); err == nil {
			from = &t
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if t, err := time.Parse("2006-01-02", toStr); err == nil {
			end := t.Add(24 * time.Hour)
			to = &end
		}
	}

	stats, err := h.stats.Execute(c.Request.Context(), from, to)
	if err != nil {
		httperr.Internal(c, "stats_failed", "No se pudo calcular las estadísticas.")
		return
	}

	c.JSON(http.StatusOK, stats)
}
