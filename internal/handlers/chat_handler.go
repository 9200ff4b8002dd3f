package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/familyexpressec/courier-api/internal/chat"
	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ChatHandler struct {
	db  *gorm.DB
	hub *chat.Hub
}

func NewChatHandler(db *gorm.DB, hub *chat.Hub) *ChatHandler {
	return &ChatHandler{db: db, hub: hub}
}

type ChatMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// WebSocket sube la conexión al hub; el token ya pasó por el middleware.
func (h *ChatHandler) WebSocket(c *gin.Context) {
	h.hub.HandleWebSocket(c.Writer, c.Request)
}

// ======================================================
// CUSTOMER
// ======================================================

func (h *ChatHandler) CustomerSend(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	id := customerID(c)

	var customer models.CustomerAccount
	if err := h.db.First(&customer, id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Cuenta no encontrada.")
		return
	}

	msg := models.ChatMessage{
		CustomerID: id,
		Sender:     models.ChatSenderCustomer,
		SenderName: customer.FullName,
		Body:       strings.TrimSpace(req.Body),
	}

	h.persistAndBroadcast(c, msg)
}

func (h *ChatHandler) CustomerHistory(c *gin.Context) {
	h.history(c, customerID(c))
}

// ======================================================
// STAFF (asesor)
// ======================================================

func (h *ChatHandler) AdvisorSend(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, staffID(c)).Error; err != nil {
		httperr.Unauthorized(c, "invalid_token", "Usuario no encontrado.")
		return
	}

	msg := models.ChatMessage{
		CustomerID: uint(targetID),
		Sender:     models.ChatSenderAdvisor,
		SenderName: user.Name,
		Body:       strings.TrimSpace(req.Body),
	}

	h.persistAndBroadcast(c, msg)
}

func (h *ChatHandler) AdvisorHistory(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}
	h.history(c, uint(targetID))
}

// ======================================================
// HELPERS
// ======================================================

func (h *ChatHandler) persistAndBroadcast(c *gin.Context, msg models.ChatMessage) {
	if msg.Body == "" {
		httperr.BadRequest(c, "empty_message", "El mensaje no puede estar vacío.")
		return
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "chat_send_failed", "No se pudo enviar el mensaje.")
		return
	}

	// Primero persistir, después difundir: el websocket es solo la
	// notificación en vivo, la verdad está en la tabla.
	h.hub.Broadcast(msg)

	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) history(c *gin.Context, customerID uint) {
	var messages []models.ChatMessage
	if err := h.db.
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		httperr.Internal(c, "chat_history_failed", "No se pudo cargar la conversación.")
		return
	}

	c.JSON(http.StatusOK, messages)
}
