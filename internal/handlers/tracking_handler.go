package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/familyexpressec/courier-api/internal/httperr"
	shipmentuc "github.com/familyexpressec/courier-api/internal/usecase/shipment"
)

// TrackingHandler atiende la consulta pública por código. Sin token:
// cualquiera con el código ve el estado, nunca el pago ni la identidad
// completa del destinatario.
type TrackingHandler struct {
	track *shipmentuc.Track
}

func NewTrackingHandler(track *shipmentuc.Track) *TrackingHandler {
	return &TrackingHandler{track: track}
}

func (h *TrackingHandler) Lookup(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		httperr.BadRequest(c, "missing_code", "Debe indicar el código de tracking.")
		return
	}

	info, err := h.track.Execute(c.Request.Context(), code)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}
