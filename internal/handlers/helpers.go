package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/middleware"
)

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

func staffID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

func customerID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextCustomerID).(uint)
}

// respondUsecaseError traduce los errores de los usecases al contrato
// HTTP: validación → 422 con la lista, negocio → 400/404 con el
// código, lo demás → 500.
func respondUsecaseError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Validation(c, ve.Messages)
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		status := http.StatusBadRequest
		switch be.Code {
		case "client_not_found", "family_member_not_found",
			"shipment_not_found", "pre_alert_not_found",
			"customer_not_found":
			status = http.StatusNotFound
		}
		httperr.Write(c, status, be.Code, be.Error())
		return
	}

	httperr.Internal(c, "internal_error", "Error interno.")
}
