package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/familyexpressec/courier-api/internal/config"
)

const (
	ContextUserID     = "userID"
	ContextUserRole   = "userRole"
	ContextCustomerID = "customerID"
	ContextSuiteID    = "suiteID"
)

// Audiencias de los tokens: el personal del courier y las cuentas del
// portal de casilleros no comparten rutas.
const (
	AudienceStaff    = "staff"
	AudienceCustomer = "customer"
)

func parseToken(c *gin.Context, cfg *config.Config) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
		return nil, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
		return nil, false
	}

	return claims, true
}

// AuthStaff protege las rutas de mostrador y bodega.
func AuthStaff(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, cfg)
		if !ok {
			return
		}

		if aud, _ := claims["aud"].(string); aud != AudienceStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff_token_required"})
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// AuthCustomer protege el portal de casilleros.
func AuthCustomer(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, cfg)
		if !ok {
			return
		}

		if aud, _ := claims["aud"].(string); aud != AudienceCustomer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "customer_token_required"})
			return
		}

		customerID, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}
		suiteID, _ := claims["suite"].(string)

		c.Set(ContextCustomerID, uint(customerID))
		c.Set(ContextSuiteID, suiteID)

		c.Next()
	}
}
