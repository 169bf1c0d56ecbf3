package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/backend"
)

// WriteAPIError traduit un échec amont en réponse passerelle : délai → 504,
// transport → 502, non-2xx amont → statut et message relayés tels quels.
func WriteAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, backend.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "L'API commerce ne répond pas, réessayez plus tard"})
	case errors.Is(err, backend.ErrUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "L'API commerce est injoignable"})
	default:
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
