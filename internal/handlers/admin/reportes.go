package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/backend"
	"sisinfo_gateway/internal/handlers"
)

func reportRange(c *gin.Context) backend.ReportRange {
	return backend.ReportRange{
		Start: c.Query("start"),
		End:   c.Query("end"),
	}
}

func topParam(c *gin.Context) int {
	top, _ := strconv.Atoi(c.Query("top"))
	return top
}

// GET /api/admin/reportes/por-periodo?start=&end=&period=
func (h *Handler) SalesByPeriod(c *gin.Context) {
	rows, err := h.api.SalesByPeriod(c.Request.Context(), reportRange(c), c.Query("period"))
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/admin/reportes/productos-mas-vendidos?top=&start=&end=
func (h *Handler) TopProducts(c *gin.Context) {
	rows, err := h.api.TopProducts(c.Request.Context(), topParam(c), reportRange(c))
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/admin/reportes/por-cliente?top=&start=&end=
func (h *Handler) SalesByCustomer(c *gin.Context) {
	rows, err := h.api.SalesByCustomer(c.Request.Context(), topParam(c), reportRange(c))
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/admin/reportes/cancelados?start=&end=
func (h *Handler) CancelledOrders(c *gin.Context) {
	rows, err := h.api.CancelledOrders(c.Request.Context(), reportRange(c))
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
