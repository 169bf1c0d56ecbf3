package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"sisinfo_gateway/internal/models"
)

// ReportRange borne un rapport de ventes ; les deux dates sont optionnelles
// (format attendu par l'amont : "2006-01-02").
type ReportRange struct {
	Start string
	End   string
}

func (r ReportRange) values() url.Values {
	params := url.Values{}
	if r.Start != "" {
		params.Set("start", r.Start)
	}
	if r.End != "" {
		params.Set("end", r.End)
	}
	return params
}

// SalesByPeriod interroge /ReportesVentas/PorPeriodo. period vaut "diario",
// "mensual" ou "anual" ; vide → "mensual" comme la console d'origine.
func (c *Client) SalesByPeriod(ctx context.Context, rng ReportRange, period string) ([]models.SalesByPeriod, error) {
	if period == "" {
		period = "mensual"
	}
	params := rng.values()
	params.Set("period", period)

	var rows []models.SalesByPeriod
	if err := c.do(ctx, http.MethodGet, "/ReportesVentas/PorPeriodo?"+params.Encode(), nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) TopProducts(ctx context.Context, top int, rng ReportRange) ([]models.TopProduct, error) {
	if top <= 0 {
		top = 10
	}
	params := rng.values()
	params.Set("top", strconv.Itoa(top))

	var rows []models.TopProduct
	if err := c.do(ctx, http.MethodGet, "/ReportesVentas/ProductosMasVendidos?"+params.Encode(), nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) SalesByCustomer(ctx context.Context, top int, rng ReportRange) ([]models.SalesByCustomer, error) {
	if top <= 0 {
		top = 10
	}
	params := rng.values()
	params.Set("top", strconv.Itoa(top))

	var rows []models.SalesByCustomer
	if err := c.do(ctx, http.MethodGet, "/ReportesVentas/PorCliente?"+params.Encode(), nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) CancelledOrders(ctx context.Context, rng ReportRange) ([]models.CancelledOrder, error) {
	var rows []models.CancelledOrder
	if err := c.do(ctx, http.MethodGet, "/ReportesVentas/Cancelados?"+rng.values().Encode(), nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
