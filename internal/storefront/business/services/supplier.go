package services

import (
	"context"
	"net/http"
	"net/url"

	"storefront_client/internal/storefront/business/models"
)

// SupplierClient wraps the /fornecedores endpoints. Unlike the product
// endpoints these answer with assorted 2xx codes, so any 2xx counts as
// success here.
type SupplierClient struct {
	engine *RequestEngine
}

func NewSupplierClient(engine *RequestEngine) *SupplierClient {
	return &SupplierClient{engine: engine}
}

func (c *SupplierClient) CreateSupplier(ctx context.Context, s models.Supplier) (models.Supplier, error) {
	s.ID = ""
	var created models.Supplier
	if err := c.engine.DoJSON(ctx, http.MethodPost, "/fornecedores/create", s, &created); err != nil {
		return models.Supplier{}, err
	}
	return created, nil
}

func (c *SupplierClient) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := c.engine.DoJSON(ctx, http.MethodGet, "/fornecedores/all", nil, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (c *SupplierClient) SearchByTaxID(ctx context.Context, taxID string) (models.Supplier, error) {
	path := "/fornecedores/byCnpj?cnpj=" + url.QueryEscape(taxID)
	var supplier models.Supplier
	if err := c.engine.DoJSON(ctx, http.MethodGet, path, nil, &supplier); err != nil {
		return models.Supplier{}, err
	}
	return supplier, nil
}
