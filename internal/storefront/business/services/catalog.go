package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"storefront_client/internal/storefront/business/models"
)

// CatalogClient wraps the /products endpoints of the store backend.
type CatalogClient struct {
	engine *RequestEngine
}

func NewCatalogClient(engine *RequestEngine) *CatalogClient {
	return &CatalogClient{engine: engine}
}

// ListProducts fetches the catalog, optionally filtered by product name on
// the server side. An empty result is a valid answer, not an error.
func (c *CatalogClient) ListProducts(ctx context.Context, nameFilter string) ([]models.Product, error) {
	path := "/products/allProducts"
	if nameFilter != "" {
		path += "?nome=" + url.QueryEscape(nameFilter)
	}
	var products []models.Product
	if err := c.engine.DoJSON(ctx, http.MethodGet, path, nil, &products, http.StatusOK); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct registers a new product. The backend assigns the id; success
// is strictly 201.
func (c *CatalogClient) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = ""
	var created models.Product
	if err := c.engine.DoJSON(ctx, http.MethodPost, "/products/newProduct", p, &created, http.StatusCreated); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

// UpdateProduct replaces the whole record identified by p.ID.
func (c *CatalogClient) UpdateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	if p.ID == "" {
		return models.Product{}, fmt.Errorf("%w: product id is required for update", ErrInvalidArgument)
	}
	var updated models.Product
	if err := c.engine.DoJSON(ctx, http.MethodPut, "/products/updateProduct", p, &updated, http.StatusOK); err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

// DeleteProduct removes the product with the given id. Deleting an already
// deleted id surfaces the backend's rejection; the caller decides what to do
// with it.
func (c *CatalogClient) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: product id is required for delete", ErrInvalidArgument)
	}
	body := struct {
		ID string `json:"id"`
	}{ID: id}
	return c.engine.DoJSON(ctx, http.MethodDelete, "/products/deleteProduct", body, nil, http.StatusOK)
}
