package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront_client/internal/storefront/business/models"
)

func TestListProductsFilterQuery(t *testing.T) {
	var gotPath, gotFilter string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFilter = r.URL.Query().Get("nome")
		json.NewEncoder(w).Encode([]models.Product{{ID: "1", Name: "Widget", Price: 9.9, Stock: 2}})
	}))
	defer server.Close()

	client := NewCatalogClient(newTestEngine(server.URL, nil))

	products, err := client.ListProducts(context.Background(), "Widget")
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if gotPath != "/products/allProducts" || gotFilter != "Widget" {
		t.Fatalf("request was %s?nome=%s", gotPath, gotFilter)
	}
	if len(products) != 1 || products[0].Name != "Widget" {
		t.Fatalf("products = %+v", products)
	}

	if _, err := client.ListProducts(context.Background(), ""); err != nil {
		t.Fatalf("unfiltered list: %v", err)
	}
	if gotFilter != "" {
		t.Fatalf("unfiltered list sent nome=%q", gotFilter)
	}
}

func TestListProductsEmptyResultIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Product{})
	}))
	defer server.Close()

	client := NewCatalogClient(newTestEngine(server.URL, nil))
	products, err := client.ListProducts(context.Background(), "Missing")
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("products = %+v", products)
	}
}

func TestCreateProductRequires201(t *testing.T) {
	status := http.StatusCreated
	var gotBody models.Product
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(status)
		gotBody.ID = "42"
		json.NewEncoder(w).Encode(gotBody)
	}))
	defer server.Close()

	client := NewCatalogClient(newTestEngine(server.URL, nil))

	created, err := client.CreateProduct(context.Background(), models.Product{Name: "Widget", Price: 19.9, Stock: 5})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if created.ID != "42" {
		t.Fatalf("created = %+v", created)
	}
	if gotBody.Price != 19.9 || gotBody.Stock != 5 {
		t.Fatalf("sent %+v", gotBody)
	}

	status = http.StatusOK
	_, err = client.CreateProduct(context.Background(), models.Product{Name: "Widget"})
	var rejection *RemoteRejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("200 on create: err = %v", err)
	}
}

func TestUpdateProductRequiresIDLocally(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(models.Product{ID: "7"})
	}))
	defer server.Close()

	client := NewCatalogClient(newTestEngine(server.URL, nil))

	_, err := client.UpdateProduct(context.Background(), models.Product{Name: "Widget"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if calls != 0 {
		t.Fatalf("network call made without id")
	}

	if _, err := client.UpdateProduct(context.Background(), models.Product{ID: "7", Name: "Widget"}); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d", calls)
	}
}

func TestDeleteProductSendsIDInBody(t *testing.T) {
	var gotMethod string
	var gotBody struct {
		ID string `json:"id"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
	}))
	defer server.Close()

	client := NewCatalogClient(newTestEngine(server.URL, nil))

	if err := client.DeleteProduct(context.Background(), "7"); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if gotMethod != http.MethodDelete || gotBody.ID != "7" {
		t.Fatalf("request = %s body id %q", gotMethod, gotBody.ID)
	}

	if err := client.DeleteProduct(context.Background(), ""); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("empty id err = %v", err)
	}
}
