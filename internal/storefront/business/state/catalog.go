package state

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"storefront_client/internal/storefront/business/models"
	"storefront_client/pkg/logger"
)

// RemoteCatalog is the slice of the catalog client this manager needs.
type RemoteCatalog interface {
	ListProducts(ctx context.Context, nameFilter string) ([]models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, p models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductForm is the edit buffer of the catalog workflow: the one record
// currently being searched, created, updated or deleted. Fields stay strings
// until an operation coerces them for the wire.
type ProductForm struct {
	ID          string
	Name        string
	Description string
	Price       string
	Stock       string
}

// CatalogManager owns the browsing list and the single-record edit buffer.
// The two workflows share the manager but stay otherwise decoupled: form
// operations do not touch the list, and callers re-list after a create to
// bring the browsing view up to date.
type CatalogManager struct {
	mu       sync.Mutex
	remote   RemoteCatalog
	log      logger.Logger
	products []models.Product
	form     ProductForm
	outcome  Outcome
}

func NewCatalogManager(remote RemoteCatalog, log logger.Logger) *CatalogManager {
	return &CatalogManager{remote: remote, log: log}
}

// Refresh replaces the browsing list with the full catalog. A failed fetch
// keeps the previous list and the current outcome; browsing is a soft-fail
// lookup, not a mutation.
func (m *CatalogManager) Refresh(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	products, err := m.remote.ListProducts(ctx, "")
	if err != nil {
		m.log.Log("refreshing catalog: %v", err)
		return
	}
	m.products = products
}

// Search looks the name up on the backend and loads the first match into the
// edit buffer. An empty name fails locally without a network call; an empty
// result reports not-found and leaves the buffer untouched.
func (m *CatalogManager) Search(ctx context.Context, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" {
		m.outcome = failure("Por favor, informe o Nome do produto.")
		return
	}

	products, err := m.remote.ListProducts(ctx, name)
	if err != nil {
		m.outcome = failure("Erro ao buscar produto.")
		return
	}
	if len(products) == 0 {
		m.outcome = failure("Produto não encontrado.")
		return
	}

	p := products[0]
	m.form = ProductForm{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Stock:       strconv.Itoa(p.Stock),
	}
	m.outcome = success("Produto encontrado!")
}

// Create coerces the form into a wire record and posts it. Success clears
// the edit buffer; everything else collapses into one generic save error.
func (m *CatalogManager) Create(ctx context.Context, form ProductForm) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, err := form.toProduct()
	if err != nil {
		m.outcome = failure("Erro ao salvar produto.")
		return
	}
	product.ID = ""

	if _, err := m.remote.CreateProduct(ctx, product); err != nil {
		m.outcome = failure("Erro ao salvar produto.")
		return
	}
	m.form = ProductForm{}
	m.outcome = success(fmt.Sprintf("Produto %q adicionado com sucesso!", form.Name))
}

// Update replaces the whole record identified by the form id. A missing id
// fails locally without a network call.
func (m *CatalogManager) Update(ctx context.Context, form ProductForm) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if form.ID == "" {
		m.outcome = failure("Por favor, informe o ID do produto para atualizar.")
		return
	}
	product, err := form.toProduct()
	if err != nil {
		m.outcome = failure("Erro ao atualizar produto.")
		return
	}

	if _, err := m.remote.UpdateProduct(ctx, product); err != nil {
		m.outcome = failure("Erro ao atualizar produto.")
		return
	}
	m.form = ProductForm{}
	m.outcome = success(fmt.Sprintf("Produto %q atualizado com sucesso!", form.Name))
}

// Delete removes the record identified by the form id. A missing id fails
// locally without a network call.
func (m *CatalogManager) Delete(ctx context.Context, form ProductForm) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if form.ID == "" {
		m.outcome = failure("Por favor, informe o ID do produto para deletar.")
		return
	}

	if err := m.remote.DeleteProduct(ctx, form.ID); err != nil {
		m.outcome = failure("Erro ao deletar produto.")
		return
	}
	m.form = ProductForm{}
	m.outcome = success(fmt.Sprintf("Produto %q deletado com sucesso!", form.Name))
}

// Clear resets the edit buffer and the outcome. Purely local, always
// available.
func (m *CatalogManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.form = ProductForm{}
	m.outcome = Outcome{}
}

func (m *CatalogManager) Products() []models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]models.Product, len(m.products))
	copy(snapshot, m.products)
	return snapshot
}

func (m *CatalogManager) EditBuffer() ProductForm {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form
}

func (m *CatalogManager) Outcome() Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcome
}

func (f ProductForm) toProduct() (models.Product, error) {
	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil {
		return models.Product{}, fmt.Errorf("parsing price %q: %w", f.Price, err)
	}
	stock, err := strconv.Atoi(f.Stock)
	if err != nil {
		return models.Product{}, fmt.Errorf("parsing stock %q: %w", f.Stock, err)
	}
	return models.Product{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Price:       price,
		Stock:       stock,
	}, nil
}
