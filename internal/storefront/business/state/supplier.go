package state

import (
	"context"
	"sync"

	"storefront_client/internal/storefront/business/models"
	"storefront_client/pkg/logger"
)

// RemoteSupplier is the slice of the supplier client this manager needs.
type RemoteSupplier interface {
	CreateSupplier(ctx context.Context, s models.Supplier) (models.Supplier, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	SearchByTaxID(ctx context.Context, taxID string) (models.Supplier, error)
}

// SupplierForm carries the create-supplier fields.
type SupplierForm struct {
	Name            string
	TaxID           string
	Address         string
	SuppliedProduct string
}

// SupplierManager owns the supplier list. Lookups are soft-fail: a failed
// list or search yields an empty result and leaves the outcome alone, while
// the create mutation reports through the outcome like everywhere else.
type SupplierManager struct {
	mu        sync.Mutex
	remote    RemoteSupplier
	log       logger.Logger
	suppliers []models.Supplier
	searchKey string
	outcome   Outcome
}

func NewSupplierManager(remote RemoteSupplier, log logger.Logger) *SupplierManager {
	return &SupplierManager{remote: remote, log: log}
}

// Create posts a new supplier and, on success, re-lists the whole set so the
// view reflects the backend.
func (m *SupplierManager) Create(ctx context.Context, form SupplierForm) {
	m.mu.Lock()
	defer m.mu.Unlock()

	supplier := models.Supplier{
		Name:            form.Name,
		TaxID:           form.TaxID,
		Address:         form.Address,
		SuppliedProduct: form.SuppliedProduct,
	}
	if _, err := m.remote.CreateSupplier(ctx, supplier); err != nil {
		m.outcome = failure("Erro ao criar fornecedor.")
		return
	}
	m.outcome = success("Fornecedor criado com sucesso!")
	m.refreshLocked(ctx)
}

// Refresh replaces the list with everything the backend has. Soft-fail: an
// error is logged, the previous list survives.
func (m *SupplierManager) Refresh(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshLocked(ctx)
}

func (m *SupplierManager) refreshLocked(ctx context.Context) {
	suppliers, err := m.remote.ListSuppliers(ctx)
	if err != nil {
		m.log.Log("listing suppliers: %v", err)
		return
	}
	m.suppliers = suppliers
}

// SearchByTaxID replaces the list with the single match, or with an empty
// list when the lookup fails. Failure is an empty result here, never an
// error outcome.
func (m *SupplierManager) SearchByTaxID(ctx context.Context, taxID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.searchKey = taxID
	supplier, err := m.remote.SearchByTaxID(ctx, taxID)
	if err != nil {
		m.log.Log("searching supplier by cnpj %q: %v", taxID, err)
		m.suppliers = []models.Supplier{}
		return
	}
	m.suppliers = []models.Supplier{supplier}
}

func (m *SupplierManager) Suppliers() []models.Supplier {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]models.Supplier, len(m.suppliers))
	copy(snapshot, m.suppliers)
	return snapshot
}

func (m *SupplierManager) SearchKey() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.searchKey
}

func (m *SupplierManager) Outcome() Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcome
}
