package state

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"storefront_client/internal/storefront/business/models"
	"storefront_client/internal/storefront/business/services"
)

// RemoteCart is the slice of the cart client this manager needs.
type RemoteCart interface {
	RemoveItem(ctx context.Context, userID, cartItemID string) error
	Checkout(ctx context.Context, userID string) error
}

// CartManager owns the in-memory cart. Items are never removed or cleared
// optimistically: a mutation happens locally only after the backend confirms
// it. The mutex serializes mutating operations, so two overlapping submits
// cannot race on the item slice.
type CartManager struct {
	mu      sync.Mutex
	remote  RemoteCart
	items   []models.CartLineItem
	outcome Outcome
}

func NewCartManager(remote RemoteCart) *CartManager {
	return &CartManager{remote: remote}
}

// AddItem appends a new line item built from the product, quantity 1. Adding
// the same product twice yields two distinct line items; quantities are
// never merged. Purely local: no network call, no outcome change.
func (m *CartManager) AddItem(p models.Product) models.CartLineItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	item := models.LineItemFromProduct(uuid.NewString(), p)
	m.items = append(m.items, item)
	return item
}

// RemoveItem asks the backend to drop the item and, only on confirmation,
// removes it from the local cart. A missing id fails locally without a
// network call.
func (m *CartManager) RemoveItem(ctx context.Context, userID, itemID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.remote.RemoveItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, services.ErrInvalidArgument) {
			m.outcome = failure("Erro: ID do item inválido.")
		} else {
			m.outcome = failure("Erro ao remover item.")
		}
		return
	}

	kept := make([]models.CartLineItem, 0, len(m.items))
	for _, item := range m.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	m.items = kept
	m.outcome = success("Item removido com sucesso!")
}

// Checkout finalizes the purchase. Success clears the whole cart atomically;
// failure leaves it untouched.
func (m *CartManager) Checkout(ctx context.Context, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.remote.Checkout(ctx, userID); err != nil {
		m.outcome = failure("Erro ao finalizar compra.")
		return
	}
	m.items = []models.CartLineItem{}
	m.outcome = success("Compra finalizada com sucesso!")
}

// Total recomputes the cart total from scratch on every call.
func (m *CartManager) Total() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total float64
	for _, item := range m.items {
		total += item.Subtotal()
	}
	return total
}

// Items returns a snapshot of the cart in insertion order.
func (m *CartManager) Items() []models.CartLineItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]models.CartLineItem, len(m.items))
	copy(snapshot, m.items)
	return snapshot
}

func (m *CartManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func (m *CartManager) Outcome() Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcome
}
