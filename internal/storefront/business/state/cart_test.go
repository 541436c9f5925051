package state

import (
	"context"
	"fmt"
	"testing"

	"storefront_client/internal/storefront/business/models"
	"storefront_client/internal/storefront/business/services"
)

type stubCart struct {
	removeErr     error
	checkoutErr   error
	removeCalls   int
	checkoutCalls int
	lastUserID    string
	lastItemID    string
}

func (s *stubCart) RemoveItem(_ context.Context, userID, cartItemID string) error {
	if cartItemID == "" {
		return fmt.Errorf("%w: cart item id is required", services.ErrInvalidArgument)
	}
	s.removeCalls++
	s.lastUserID = userID
	s.lastItemID = cartItemID
	return s.removeErr
}

func (s *stubCart) Checkout(_ context.Context, userID string) error {
	s.checkoutCalls++
	s.lastUserID = userID
	return s.checkoutErr
}

func TestAddItemNeverMerges(t *testing.T) {
	m := NewCartManager(&stubCart{})
	p := models.Product{ID: "p1", Name: "Widget", Price: 10}

	for i := 0; i < 4; i++ {
		m.AddItem(p)
	}

	if got := m.Len(); got != 4 {
		t.Fatalf("Len() = %d, want 4", got)
	}
	items := m.Items()
	seen := map[string]bool{}
	for _, item := range items {
		if item.Quantity != 1 {
			t.Errorf("item %s quantity = %d, want 1", item.ID, item.Quantity)
		}
		if seen[item.ID] {
			t.Errorf("duplicate line item id %s", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestAddItemDoesNotTouchOutcome(t *testing.T) {
	m := NewCartManager(&stubCart{})
	m.AddItem(models.Product{Name: "Widget"})
	if o := m.Outcome(); o != (Outcome{}) {
		t.Fatalf("outcome = %+v, want zero", o)
	}
}

func TestTotal(t *testing.T) {
	m := NewCartManager(&stubCart{})
	if got := m.Total(); got != 0 {
		t.Fatalf("empty cart total = %v, want 0", got)
	}

	m.AddItem(models.Product{Name: "Widget", Price: 19.9})
	m.AddItem(models.Product{Name: "Gadget", Price: 5.25})
	m.AddItem(models.Product{Name: "Gadget", Price: 5.25})

	want := 19.9 + 5.25 + 5.25
	if got := m.Total(); got != want {
		t.Fatalf("total = %v, want %v", got, want)
	}
}

func TestRemoveItemEmptyIDSkipsNetwork(t *testing.T) {
	remote := &stubCart{}
	m := NewCartManager(remote)
	m.AddItem(models.Product{Name: "Widget"})

	m.RemoveItem(context.Background(), "u1", "")

	if remote.removeCalls != 0 {
		t.Fatalf("remote called %d times, want 0", remote.removeCalls)
	}
	if o := m.Outcome(); !o.IsError || o.Message != "Erro: ID do item inválido." {
		t.Fatalf("outcome = %+v", o)
	}
	if m.Len() != 1 {
		t.Fatalf("items changed on local guard failure")
	}
}

func TestRemoveItemSuccessRemovesOnlyThatItem(t *testing.T) {
	remote := &stubCart{}
	m := NewCartManager(remote)
	first := m.AddItem(models.Product{ID: "p1", Name: "Widget", Price: 10})
	second := m.AddItem(models.Product{ID: "p2", Name: "Gadget", Price: 7.5})

	m.RemoveItem(context.Background(), "u1", first.ID)

	if remote.lastUserID != "u1" || remote.lastItemID != first.ID {
		t.Fatalf("remote got (%s, %s)", remote.lastUserID, remote.lastItemID)
	}
	items := m.Items()
	if len(items) != 1 || items[0].ID != second.ID {
		t.Fatalf("items = %+v, want only %s", items, second.ID)
	}
	if got := m.Total(); got != 7.5 {
		t.Fatalf("total after removal = %v, want 7.5", got)
	}
	if o := m.Outcome(); o.IsError {
		t.Fatalf("outcome = %+v", o)
	}
}

func TestRemoveItemFailureLeavesItemsUntouched(t *testing.T) {
	remote := &stubCart{removeErr: &services.RemoteRejectionError{StatusCode: 500, Status: "500 Internal Server Error"}}
	m := NewCartManager(remote)
	first := m.AddItem(models.Product{ID: "p1", Name: "Widget"})
	before := m.Items()

	m.RemoveItem(context.Background(), "u1", first.ID)

	after := m.Items()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("items changed on failure: %+v -> %+v", before, after)
	}
	if o := m.Outcome(); !o.IsError || o.Message != "Erro ao remover item." {
		t.Fatalf("outcome = %+v", o)
	}
}

func TestCheckoutSuccessEmptiesCart(t *testing.T) {
	remote := &stubCart{}
	m := NewCartManager(remote)
	m.AddItem(models.Product{Name: "Widget", Price: 10})
	m.AddItem(models.Product{Name: "Gadget", Price: 20})

	m.Checkout(context.Background(), "u1")

	if m.Len() != 0 {
		t.Fatalf("cart not cleared: %d items", m.Len())
	}
	if got := m.Total(); got != 0 {
		t.Fatalf("total after checkout = %v", got)
	}
	if o := m.Outcome(); o.IsError || o.Message != "Compra finalizada com sucesso!" {
		t.Fatalf("outcome = %+v", o)
	}
}

func TestCheckoutFailureLeavesCartUntouched(t *testing.T) {
	remote := &stubCart{checkoutErr: &services.NetworkError{Err: fmt.Errorf("connection refused")}}
	m := NewCartManager(remote)
	m.AddItem(models.Product{ID: "p1", Name: "Widget", Price: 10})
	before := m.Items()

	m.Checkout(context.Background(), "u1")

	after := m.Items()
	if len(after) != 1 || after[0] != before[0] {
		t.Fatalf("items changed on failed checkout")
	}
	if o := m.Outcome(); !o.IsError {
		t.Fatalf("outcome = %+v", o)
	}
}
