package models

import "encoding/json"

// CartLineItem is one entry of the shopping cart: a snapshot of the product
// at the moment it was added plus a quantity. The ID is assigned client-side
// when the item enters the cart; it is not the product ID, so repeated adds
// of the same product stay individually removable.
type CartLineItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"produtoId,omitempty"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	UnitPrice   float64 `json:"precoUnitario"`
	Quantity    int     `json:"quantidade"`
}

// rawLineItem is the historical wire shape of a cart item. Older backend
// versions sent the unit price as "preco", newer ones as "precoUnitario";
// some payloads carry the product name as "productName" instead of "nome".
type rawLineItem struct {
	ID            string   `json:"id"`
	ProductID     string   `json:"produtoId"`
	Name          string   `json:"nome"`
	ProductName   string   `json:"productName"`
	Description   string   `json:"descricao"`
	PrecoUnitario *float64 `json:"precoUnitario"`
	Preco         *float64 `json:"preco"`
	Quantity      int      `json:"quantidade"`
}

// UnmarshalJSON normalizes the two price spellings into the single canonical
// UnitPrice field: first present, non-null value wins, missing means 0.
// Past this boundary the ambiguity no longer exists.
func (li *CartLineItem) UnmarshalJSON(data []byte) error {
	var raw rawLineItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	name := raw.Name
	if name == "" {
		name = raw.ProductName
	}
	*li = CartLineItem{
		ID:          raw.ID,
		ProductID:   raw.ProductID,
		Name:        name,
		Description: raw.Description,
		UnitPrice:   resolveUnitPrice(raw.PrecoUnitario, raw.Preco),
		Quantity:    raw.Quantity,
	}
	return nil
}

func resolveUnitPrice(candidates ...*float64) float64 {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return 0
}

// LineItemFromProduct builds a cart line item from a catalog product with
// quantity 1. The caller supplies the line-item id.
func LineItemFromProduct(id string, p Product) CartLineItem {
	return CartLineItem{
		ID:          id,
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.Price,
		Quantity:    1,
	}
}

// Subtotal is the line's contribution to the cart total.
func (li CartLineItem) Subtotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}
