package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CartClient wraps the /carts endpoints of the store backend.
type CartClient struct {
	engine *RequestEngine
}

func NewCartClient(engine *RequestEngine) *CartClient {
	return &CartClient{engine: engine}
}

// RemoveItem deletes one cart item on the backend. The id guard runs before
// any network traffic.
func (c *CartClient) RemoveItem(ctx context.Context, userID, cartItemID string) error {
	if cartItemID == "" {
		return fmt.Errorf("%w: cart item id is required", ErrInvalidArgument)
	}
	path := fmt.Sprintf("/carts/removeItem/%s/%s", url.PathEscape(userID), url.PathEscape(cartItemID))
	return c.engine.DoJSON(ctx, http.MethodDelete, path, nil, nil, http.StatusOK)
}

// Checkout finalizes the purchase for the given user. All-or-nothing: either
// the backend answers 200 and the caller may clear the cart, or the attempt
// failed as a whole.
func (c *CartClient) Checkout(ctx context.Context, userID string) error {
	body := struct {
		UserID string `json:"userId"`
	}{UserID: userID}
	return c.engine.DoJSON(ctx, http.MethodPost, "/carts/finalizarCompra", body, nil, http.StatusOK)
}
