package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/minhtranvn/toystore/internal/errs"
	"github.com/minhtranvn/toystore/internal/model"
	"github.com/minhtranvn/toystore/internal/query"
)

// OrderDraft is the checkout payload. Prices are recomputed server-side;
// the client-side amounts are advisory only.
type OrderDraft struct {
	Items           []model.CartItem      `json:"orderItems"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
	PromoCode       string                `json:"promoCode,omitempty"`
}

type orderEnvelope struct {
	Order *model.Order `json:"order"`
}

type orderListEnvelope struct {
	Orders []model.Order `json:"orders"`
	Page   int           `json:"page"`
	Pages  *int          `json:"pages"`
	Total  int           `json:"total"`
}

// PlaceOrder submits the checkout. Requires login.
func (c *Client) PlaceOrder(ctx context.Context, draft OrderDraft) (*model.Order, error) {
	var env orderEnvelope
	if err := c.send(ctx, http.MethodPost, "/api/orders", draft, &env); err != nil {
		return nil, err
	}
	if env.Order == nil {
		return nil, fmt.Errorf("order not found: %w", errs.ErrNotFound)
	}
	return env.Order, nil
}

// GetOrder fetches one order. Customers see their own; admins see any.
func (c *Client) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	var env orderEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+id, nil, nil, "", &env, true); err != nil {
		return nil, err
	}
	if env.Order == nil {
		return nil, fmt.Errorf("order not found: %w", errs.ErrNotFound)
	}
	return env.Order, nil
}

// ListMyOrders pages through the calling customer's order history.
func (c *Client) ListMyOrders(ctx context.Context, p query.ListParams) (query.Paged[model.Order], error) {
	var env orderListEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/orders/myorders", p.Values(), nil, "", &env, true); err != nil {
		return query.Paged[model.Order]{}, err
	}
	return query.Normalize(env.Orders, env.Page, env.Pages, env.Total), nil
}

// ListOrders pages through all orders (admin).
func (c *Client) ListOrders(ctx context.Context, p query.ListParams) (query.Paged[model.Order], error) {
	var env orderListEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/orders", p.Values(), nil, "", &env, true); err != nil {
		return query.Paged[model.Order]{}, err
	}
	return query.Normalize(env.Orders, env.Page, env.Pages, env.Total), nil
}

// MarkDelivered flags an order as delivered (admin).
func (c *Client) MarkDelivered(ctx context.Context, id string) (*model.Order, error) {
	var env orderEnvelope
	if err := c.send(ctx, http.MethodPut, "/api/orders/"+id+"/deliver", nil, &env); err != nil {
		return nil, err
	}
	if env.Order == nil {
		return nil, fmt.Errorf("order not found: %w", errs.ErrNotFound)
	}
	return env.Order, nil
}

// MarkPaid flags an order as paid (admin).
func (c *Client) MarkPaid(ctx context.Context, id string) (*model.Order, error) {
	var env orderEnvelope
	if err := c.send(ctx, http.MethodPut, "/api/orders/"+id+"/pay", nil, &env); err != nil {
		return nil, err
	}
	if env.Order == nil {
		return nil, fmt.Errorf("order not found: %w", errs.ErrNotFound)
	}
	return env.Order, nil
}

// DeleteOrder removes an order (admin).
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/orders/"+id, nil, nil)
}
