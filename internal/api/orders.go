package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/loungeshop/storefront/internal/models"
)

type orderRequest struct {
	Items   []models.OrderItem `json:"items"`
	Total   decimal.Decimal    `json:"total"`
	Address models.Address     `json:"address"`
}

// ListOrders returns every order in the system. The server restricts this
// to admin credentials.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.doJSON(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.doJSON(ctx, http.MethodGet, "/orders/my-orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) PlaceOrder(ctx context.Context, items []models.OrderItem, total decimal.Decimal, address models.Address) (*models.Order, error) {
	var order models.Order
	body := orderRequest{Items: items, Total: total, Address: address}
	if err := c.doJSON(ctx, http.MethodPost, "/orders", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	var order models.Order
	body := map[string]string{"status": status}
	if err := c.doJSON(ctx, http.MethodPatch, "/orders/"+id+"/status", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/orders/"+id, nil, nil)
}
