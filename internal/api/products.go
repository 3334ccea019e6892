package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/loungeshop/storefront/internal/models"
)

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct uploads a new product as multipart form data. The image
// part is optional; pass a nil reader to create a product without one.
func (c *Client) CreateProduct(ctx context.Context, name string, price decimal.Decimal, imageName string, image io.Reader) (*models.Product, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("name", name); err != nil {
		return nil, fmt.Errorf("write name field: %w", err)
	}
	if err := w.WriteField("price", price.String()); err != nil {
		return nil, fmt.Errorf("write price field: %w", err)
	}
	if image != nil {
		part, err := w.CreateFormFile("image", imageName)
		if err != nil {
			return nil, fmt.Errorf("create image part: %w", err)
		}
		if _, err := io.Copy(part, image); err != nil {
			return nil, fmt.Errorf("copy image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/products", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var product models.Product
	if err := c.send(req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) ToggleProductAvailability(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.doJSON(ctx, http.MethodPatch, "/products/"+id+"/toggle", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/products/"+id, nil, nil)
}
