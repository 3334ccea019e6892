package api

import (
	"context"
	"net/http"

	"github.com/loungeshop/storefront/internal/models"
)

type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	body := map[string]string{"email": email}
	var resp messageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, password, confirmPassword string) (string, error) {
	body := map[string]string{
		"password":        password,
		"confirmPassword": confirmPassword,
	}
	var resp messageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/reset-password/"+token, body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
