package ajeitaiapi

import (
	"context"
	"net/http"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// RegisterCustomer POST /clientes/vincular
func (c *Client) RegisterCustomer(ctx context.Context, token string, req domain.CustomerRegistration) error {
	return c.send(ctx, http.MethodPost, token, "/clientes/vincular", req, nil)
}

// GetMyCustomer GET /clientes/me. 404 означает, что профиль еще не создан.
func (c *Client) GetMyCustomer(ctx context.Context, token string) (Profile, error) {
	var profile Profile
	if err := c.get(ctx, token, "/clientes/me", nil, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateMyCustomer PUT /clientes/me
func (c *Client) UpdateMyCustomer(ctx context.Context, token string, data Profile) (Profile, error) {
	var profile Profile
	if err := c.send(ctx, http.MethodPut, token, "/clientes/me", data, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UploadCustomerAvatar POST /clientes/me/avatar
func (c *Client) UploadCustomerAvatar(ctx context.Context, token string, file Upload) (Profile, error) {
	return c.uploadFile(ctx, token, "/clientes/me/avatar", file)
}
