package ajeitaiapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/pkg/restclient"
)

// ListProviders GET /prestadores (пагинация Spring Data)
func (c *Client) ListProviders(ctx context.Context, token string, filter domain.ProviderFilter) (*domain.Page[domain.ProviderSummary], error) {
	var page domain.Page[domain.ProviderSummary]
	if err := c.get(ctx, token, "/prestadores", providerQuery(filter), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// providerQuery пустые параметры не передаются
func providerQuery(f domain.ProviderFilter) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(f.Page))
	if f.Size > 0 {
		q.Set("size", strconv.Itoa(f.Size))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Category != "" {
		q.Set("categoria", f.Category)
	}
	if f.MinRating != nil {
		q.Set("avaliacaoMin", formatCoordinate(*f.MinRating))
	}
	if f.OrderBy != "" {
		q.Set("orderBy", f.OrderBy)
	}
	if f.Latitude != nil && f.Longitude != nil {
		q.Set("latitude", formatCoordinate(*f.Latitude))
		q.Set("longitude", formatCoordinate(*f.Longitude))
	}
	return q
}

// GetProvider GET /catalogo/prestadores/{id}
func (c *Client) GetProvider(ctx context.Context, token string, id domain.ID) (*domain.ProviderDetail, error) {
	path, err := idPath("/catalogo/prestadores/%s", id)
	if err != nil {
		return nil, err
	}

	var detail domain.ProviderDetail
	if err := c.get(ctx, token, path, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// RegisterProvider POST /prestadores/vincular
func (c *Client) RegisterProvider(ctx context.Context, token string, req domain.ProviderRegistration) error {
	return c.send(ctx, http.MethodPost, token, "/prestadores/vincular", req, nil)
}

// GetMyProvider GET /prestadores/me. 404 означает, что профиль еще не создан.
func (c *Client) GetMyProvider(ctx context.Context, token string) (Profile, error) {
	var profile Profile
	if err := c.get(ctx, token, "/prestadores/me", nil, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateMyProvider PUT /prestadores/me
func (c *Client) UpdateMyProvider(ctx context.Context, token string, data Profile) (Profile, error) {
	var profile Profile
	if err := c.send(ctx, http.MethodPut, token, "/prestadores/me", data, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UploadProviderAvatar POST /prestadores/me/avatar
func (c *Client) UploadProviderAvatar(ctx context.Context, token string, file Upload) (Profile, error) {
	return c.uploadFile(ctx, token, "/prestadores/me/avatar", file)
}

// Dashboard GET /prestadores/me/dashboard
func (c *Client) Dashboard(ctx context.Context, token string) (*domain.DashboardMetrics, error) {
	var metrics domain.DashboardMetrics
	if err := c.get(ctx, token, "/prestadores/me/dashboard", nil, &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

// GetAvailability GET /prestadores/me/disponibilidade
func (c *Client) GetAvailability(ctx context.Context, token string) ([]domain.Availability, error) {
	var slots []domain.Availability
	if err := c.get(ctx, token, "/prestadores/me/disponibilidade", nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// UpdateAvailability PUT /prestadores/me/disponibilidade
func (c *Client) UpdateAvailability(ctx context.Context, token string, slots []domain.Availability) error {
	return c.send(ctx, http.MethodPut, token, "/prestadores/me/disponibilidade", slots, nil)
}

// ListDocuments GET /prestadores/me/documentos
func (c *Client) ListDocuments(ctx context.Context, token string) ([]domain.Document, error) {
	var docs []domain.Document
	if err := c.get(ctx, token, "/prestadores/me/documentos", nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UploadDocument POST /prestadores/me/documentos
func (c *Client) UploadDocument(ctx context.Context, token string, file Upload) (*domain.Document, error) {
	if file.Content == nil {
		return nil, ErrEmptyUpload
	}

	var doc domain.Document
	files := []restclient.File{{Field: "file", Name: file.Name, ContentType: file.ContentType, Content: file.Content}}
	if err := c.upload(ctx, http.MethodPost, token, "/prestadores/me/documentos", nil, files, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocument DELETE /prestadores/me/documentos/{id}
func (c *Client) DeleteDocument(ctx context.Context, token string, id domain.ID) error {
	path, err := idPath("/prestadores/me/documentos/%s", id)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodDelete, token, path, nil, nil)
}

// DownloadDocument GET /prestadores/me/documentos/{id}/download.
// Токен передается заголовком, а не в query string.
func (c *Client) DownloadDocument(ctx context.Context, token string, id domain.ID) (*Download, error) {
	path, err := idPath("/prestadores/me/documentos/%s/download", id)
	if err != nil {
		return nil, err
	}

	resp, err := c.rest.Stream(ctx, restclient.Request{Method: http.MethodGet, Path: path, Token: token})
	if err != nil {
		return nil, err
	}

	return &Download{
		Body:               resp.Body,
		ContentType:        resp.Header.Get("Content-Type"),
		ContentDisposition: resp.Header.Get("Content-Disposition"),
		ContentLength:      resp.ContentLength,
	}, nil
}

func (c *Client) uploadFile(ctx context.Context, token, path string, file Upload) (Profile, error) {
	if file.Content == nil {
		return nil, ErrEmptyUpload
	}

	var profile Profile
	files := []restclient.File{{Field: "file", Name: file.Name, ContentType: file.ContentType, Content: file.Content}}
	if err := c.upload(ctx, http.MethodPost, token, path, nil, files, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}
