package ajeitaiapi

import (
	"context"
	"net/http"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// CreateRating POST /avaliacoes
func (c *Client) CreateRating(ctx context.Context, token string, req domain.CreateRatingRequest) (*domain.Rating, error) {
	if req.BookingID.IsZero() {
		return nil, ErrEmptyID
	}

	var rating domain.Rating
	if err := c.send(ctx, http.MethodPost, token, "/avaliacoes", req, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListProviderRatings GET /avaliacoes/prestador/{id}
func (c *Client) ListProviderRatings(ctx context.Context, token string, providerID domain.ID) ([]domain.Rating, error) {
	path, err := idPath("/avaliacoes/prestador/%s", providerID)
	if err != nil {
		return nil, err
	}

	var ratings []domain.Rating
	if err := c.get(ctx, token, path, nil, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}
