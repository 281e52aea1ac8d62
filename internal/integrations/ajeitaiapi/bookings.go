package ajeitaiapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/pkg/restclient"
)

// CreateBooking POST /agendamentos
func (c *Client) CreateBooking(ctx context.Context, token string, req domain.CreateBookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.send(ctx, http.MethodPost, token, "/agendamentos", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListBookings GET /agendamentos (агендаменты текущего cliente)
func (c *Client) ListBookings(ctx context.Context, token string, status *domain.Status) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, token, "/agendamentos", statusQuery(status), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ProviderRequests GET /prestadores/me/solicitacoes (агендаменты текущего prestador)
func (c *Client) ProviderRequests(ctx context.Context, token string, status *domain.Status) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, token, "/prestadores/me/solicitacoes", statusQuery(status), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking GET /agendamentos/{id}
func (c *Client) GetBooking(ctx context.Context, token string, id domain.ID) (*domain.Booking, error) {
	path, err := idPath("/agendamentos/%s", id)
	if err != nil {
		return nil, err
	}

	var booking domain.Booking
	if err := c.get(ctx, token, path, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// AcceptBooking PUT /agendamentos/{id}/aceitar
func (c *Client) AcceptBooking(ctx context.Context, token string, id domain.ID) error {
	return c.putAction(ctx, token, id, "aceitar")
}

// DeclineBooking PUT /agendamentos/{id}/recusar
func (c *Client) DeclineBooking(ctx context.Context, token string, id domain.ID) error {
	return c.putAction(ctx, token, id, "recusar")
}

// CancelBooking PUT /agendamentos/{id}/cancelar
func (c *Client) CancelBooking(ctx context.Context, token string, id domain.ID) error {
	return c.putAction(ctx, token, id, "cancelar")
}

// ConfirmPayment PUT /agendamentos/{id}/confirmar-pagamento
func (c *Client) ConfirmPayment(ctx context.Context, token string, id domain.ID) error {
	return c.putAction(ctx, token, id, "confirmar-pagamento")
}

func (c *Client) putAction(ctx context.Context, token string, id domain.ID, action string) error {
	path, err := idPath("/agendamentos/%s/"+action, id)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPut, token, path, nil, nil)
}

// GetPayment GET /agendamentos/{id}/pagamento
func (c *Client) GetPayment(ctx context.Context, token string, id domain.ID) (*domain.Payment, error) {
	path, err := idPath("/agendamentos/%s/pagamento", id)
	if err != nil {
		return nil, err
	}

	var payment domain.Payment
	if err := c.get(ctx, token, path, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// CheckIn PUT /agendamentos/{id}/checkin
func (c *Client) CheckIn(ctx context.Context, token string, id domain.ID, at domain.Coordinates) error {
	path, err := idPath("/agendamentos/%s/checkin", id)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPut, token, path, at, nil)
}

// CheckOut PUT /agendamentos/{id}/checkout (без фото)
func (c *Client) CheckOut(ctx context.Context, token string, id domain.ID, at domain.Coordinates) error {
	path, err := idPath("/agendamentos/%s/checkout", id)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPut, token, path, at, nil)
}

// CheckOutWithPhoto PUT /agendamentos/{id}/checkout-com-foto (multipart: latitude, longitude, foto)
func (c *Client) CheckOutWithPhoto(ctx context.Context, token string, id domain.ID, at domain.Coordinates, photo Upload) error {
	if photo.Content == nil {
		return ErrEmptyUpload
	}
	path, err := idPath("/agendamentos/%s/checkout-com-foto", id)
	if err != nil {
		return err
	}

	fields := []restclient.Field{
		{Name: "latitude", Value: formatCoordinate(at.Latitude)},
		{Name: "longitude", Value: formatCoordinate(at.Longitude)},
	}
	files := []restclient.File{{Field: "foto", Name: photo.Name, ContentType: photo.ContentType, Content: photo.Content}}

	return c.upload(ctx, http.MethodPut, token, path, fields, files, nil)
}

func statusQuery(status *domain.Status) url.Values {
	if status == nil || *status == "" {
		return nil
	}
	return url.Values{"status": {status.String()}}
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
