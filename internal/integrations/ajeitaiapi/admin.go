package ajeitaiapi

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// AdminOverview GET /admin/visao-geral
func (c *Client) AdminOverview(ctx context.Context, token string) (*domain.AdminOverview, error) {
	var overview domain.AdminOverview
	if err := c.get(ctx, token, "/admin/visao-geral", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// AdminProviders GET /admin/prestadores
func (c *Client) AdminProviders(ctx context.Context, token string) ([]domain.AdminProvider, error) {
	var providers []domain.AdminProvider
	if err := c.get(ctx, token, "/admin/prestadores", nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// AdminBookings GET /admin/agendamentos?status=
func (c *Client) AdminBookings(ctx context.Context, token string, status *domain.Status) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, token, "/admin/agendamentos", statusQuery(status), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// AdminPayments GET /admin/pagamentos
func (c *Client) AdminPayments(ctx context.Context, token string) ([]domain.AdminPayment, error) {
	var payments []domain.AdminPayment
	if err := c.get(ctx, token, "/admin/pagamentos", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// AdminWithdrawals GET /admin/saques
func (c *Client) AdminWithdrawals(ctx context.Context, token string) ([]domain.AdminWithdrawal, error) {
	var withdrawals []domain.AdminWithdrawal
	if err := c.get(ctx, token, "/admin/saques", nil, &withdrawals); err != nil {
		return nil, err
	}
	return withdrawals, nil
}
