package ajeitaiapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/pkg/apierror"
	"github.com/m04kA/ajeitai-client/pkg/logger"
	"github.com/m04kA/ajeitai-client/pkg/ptr"
)

const testToken = "access-token"

// newTestClient поднимает fake API под /api, как в реальном base URL
func newTestClient(t *testing.T, register func(r *mux.Router)) *Client {
	t.Helper()

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get("Authorization") != "Bearer "+testToken {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	register(api)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL+"/api", 2*time.Second, logger.NewNop())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestListBookings_StatusFilter(t *testing.T) {
	c := newTestClient(t, func(r *mux.Router) {
		r.HandleFunc("/agendamentos", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "ACEITO", req.URL.Query().Get("status"))
			_, _ = w.Write([]byte(`[{"id":1,"status":"ACEITO","dataHora":"2025-03-10T10:00:00","formaPagamento":"ONLINE"}]`))
		}).Methods(http.MethodGet)
	})

	bookings, err := c.ListBookings(context.Background(), testToken, ptr.Ptr(domain.StatusAccepted))

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.ID("1"), bookings[0].ID)
	assert.Equal(t, domain.StatusAccepted, bookings[0].Status)
}

func TestCreateBooking(t *testing.T) {
	c := newTestClient(t, func(r *mux.Router) {
		r.HandleFunc("/agendamentos", func(w http.ResponseWriter, req *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, float64(9), body["prestadorId"])
			assert.Equal(t, "2025-03-10T10:00:00", body["dataHora"])
			assert.Equal(t, "DINHEIRO", body["formaPagamento"])

			writeJSON(w, http.StatusCreated, map[string]any{"id": 77, "status": "PENDENTE", "dataHora": body["dataHora"]})
		}).Methods(http.MethodPost)
	})

	scheduled := time.Date(2025, 3, 10, 10, 0, 0, 0, domain.Location)
	booking, err := c.CreateBooking(context.Background(), testToken, domain.CreateBookingRequest{
		ProviderID:    "9",
		ScheduledAt:   domain.NewDateTime(scheduled),
		PaymentMethod: domain.PaymentCash,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ID("77"), booking.ID)
	assert.Equal(t, domain.StatusPending, booking.Status)
}

func TestBookingActions_Paths(t *testing.T) {
	var mu sync.Mutex
	hits := map[string]int{}
	c := newTestClient(t, func(r *mux.Router) {
		r.HandleFunc("/agendamentos/{id}/{action}", func(w http.ResponseWriter, req *http.Request) {
			vars := mux.Vars(req)
			assert.Equal(t, "15", vars["id"])
			mu.Lock()
			hits[vars["action"]]++
			mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		}).Methods(http.MethodPut)
	})

	ctx := context.Background()
	require.NoError(t, c.AcceptBooking(ctx, testToken, "15"))
	require.NoError(t, c.DeclineBooking(ctx, testToken, "15"))
	require.NoError(t, c.CancelBooking(ctx, testToken, "15"))
	require.NoError(t, c.ConfirmPayment(ctx, testToken, "15"))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, map[string]int{"aceitar": 1, "recusar": 1, "cancelar": 1, "confirmar-pagamento": 1}, hits)
}

func TestCheckIn_SendsCoordinates(t *testing.T) {
	c := newTestClient(t, func(r *mux.Router) {
		r.HandleFunc("/agendamentos/3/checkin", func(w http.ResponseWriter, req *http.Request) {
			var body domain.Coordinates
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, domain.Coordinates{Latitude: -8.05, Longitude: -34.9}, body)
			w.WriteHeader(http.StatusOK)
		}).Methods(http.MethodPut)
	})

	err := c.CheckIn(context.Background(), testToken, "3", domain.Coordinates{Latitude: -8.05, Longitude: -34.9})
	require.NoError(t, err)
}

func TestCheckOutWithPhoto(t *testing.T) {
	c := newTestClient(t, func(r *mux.Router) {
		r.HandleFunc("/agendamentos/3/checkout-com-foto", func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, req.ParseMultipartForm(1<<20))
			assert.Equal(t, "-8.05", req.FormValue("latitude"))
			assert.Equal(t, "-34.9", req.FormValue("longitude"))
			f, h, err := req.FormFile("foto")
			require.NoError(t, err)
			defer f.Close()
			data, _ := io.ReadAll(f)
			assert.Equal(t, "trabalho.png", h.Filename)
			assert.Equal(t, "PNG", string(data))
			w.WriteHeader(http.StatusNoContent)
		}).Methods(http.MethodPut)
	})

	err := c.CheckOutWithPhoto(context.Background(), testToken, "3",
		domain.Coordinates{Latitude: -8.05, Longitude: -34.9},
		Upload{Name: "trabalho.png", ContentType: "image/png", Content: strings.NewReader("PNG")})
	require.NoError(t, err)

	err = c.CheckOutWithPhoto(context.Background(), testToken, "3", domain.Coordinates{}, Upload{})
	assert.ErrorIs(t, err, ErrEmptyUpload)
}

func TestGetBooking_Errors(t *testing.T) {
	c := newTestClient(t, func(r *mux.Router) {
		r.HandleFunc("/agendamentos/404", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{"mensagem": "Agendamento não encontrado"})
		})
		r.HandleFunc("/agendamentos/402", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusPaymentRequired, map[string]string{"message": "Assinatura inativa"})
		})
	})

	_, err := c.GetBooking(context.Background(), testToken, "404")
	assert.ErrorIs(t, err, apierror.ErrNotFound)
	assert.Equal(t, "Agendamento não encontrado", apierror.UserMessage(err))

	_, err = c.GetBooking(context.Background(), testToken, "402")
	assert.ErrorIs(t, err, apierror.ErrSubscriptionInactive)
	assert.Equal(t, "Assinatura inativa", apierror.UserMessage(err))

	_, err = c.GetBooking(context.Background(), "expired", "1")
	assert.ErrorIs(t, err, apierror.ErrUnauthenticated)

	_, err = c.GetBooking(context.Background(), testToken, "")
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestListProviders_Query(t *testing.T) {
	c := newTestClient(t, func(r *mux.Router) {
		r.HandleFunc("/prestadores", func(w http.ResponseWriter, req *http.Request) {
			q := req.URL.Query()
			assert.Equal(t, "2", q.Get("page"))
			assert.Equal(t, "12", q.Get("size"))
			assert.Equal(t, "PINTOR", q.Get("categoria"))
			assert.Equal(t, "4", q.Get("avaliacaoMin"))
			assert.Equal(t, "-23.5", q.Get("latitude"))
			assert.Equal(t, "-46.6", q.Get("longitude"))
			assert.False(t, q.Has("search"))

			_, _ = w.Write([]byte(`{"content":[{"id":1,"nomeFantasia":"Pinturas Silva","categoria":"PINTOR","mediaAvaliacao":4.5,"totalAvaliacoes":10,"totalServicos":30}],
				"totalPages":3,"totalElements":25,"number":2,"size":12,"first":false,"last":true}`))
		}).Methods(http.MethodGet)
	})

	page, err := c.ListProviders(context.Background(), testToken, domain.ProviderFilter{
		Page:      2,
		Size:      12,
		Category:  "PINTOR",
		MinRating: ptr.Ptr(4.0),
		Latitude:  ptr.Ptr(-23.5),
		Longitude: ptr.Ptr(-46.6),
	})

	require.NoError(t, err)
	assert.Equal(t, 25, page.TotalElements)
	assert.True(t, page.Last)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Pinturas Silva", page.Content[0].TradeName)
}

func TestDownloadDocument_Streams(t *testing.T) {
	c := newTestClient(t, func(r *mux.Router) {
		r.HandleFunc("/prestadores/me/documentos/d1/download", func(w http.ResponseWriter, req *http.Request) {
			assert.Empty(t, req.URL.Query().Get("token"))
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Disposition", `attachment; filename="alvara.pdf"`)
			_, _ = w.Write([]byte("%PDF"))
		})
	})

	dl, err := c.DownloadDocument(context.Background(), testToken, "d1")
	require.NoError(t, err)
	defer dl.Body.Close()

	data, _ := io.ReadAll(dl.Body)
	assert.Equal(t, "%PDF", string(data))
	assert.Equal(t, "application/pdf", dl.ContentType)
	assert.Contains(t, dl.ContentDisposition, "alvara.pdf")
}

func TestMyProfile_NotFoundMeansOnboarding(t *testing.T) {
	c := newTestClient(t, func(r *mux.Router) {
		r.HandleFunc("/clientes/me", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		r.HandleFunc("/prestadores/me", func(w http.ResponseWriter, req *http.Request) {
			_, _ = w.Write([]byte(`{"id":3,"nomeFantasia":"Elétrica Já"}`))
		})
	})

	_, err := c.GetMyCustomer(context.Background(), testToken)
	assert.ErrorIs(t, err, apierror.ErrNotFound)

	profile, err := c.GetMyProvider(context.Background(), testToken)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"nomeFantasia":"Elétrica Já"}`, string(profile))
}

func TestAdminOverview(t *testing.T) {
	c := newTestClient(t, func(r *mux.Router) {
		r.HandleFunc("/admin/visao-geral", func(w http.ResponseWriter, req *http.Request) {
			_, _ = w.Write([]byte(`{"totalClientes":10,"totalPrestadores":4,"agendamentosPorStatus":{"PENDENTE":2,"REALIZADO":5},"gmv":1500.5}`))
		})
	})

	overview, err := c.AdminOverview(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, 10, overview.TotalCustomers)
	assert.Equal(t, 5, overview.BookingsByStatus[domain.StatusCompleted])
	assert.InDelta(t, 1500.5, overview.GMV, 0.001)
}

func TestCreateRating(t *testing.T) {
	c := newTestClient(t, func(r *mux.Router) {
		r.HandleFunc("/avaliacoes", func(w http.ResponseWriter, req *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, float64(5), body["nota"])
			writeJSON(w, http.StatusCreated, map[string]any{"id": "r1", "agendamentoId": body["agendamentoId"], "nota": 5})
		}).Methods(http.MethodPost)
	})

	rating, err := c.CreateRating(context.Background(), testToken, domain.CreateRatingRequest{BookingID: "8", Score: 5})
	require.NoError(t, err)
	assert.Equal(t, domain.ID("r1"), rating.ID)
	assert.Equal(t, domain.ID("8"), rating.BookingID)
}
