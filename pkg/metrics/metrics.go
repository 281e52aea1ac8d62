package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec

	ChatPollsTotal    *prometheus.CounterVec
	ActiveChatStreams prometheus.Gauge
	ActiveSessions    prometheus.Gauge
	PushRegistrations *prometheus.CounterVec
}

// New создает метрики и регистрирует их в default registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном registry (удобно для тестов)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		HTTPRequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests being served",
			ConstLabels: constLabels,
		}),

		UpstreamRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of calls to upstream APIs",
			ConstLabels: constLabels,
		}, []string{"upstream", "method", "status"}),

		UpstreamRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Latency of calls to upstream APIs",
			ConstLabels: constLabels,
			Buckets:     []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"upstream", "method"}),

		ChatPollsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "chat_polls_total",
			Help:        "Chat message polls by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		ActiveChatStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "chat_streams_active",
			Help:        "Number of open chat websocket streams",
			ConstLabels: constLabels,
		}),

		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "sessions_active",
			Help:        "Number of live user sessions",
			ConstLabels: constLabels,
		}),

		PushRegistrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "push_registrations_total",
			Help:        "Push subscription forwards by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.UpstreamRequestsTotal,
		m.UpstreamRequestDuration,
		m.ChatPollsTotal,
		m.ActiveChatStreams,
		m.ActiveSessions,
		m.PushRegistrations,
	)

	return m
}

// ObserveHTTP записывает результат обработки входящего запроса
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveUpstream записывает результат вызова внешнего API.
// status=0 означает, что ответ не получен (сетевая ошибка).
func (m *Metrics) ObserveUpstream(upstream, method string, status int, duration time.Duration) {
	label := "network_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.UpstreamRequestsTotal.WithLabelValues(upstream, method, label).Inc()
	m.UpstreamRequestDuration.WithLabelValues(upstream, method).Observe(duration.Seconds())
}

// ObservePoll результат одного опроса сообщений чата
func (m *Metrics) ObservePoll(result string) {
	m.ChatPollsTotal.WithLabelValues(result).Inc()
}

// ObservePush результат пересылки push-подписки
func (m *Metrics) ObservePush(result string) {
	m.PushRegistrations.WithLabelValues(result).Inc()
}

// InFlight увеличивает счетчик обрабатываемых запросов; возвращаемая
// функция уменьшает его обратно
func (m *Metrics) InFlight() func() {
	m.HTTPRequestsInFlight.Inc()
	return m.HTTPRequestsInFlight.Dec
}

// StreamOpened учет открытых websocket потоков чата
func (m *Metrics) StreamOpened() func() {
	m.ActiveChatStreams.Inc()
	return m.ActiveChatStreams.Dec
}
