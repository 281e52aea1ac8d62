package config

import (
	"errors"
	"io/fs"
)

// Default значения, совпадающие с локальным окружением разработки
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8090,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "ajeitai-gateway",
		},
		API: APIConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: 10,
		},
		Chat: ChatConfig{
			BaseURL:      "http://localhost:8080/api/chat",
			Timeout:      10,
			PollInterval: 5,
		},
		Identity: IdentityConfig{
			URL:      "http://localhost:8081",
			Realm:    "ajeitai",
			ClientID: "ajeitai-frontend",
			Scopes:   []string{"openid", "profile", "email"},
			Timeout:  10,
		},
		Session: SessionConfig{
			CookieName: "ajeitai_session",
			TTL:        720,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Push: PushConfig{
			Timeout: 5,
		},
		Tracing: TracingConfig{
			Environment: "dev",
		},
		Booking: BookingConfig{
			LocationTimeout: 10,
			MaxUploadMB:     10,
		},
	}
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
