package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "AJEITAI"

// Config конфигурация gateway
type Config struct {
	Server   ServerConfig   `toml:"server" envconfig:"SERVER"`
	Logs     LogsConfig     `toml:"logs" envconfig:"LOGS"`
	Metrics  MetricsConfig  `toml:"metrics" envconfig:"METRICS"`
	API      APIConfig      `toml:"api" envconfig:"API"`
	Chat     ChatConfig     `toml:"chat" envconfig:"CHAT"`
	Identity IdentityConfig `toml:"identity" envconfig:"IDENTITY"`
	Session  SessionConfig  `toml:"session" envconfig:"SESSION"`
	Database DatabaseConfig `toml:"database" envconfig:"DATABASE"`
	Push     PushConfig     `toml:"push" envconfig:"PUSH"`
	Tracing  TracingConfig  `toml:"tracing" envconfig:"TRACING"`
	Booking  BookingConfig  `toml:"booking" envconfig:"BOOKING"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"HTTP_PORT" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" envconfig:"READ_TIMEOUT" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" envconfig:"WRITE_TIMEOUT" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" envconfig:"IDLE_TIMEOUT" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" validate:"min=1"`
	// Origin'ы, которым разрешен websocket чата; пусто - только свой host
	AllowedOrigins []string `toml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
}

type LogsConfig struct {
	Level string `toml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	File  string `toml:"file" envconfig:"FILE"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" envconfig:"ENABLED"`
	Path        string `toml:"path" envconfig:"PATH" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" envconfig:"SERVICE_NAME" validate:"required_if=Enabled true"`
}

// APIConfig основной REST API маркетплейса. BaseURL уже содержит /api.
type APIConfig struct {
	BaseURL string `toml:"base_url" envconfig:"BASE_URL" validate:"required,url"`
	Timeout int    `toml:"timeout" envconfig:"TIMEOUT" validate:"min=1"`
}

type ChatConfig struct {
	BaseURL string `toml:"base_url" envconfig:"BASE_URL" validate:"required,url"`
	Timeout int    `toml:"timeout" envconfig:"TIMEOUT" validate:"min=1"`
	// Интервал опроса сообщений, секунды
	PollInterval int `toml:"poll_interval" envconfig:"POLL_INTERVAL" validate:"min=1"`
}

// IdentityConfig параметры Keycloak realm
type IdentityConfig struct {
	URL          string   `toml:"url" envconfig:"URL" validate:"required,url"`
	Realm        string   `toml:"realm" envconfig:"REALM" validate:"required"`
	ClientID     string   `toml:"client_id" envconfig:"CLIENT_ID" validate:"required"`
	ClientSecret string   `toml:"client_secret" envconfig:"CLIENT_SECRET"`
	Scopes       []string `toml:"scopes" envconfig:"SCOPES"`
	Timeout      int      `toml:"timeout" envconfig:"TIMEOUT" validate:"min=1"`
}

type SessionConfig struct {
	CookieName string `toml:"cookie_name" envconfig:"COOKIE_NAME" validate:"required"`
	// Время жизни неактивной сессии, минуты
	TTL          int  `toml:"ttl" envconfig:"TTL" validate:"min=1"`
	SecureCookie bool `toml:"secure_cookie" envconfig:"SECURE_COOKIE"`
	// Сохранять refresh-токены в PostgreSQL для восстановления после рестарта
	Persist bool `toml:"persist" envconfig:"PERSIST"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" envconfig:"HOST"`
	Port            int    `toml:"port" envconfig:"PORT"`
	User            string `toml:"user" envconfig:"USER"`
	Password        string `toml:"password" envconfig:"PASSWORD"`
	DBName          string `toml:"dbname" envconfig:"DBNAME"`
	SSLMode         string `toml:"sslmode" envconfig:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"CONN_MAX_LIFETIME"`
}

// PushConfig пустой VAPID ключ отключает регистрацию push-подписок
type PushConfig struct {
	VAPIDPublicKey string `toml:"vapid_public_key" envconfig:"VAPID_PUBLIC_KEY"`
	Timeout        int    `toml:"timeout" envconfig:"TIMEOUT" validate:"min=1"`
}

func (p PushConfig) Enabled() bool {
	return p.VAPIDPublicKey != ""
}

func (p PushConfig) TimeoutDuration() time.Duration {
	return time.Duration(p.Timeout) * time.Second
}

type TracingConfig struct {
	Enabled     bool   `toml:"enabled" envconfig:"ENABLED"`
	Endpoint    string `toml:"endpoint" envconfig:"ENDPOINT" validate:"required_if=Enabled true"`
	Environment string `toml:"environment" envconfig:"ENVIRONMENT"`
}

type BookingConfig struct {
	// Таймаут получения геолокации, секунды
	LocationTimeout int `toml:"location_timeout" envconfig:"LOCATION_TIMEOUT" validate:"min=1"`
	// Максимальный размер загружаемого файла, мегабайты
	MaxUploadMB int `toml:"max_upload_mb" envconfig:"MAX_UPLOAD_MB" validate:"min=1"`
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// IssuerURL адрес realm в Keycloak
func (i IdentityConfig) IssuerURL() string {
	return strings.TrimRight(i.URL, "/") + "/realms/" + url.PathEscape(i.Realm)
}

func (s ServerConfig) ShutdownDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

func (c ChatConfig) PollDuration() time.Duration {
	return time.Duration(c.PollInterval) * time.Second
}

func (s SessionConfig) TTLDuration() time.Duration {
	return time.Duration(s.TTL) * time.Minute
}

func (b BookingConfig) LocationTimeoutDuration() time.Duration {
	return time.Duration(b.LocationTimeout) * time.Second
}

func (b BookingConfig) MaxUploadBytes() int64 {
	return int64(b.MaxUploadMB) << 20
}

// Load читает config.toml, накладывает переменные окружения AJEITAI_*
// и валидирует результат. Отсутствующий файл не ошибка: используются
// значения по умолчанию и окружение.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Session.Persist && c.Database.Host == "" {
		return fmt.Errorf("%w: session.persist requires database.host", ErrInvalid)
	}
	return nil
}
