package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// RefreshMargin токен обновляется, если до истечения осталось меньше
const RefreshMargin = 30 * time.Second

// KeycloakConfig параметры realm
type KeycloakConfig struct {
	// https://idp/realms/<realm>
	IssuerURL    string
	ClientID     string
	ClientSecret string
	Scopes       []string
	Timeout      time.Duration
	Transport    http.RoundTripper
}

// Keycloak реализация Authenticator поверх golang.org/x/oauth2:
// password grant для логина, refresh grant через TokenSource,
// end-session endpoint для логаута.
type Keycloak struct {
	oauth      *oauth2.Config
	logoutURL  string
	httpClient *http.Client
}

func NewKeycloak(cfg KeycloakConfig) *Keycloak {
	issuer := strings.TrimRight(cfg.IssuerURL, "/")
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &Keycloak{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   issuer + "/protocol/openid-connect/auth",
				TokenURL:  issuer + "/protocol/openid-connect/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		logoutURL:  issuer + "/protocol/openid-connect/logout",
		httpClient: &http.Client{Timeout: cfg.Timeout, Transport: transport},
	}
}

// withClient oauth2 берет HTTP клиент из контекста
func (k *Keycloak) withClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, k.httpClient)
}

// Login password grant
func (k *Keycloak) Login(ctx context.Context, username, password string) (*oauth2.Token, error) {
	tok, err := k.oauth.PasswordCredentialsToken(k.withClient(ctx), username, password)
	if err != nil {
		return nil, classifyTokenError(err)
	}
	return tok, nil
}

// TokenSource переиспользует токен, пока до истечения больше RefreshMargin,
// затем делает refresh grant. Контекст живет столько же, сколько сессия.
func (k *Keycloak) TokenSource(ctx context.Context, tok *oauth2.Token) oauth2.TokenSource {
	return oauth2.ReuseTokenSourceWithExpiry(tok, k.oauth.TokenSource(k.withClient(ctx), tok), RefreshMargin)
}

// Logout завершает сессию на стороне провайдера
func (k *Keycloak) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	form := url.Values{
		"client_id":     {k.oauth.ClientID},
		"refresh_token": {refreshToken},
	}
	if k.oauth.ClientSecret != "" {
		form.Set("client_secret", k.oauth.ClientSecret)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.logoutURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: build logout request: %v", ErrProvider, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: logout: %v", ErrProvider, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		// refresh-токен уже недействителен: сессии на провайдере нет
		return nil
	default:
		return fmt.Errorf("%w: logout status %d", ErrProvider, resp.StatusCode)
	}
}

func classifyTokenError(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		switch re.Response.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, re.ErrorCode)
		}
	}
	return fmt.Errorf("%w: %v", ErrProvider, err)
}
