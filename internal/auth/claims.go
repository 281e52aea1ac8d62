package auth

import (
	"fmt"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// Claims поля access-токена Keycloak, которые нужны gateway
type Claims struct {
	jwt.RegisteredClaims

	RealmAccess struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`

	GivenName         string `json:"given_name"`
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
}

// Profile пользователь текущей сессии
type Profile struct {
	Subject string        `json:"id"`
	Name    string        `json:"name"`
	Email   string        `json:"email,omitempty"`
	Roles   []domain.Role `json:"roles"`
}

// HasRole проверка роли из realm_access.roles
func (p *Profile) HasRole(role domain.Role) bool {
	return p != nil && slices.Contains(p.Roles, role)
}

// PrimaryRole admin > prestador > cliente
func (p *Profile) PrimaryRole() (domain.Role, bool) {
	for _, r := range []domain.Role{domain.RoleAdmin, domain.RoleProvider, domain.RoleCustomer} {
		if p.HasRole(r) {
			return r, true
		}
	}
	return "", false
}

// ParseClaims разбирает access-токен без проверки подписи: токен получен
// gateway напрямую от провайдера или будет проверен API при первом вызове.
func ParseClaims(accessToken string) (*Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing sub", ErrInvalidToken)
	}
	return &claims, nil
}

// ProfileFromClaims имя: given_name -> первое слово name ->
// preferred_username -> локальная часть email
func ProfileFromClaims(c *Claims) *Profile {
	roles := make([]domain.Role, 0, len(c.RealmAccess.Roles))
	for _, raw := range c.RealmAccess.Roles {
		if r := domain.Role(strings.ToLower(raw)); r.IsValid() {
			roles = append(roles, r)
		}
	}

	return &Profile{
		Subject: c.Subject,
		Name:    displayName(c),
		Email:   c.Email,
		Roles:   roles,
	}
}

func displayName(c *Claims) string {
	if c.GivenName != "" {
		return c.GivenName
	}
	if fields := strings.Fields(c.Name); len(fields) > 0 {
		return fields[0]
	}
	if c.PreferredUsername != "" {
		return c.PreferredUsername
	}
	if local, _, ok := strings.Cut(c.Email, "@"); ok && local != "" {
		return local
	}
	return "Usuário"
}
