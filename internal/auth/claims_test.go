package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		claims Claims
		want   string
	}{
		{"given name", Claims{GivenName: "Ana", Name: "Beatriz Souza"}, "Ana"},
		{"first word of name", Claims{Name: "Beatriz Souza"}, "Beatriz"},
		{"preferred username", Claims{PreferredUsername: "bia"}, "bia"},
		{"email local part", Claims{Email: "carla@example.com"}, "carla"},
		{"fallback", Claims{}, "Usuário"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayName(&tt.claims))
		})
	}
}

func TestProfileFromClaims_Roles(t *testing.T) {
	c := &Claims{}
	c.Subject = "u-1"
	c.RealmAccess.Roles = []string{"offline_access", "PRESTADOR", "cliente", "uma_authorization"}

	p := ProfileFromClaims(c)
	assert.Equal(t, []domain.Role{domain.RoleProvider, domain.RoleCustomer}, p.Roles)

	role, ok := p.PrimaryRole()
	require.True(t, ok)
	assert.Equal(t, domain.RoleProvider, role)

	var empty *Profile
	assert.False(t, empty.HasRole(domain.RoleAdmin))
	_, ok = (&Profile{}).PrimaryRole()
	assert.False(t, ok)
}

func TestParseClaims_RequiresSubject(t *testing.T) {
	_, err := ParseClaims(signToken("", nil, time.Now().Add(time.Hour)))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
