package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := Generate("secret", "inventory-ops", "user-1", RoleOperator, time.Hour)
	require.NoError(t, err)

	claims, err := Parse("secret", "inventory-ops", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, RoleOperator, claims.Role)
}

func TestParse_Rejects(t *testing.T) {
	valid, err := Generate("secret", "inventory-ops", "user-1", RoleViewer, time.Hour)
	require.NoError(t, err)
	expired, err := Generate("secret", "inventory-ops", "user-1", RoleViewer, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		issuer string
		token  string
	}{
		{"firma incorrecta", "otro", "inventory-ops", valid},
		{"emisor distinto", "secret", "otro", valid},
		{"expirado", "secret", "inventory-ops", expired},
		{"basura", "secret", "", "no.es.jwt"},
		{"secreto vacío", "", "", valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.secret, tt.issuer, tt.token)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_RequiresSecretAndUser(t *testing.T) {
	_, err := Generate("", "", "user-1", RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
	_, err = Generate("secret", "", "", RoleAdmin, time.Hour)
	assert.Error(t, err)
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleAdmin))
	assert.True(t, IsValidRole(RoleViewer))
	assert.False(t, IsValidRole("bodeguero"))
}
