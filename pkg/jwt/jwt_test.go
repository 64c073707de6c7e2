package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/PuntoVenta-api/pkg/jwt"
)

const (
	secret   = "test-secret-key-for-unit-tests"
	userID   = "00000000-0000-0000-0000-000000000001"
	tenantID = "00000000-0000-0000-0000-000000000002"
	issuer   = "puntoventa-test"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, tenantID, "employee", issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	gotUser, gotTenant, gotRole, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)

	assert.Equal(t, userID, gotUser)
	assert.Equal(t, tenantID, gotTenant)
	assert.Equal(t, "employee", gotRole)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", userID, tenantID, "admin", issuer, 60)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración -1 minuto: ya expirado
	tok, err := pkgjwt.Generate(secret, userID, tenantID, "admin", issuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, tenantID, "admin", issuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenMalformado(t *testing.T) {
	_, _, _, err := pkgjwt.Parse(secret, "no.es.un-jwt")
	assert.Error(t, err)
}
