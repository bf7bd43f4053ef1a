package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyadi/nebeng/internal/pkg/models"
)

var testConfig = models.JWTConfig{
	Secret:     "test-secret",
	Expiration: 60,
	Issuer:     "nebeng-test",
}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, testConfig)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(tokenString, testConfig.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, "nebeng-test", claims["iss"])

	parsed, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tokenString, _, err := GenerateToken(uuid.New(), testConfig)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	expired := models.JWTConfig{Secret: "test-secret", Expiration: -1, Issuer: "nebeng-test"}
	tokenString, _, err := GenerateToken(uuid.New(), expired)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, expired.Secret)
	assert.Error(t, err)
}

func TestValidateToken_WrongAlgorithm(t *testing.T) {
	// Unsigned tokens must be rejected by the signing-method check
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.MapClaims{"user_id": uuid.New().String()})
	tokenString, err := token.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, testConfig.Secret)
	assert.Error(t, err)
}

func TestUserIDFromClaims_Invalid(t *testing.T) {
	_, err := UserIDFromClaims(jwtlib.MapClaims{})
	assert.Error(t, err)

	_, err = UserIDFromClaims(jwtlib.MapClaims{"user_id": "not-a-uuid"})
	assert.Error(t, err)
}
