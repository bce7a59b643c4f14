package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing"

func TestValidateToken(t *testing.T) {
	valid, err := GenerateToken("user-1", "a@b.c", "family", testSecret, "choapp", time.Hour)
	require.NoError(t, err)

	expired, err := GenerateToken("user-1", "", "family", testSecret, "choapp", -time.Minute)
	require.NoError(t, err)

	wrongIssuer, err := GenerateToken("user-1", "", "family", testSecret, "other", time.Hour)
	require.NoError(t, err)

	noUser, err := GenerateToken("", "", "family", testSecret, "choapp", time.Hour)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"})
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr bool
	}{
		{name: "valid token", token: valid, secret: testSecret},
		{name: "wrong secret", token: valid, secret: "other", wantErr: true},
		{name: "expired", token: expired, secret: testSecret, wantErr: true},
		{name: "wrong issuer", token: wrongIssuer, secret: testSecret, wantErr: true},
		{name: "missing user", token: noUser, secret: testSecret, wantErr: true},
		{name: "none algorithm", token: noneToken, secret: testSecret, wantErr: true},
		{name: "garbage", token: "not.a.token", secret: testSecret, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret, "choapp")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.UserID)
			assert.Equal(t, "family", claims.Role)
			assert.Equal(t, "a@b.c", claims.Email)
		})
	}
}
