package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique-storefront/internal/models"
	"boutique-storefront/internal/store"
)

func testAuthResponse(t *testing.T) models.AuthResponse {
	t.Helper()
	token, err := GenerateToken("u1", "client@boutique.tn", "customer", testSecret)
	require.NoError(t, err)
	return models.AuthResponse{
		User:  models.User{ID: "u1", Email: "client@boutique.tn", FullName: "Client Test", Role: "customer"},
		Token: token,
	}
}

func TestSession_SignInPersistsTokenAndProfile(t *testing.T) {
	storage := store.NewMemoryStorage()
	session := NewSession(storage)

	require.NoError(t, session.SignIn(testAuthResponse(t)))

	assert.NotEmpty(t, session.Token())
	assert.True(t, session.Valid())

	user, err := session.User()
	require.NoError(t, err)
	assert.Equal(t, "client@boutique.tn", user.Email)

	// A fresh session over the same storage stays signed in.
	reloaded := NewSession(storage)
	assert.Equal(t, session.Token(), reloaded.Token())
	user, err = reloaded.User()
	require.NoError(t, err)
	assert.Equal(t, "Client Test", user.FullName)
}

func TestSession_SignOutPurgesEverything(t *testing.T) {
	storage := store.NewMemoryStorage()
	session := NewSession(storage)
	require.NoError(t, session.SignIn(testAuthResponse(t)))

	require.NoError(t, session.SignOut())

	assert.Empty(t, session.Token())
	assert.False(t, session.Valid())
	_, err := session.User()
	assert.Error(t, err)

	_, err = storage.Load(store.KeyToken)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = storage.Load(store.KeyUserInfo)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSession_ValidRejectsExpiredToken(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	storage := store.NewMemoryStorage()
	require.NoError(t, storage.Save(store.KeyToken, []byte(signed)))

	session := NewSession(storage)
	assert.False(t, session.Valid())
}

func TestSession_EmptyIsSignedOut(t *testing.T) {
	session := NewSession(store.NewMemoryStorage())
	assert.Empty(t, session.Token())
	assert.False(t, session.Valid())
}
