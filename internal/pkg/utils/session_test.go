package utils

import (
	"dentclinic-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSessionJWT(t *testing.T) {
	token, err := GenerateSessionJWT("sid-1", "secret", 1)
	require.NoError(t, err)

	sessionID, err := ParseSessionJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "sid-1", sessionID)

	_, err = ParseSessionJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseSessionJWT_RejectsExpiredAndForeignTokens(t *testing.T) {
	expired, err := GenerateSessionJWT("sid-1", "secret", -1)
	require.NoError(t, err)
	_, err = ParseSessionJWT(expired, "secret")
	assert.Error(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"session_id": "sid-1",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ParseSessionJWT(hs512, "secret")
	assert.Error(t, err)

	noSession, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ParseSessionJWT(noSession, "secret")
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestSessionCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	SetSessionCookie(rr, "token", 2*time.Hour, true)
	ClearSessionCookie(rr, true)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 2)

	set := cookies[0]
	assert.Equal(t, constvars.SessionCookieName, set.Name)
	assert.Equal(t, "token", set.Value)
	assert.Equal(t, 7200, set.MaxAge)
	assert.True(t, set.HttpOnly)
	assert.True(t, set.Secure)
	assert.Equal(t, http.SameSiteLaxMode, set.SameSite)

	cleared := cookies[1]
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
}
