package utils

import (
	"dentclinic-service/internal/pkg/constvars"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidSessionToken = errors.New("invalid session token")

// sessionClaims binds a browser session id to the signed cookie.
type sessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func GenerateSessionJWT(sessionID, secret string, jwtExpiryTime int) (string, error) {
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(jwtExpiryTime) * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseSessionJWT returns the session id of a valid HS256 session token.
func ParseSessionJWT(tokenString, secret string) (string, error) {
	claims := new(sessionClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidSessionToken
	}
	return claims.SessionID, nil
}

// SetSessionCookie stores the signed session token for the browser.
func SetSessionCookie(w http.ResponseWriter, token string, lifetime time.Duration, secure bool) {
	http.SetCookie(w, sessionCookie(token, int(lifetime.Seconds()), secure))
}

func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, sessionCookie("", -1, secure))
}

func sessionCookie(value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
