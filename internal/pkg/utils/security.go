package utils

import (
	"errors"

	"uniacad-portal/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// ParseJWT verifies the signed session cookie and returns the session id
// claim. Tokens are issued by the auth service with the shared secret; the
// portal only verifies.
func ParseJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrSessionTokenInvalid(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims["session_id"].(string); ok && sessionID != "" {
			return sessionID, nil
		}
	}
	return "", exceptions.ErrSessionTokenInvalid(errors.New("session_id claim missing"))
}
