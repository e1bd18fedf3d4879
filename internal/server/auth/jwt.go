// Package auth implements the credential primitives of the service:
// bcrypt password hashing and HS256 bearer tokens. The signing secret is
// always passed in by the caller; this package holds no state.
package auth

import (
	"errors"
	"time"

	"github.com/dberestov/webcalc/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims plus the account ID the
// token was issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// GenerateToken mints a signed HS256 token for userID, valid for ttl.
func GenerateToken(userID string, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies tokenString against secretKey and returns the
// subject account ID. Failures are reported as one of three distinct
// sentinels: common.ErrMalformedToken when the string cannot be parsed,
// common.ErrBadSignature on signature mismatch, common.ErrTokenExpired when
// the signature verifies but the token is past its expiry.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", common.ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		default:
			return "", common.ErrMalformedToken
		}
	}

	if !token.Valid {
		return "", common.ErrBadSignature
	}

	return claims.UserID, nil
}
