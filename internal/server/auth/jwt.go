// Package auth issues and validates the signed session tokens used by the
// HTTP API. Tokens are stateless: the user id is the only claim, there is
// no server-side session record and no revocation.
package auth

import (
	"errors"
	"time"

	"github.com/framepeach/framepeach/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the numeric user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64
}

// timeFunc is a test seam for the validator clock. In tests, replace it to
// probe the expiry boundary without sleeping.
var timeFunc = time.Now

func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithTimeFunc(func() time.Time { return timeFunc() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, common.ErrInvalidToken
	}

	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	return claims.UserID, nil
}
