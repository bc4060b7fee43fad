package auth

import (
	"time"

	"gallery-app/config"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 7 * 24 * time.Hour

// IssueToken signs a bearer token carrying the subject id and role, valid
// for seven days. There is no refresh or revocation; expiry is the only exit.
func IssueToken(userID uint, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString([]byte(config.JWT_SECRET))
}
