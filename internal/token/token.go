// Package token issues and verifies the signed bearer tokens that carry a
// user identity between requests. Expiry is the only invalidation mechanism;
// there is no revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stayfinder/stayfinder-api/internal/models"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload baked into every issued token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Issuer signs and validates tokens with a process-wide secret.
type Issuer struct {
	secret []byte
	expiry time.Duration
}

func NewIssuer(secret string, expiry time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), expiry: expiry}
}

// Issue produces a signed token for the user with the configured expiry
// window baked into the claims.
func (i *Issuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
		},
		Email: user.Email,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify validates the signature and expiry and returns the embedded claims.
// Any failure (bad signature, malformed token, expired) is ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
