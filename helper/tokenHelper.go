package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/02priyeshraj/HomePlate_Backend/models"
)

var ErrInvalidToken = errors.New("the token is invalid")

type SignedDetails struct {
	Uid           string `json:"uid"`
	PrincipalType string `json:"principal_type"`
	Name          string `json:"name"`
	jwt.RegisteredClaims
}

// TokenMaker signs and verifies HS256 bearer tokens.
type TokenMaker struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenMaker(secret string, ttl time.Duration) *TokenMaker {
	return &TokenMaker{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateToken creates a JWT for the principal.
func (m *TokenMaker) GenerateToken(p models.Principal) (string, error) {
	now := m.now()
	claims := &SignedDetails{
		Uid:           p.ID,
		PrincipalType: p.Type,
		Name:          p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks signature, expiry and principal type.
func (m *TokenMaker) ValidateToken(signedToken string) (models.Principal, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return models.Principal{}, ErrInvalidToken
	}

	if claims.Uid == "" {
		return models.Principal{}, ErrInvalidToken
	}
	if claims.PrincipalType != models.PrincipalCustomer && claims.PrincipalType != models.PrincipalSeller {
		return models.Principal{}, ErrInvalidToken
	}

	return models.Principal{ID: claims.Uid, Type: claims.PrincipalType, Name: claims.Name}, nil
}
