package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

// refreshTokenBytes is the entropy of an opaque refresh token before
// base64 encoding.
const refreshTokenBytes = 64

// JWTTokenGenerator mints HS256-signed access tokens and opaque refresh
// tokens. Access-token validation is the bearer middleware's job; this
// type only issues.
type JWTTokenGenerator struct {
	secret    []byte
	issuer    string
	audience  string
	accessTTL time.Duration
}

func NewJWTTokenGenerator(secret, issuer, audience string, accessTTL time.Duration) *JWTTokenGenerator {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	return &JWTTokenGenerator{
		secret:    []byte(secret),
		issuer:    issuer,
		audience:  audience,
		accessTTL: accessTTL,
	}
}

// GenerateAccessToken encodes the account's identity claims and signs them
// with the configured symmetric secret. Each token carries a fresh jti.
func (g *JWTTokenGenerator) GenerateAccessToken(account *domain.Account) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":         strconv.Itoa(account.UserID),
		"email":       account.Email,
		"given_name":  account.RealName,
		"family_name": account.RealSurname,
		"username":    account.Username,
		"userId":      account.UserID,
		"jti":         uuid.NewString(),
		"iss":         g.issuer,
		"aud":         g.audience,
		"iat":         now.Unix(),
		"exp":         now.Add(g.accessTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// GenerateRefreshToken returns 64 bytes of CSPRNG entropy as base64.
func (g *JWTTokenGenerator) GenerateRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
