package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testAccount() *domain.Account {
	return &domain.Account{
		UserID:      42,
		Username:    "alice",
		Email:       "alice@example.com",
		RealName:    "Alice",
		RealSurname: "Doe",
	}
}

func parseClaims(t *testing.T, signed string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tkn.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	return claims
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	gen := NewJWTTokenGenerator(testSecret, "expense-system", "expense-audience", 30*time.Minute)

	signed, err := gen.GenerateAccessToken(testAccount())
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	claims := parseClaims(t, signed)
	if claims["sub"] != "42" {
		t.Fatalf("unexpected sub: %v", claims["sub"])
	}
	if claims["userId"] != float64(42) {
		t.Fatalf("unexpected userId: %v", claims["userId"])
	}
	if claims["email"] != "alice@example.com" || claims["username"] != "alice" {
		t.Fatalf("unexpected identity claims: %v", claims)
	}
	if claims["given_name"] != "Alice" || claims["family_name"] != "Doe" {
		t.Fatalf("unexpected name claims: %v", claims)
	}
	if claims["iss"] != "expense-system" || claims["aud"] != "expense-audience" {
		t.Fatalf("unexpected iss/aud: %v", claims)
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("expected non-empty jti")
	}

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	if exp-iat != int64((30 * time.Minute).Seconds()) {
		t.Fatalf("expected 30m lifetime, got %ds", exp-iat)
	}
}

func TestGenerateAccessToken_FreshJTIPerToken(t *testing.T) {
	gen := NewJWTTokenGenerator(testSecret, "iss", "aud", time.Hour)

	a, err := gen.GenerateAccessToken(testAccount())
	if err != nil {
		t.Fatalf("first token: %v", err)
	}
	b, err := gen.GenerateAccessToken(testAccount())
	if err != nil {
		t.Fatalf("second token: %v", err)
	}

	if parseClaims(t, a)["jti"] == parseClaims(t, b)["jti"] {
		t.Fatalf("jti must be unique per token")
	}
}

func TestGenerateRefreshToken_OpaqueAndUnique(t *testing.T) {
	gen := NewJWTTokenGenerator(testSecret, "iss", "aud", time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		token, err := gen.GenerateRefreshToken()
		if err != nil {
			t.Fatalf("GenerateRefreshToken returned error: %v", err)
		}
		if token == "" {
			t.Fatalf("empty refresh token")
		}
		if seen[token] {
			t.Fatalf("duplicate refresh token generated")
		}
		seen[token] = true
	}
}
