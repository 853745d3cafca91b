package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "unit-test-secret"

func TestGenerateParseToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, "alice", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" {
		t.Errorf("claims = %d/%q, want 42/alice", claims.UserID, claims.Username)
	}
	if claims.ID == "" {
		t.Error("token should carry a jti")
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("token should carry iat and exp")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Errorf("validity window = %v, want 1h", got)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret-a", 1, "alice", time.Hour)
	if _, err := ParseToken("secret-b", token); err == nil {
		t.Error("token signed with secret A should fail verification under secret B")
	}
}

func TestParseToken_Expired(t *testing.T) {
	now := time.Now()
	claims := &Claims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, err := ParseToken(testSecret, token); err == nil {
		t.Error("expired token should fail verification even with the correct secret")
	}
}

func TestParseToken_Malformed(t *testing.T) {
	for _, tokenStr := range []string{"", "garbage", "a.b.c"} {
		if _, err := ParseToken(testSecret, tokenStr); err == nil {
			t.Errorf("ParseToken(%q) should fail", tokenStr)
		}
	}
}

func TestParseToken_Tampered(t *testing.T) {
	token, _ := GenerateToken(testSecret, 1, "alice", time.Hour)
	repl := byte('A')
	if token[len(token)-1] == 'A' {
		repl = 'B'
	}
	tampered := token[:len(token)-1] + string(repl)
	if _, err := ParseToken(testSecret, tampered); err == nil {
		t.Error("tampered token should fail verification")
	}
}
