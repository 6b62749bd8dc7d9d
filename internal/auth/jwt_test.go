package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestGenerateAndParseToken(t *testing.T) {
	SetSecret("test-secret")

	tokenStr, err := GenerateToken("admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, claims, err := TokenClaims("Bearer " + tokenStr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims["sub"] != "admin" {
		t.Errorf("expected sub 'admin', got %v", claims["sub"])
	}
}

func TestTokenClaims_Invalid(t *testing.T) {
	SetSecret("test-secret")

	tests := []struct {
		name   string
		header string
	}{
		{name: "no bearer prefix", header: "Basic abc"},
		{name: "empty header", header: ""},
		{name: "garbage token", header: "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := TokenClaims(tt.header); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTokenClaims_WrongSecret(t *testing.T) {
	SetSecret("first-secret")
	tokenStr, err := GenerateToken("admin")
	if err != nil {
		t.Fatal(err)
	}

	SetSecret("second-secret")
	if _, _, err := TokenClaims("Bearer " + tokenStr); err == nil {
		t.Error("expected token signed with old secret to be rejected")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	if !CheckPassword(string(hash), "secret") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(string(hash), "wrong") {
		t.Error("expected mismatched password to fail")
	}
}
