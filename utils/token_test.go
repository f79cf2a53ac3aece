package utils

import (
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("65f1c0ffee0000000000abcd", TokenTypeAccess, "secret", 15)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	subject, tokenType, err := ParseToken(token, "secret")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if subject != "65f1c0ffee0000000000abcd" {
		t.Errorf("subject = %q", subject)
	}
	if tokenType != TokenTypeAccess {
		t.Errorf("tokenType = %q, want %q", tokenType, TokenTypeAccess)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("someone", TokenTypeAccess, "secret", 15)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, _, err := ParseToken(token, "other-secret"); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("someone", TokenTypeRefresh, "secret", -1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, _, err := ParseToken(token, "secret"); err == nil {
		t.Error("expected error for expired token")
	}
}
