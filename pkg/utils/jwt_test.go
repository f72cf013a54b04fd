package utils

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	token, err := mgr.GenerateToken("TERM-01", "aysha")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := mgr.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.TerminalID != "TERM-01" {
		t.Errorf("terminal ID = %q, want TERM-01", claims.TerminalID)
	}
	if claims.Operator != "aysha" {
		t.Errorf("operator = %q, want aysha", claims.Operator)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).GenerateToken("TERM-01", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := NewJWTManager("secret-b", time.Hour).ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with the wrong secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	mgr := NewJWTManager("test-secret", -time.Minute)

	token, err := mgr.GenerateToken("TERM-01", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := mgr.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateTokenMissingTerminalID(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	token, err := mgr.GenerateToken("", "aysha")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := mgr.ValidateToken(token); err == nil {
		t.Fatal("expected token without a terminal ID to be rejected")
	}
}
