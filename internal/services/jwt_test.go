package services

import (
	"testing"
	"time"

	"github.com/kosdesign/game-center/internal/config"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	config.Current.JWTSecret = "test-secret"

	tok, err := GenerateAdminToken("a-1", "root", "admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseAdminToken(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.AdminID != "a-1" || claims.Username != "root" || claims.Role != "admin" {
		t.Fatalf("claims: %+v", claims)
	}
}

func TestAdminTokenExpiry(t *testing.T) {
	config.Current.JWTSecret = "test-secret"

	tok, err := GenerateAdminToken("a-1", "root", "admin", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseAdminToken(tok); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestAdminTokenWrongSecret(t *testing.T) {
	config.Current.JWTSecret = "test-secret"
	tok, err := GenerateAdminToken("a-1", "root", "admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	config.Current.JWTSecret = "other-secret"
	defer func() { config.Current.JWTSecret = "test-secret" }()
	if _, err := ParseAdminToken(tok); err == nil {
		t.Fatal("token signed with a different secret accepted")
	}
}

func TestAdminTokenGarbage(t *testing.T) {
	config.Current.JWTSecret = "test-secret"
	if _, err := ParseAdminToken("not.a.jwt"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
