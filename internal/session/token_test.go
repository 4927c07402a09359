package session

import (
	"testing"
	"time"
)

func TestToken_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := MintToken(secret, "session-123", time.Hour)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	sid, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sid != "session-123" {
		t.Errorf("expected session-123, got %q", sid)
	}
}

func TestToken_WrongSecret(t *testing.T) {
	token, err := MintToken([]byte("secret-a"), "session-123", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken([]byte("secret-b"), token); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestToken_Expired(t *testing.T) {
	token, err := MintToken([]byte("secret"), "session-123", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken([]byte("secret"), token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestToken_Garbage(t *testing.T) {
	for _, v := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken([]byte("secret"), v); err == nil {
			t.Errorf("expected %q to be rejected", v)
		}
	}
}
