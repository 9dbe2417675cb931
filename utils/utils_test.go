package utils

import (
	"strings"
	"testing"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("wrong password accepted")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(token, "Bearer ") {
		t.Fatalf("token = %q, want a Bearer prefix", token)
	}

	// ParseJWT accepts the token with and without the prefix.
	for _, tk := range []string{token, strings.TrimPrefix(token, "Bearer ")} {
		username, role, err := ParseJWT(tk)
		if err != nil {
			t.Fatalf("parse %q: %v", tk[:12], err)
		}
		if username != "alice" {
			t.Errorf("username = %q, want alice", username)
		}
		if role == "" {
			t.Error("empty role claim")
		}
	}
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	for _, tk := range []string{"", "Bearer ", "not.a.token", "Bearer not.a.token"} {
		if _, _, err := ParseJWT(tk); err == nil {
			t.Errorf("ParseJWT(%q) accepted an invalid token", tk)
		}
	}
}
