package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"hader_backend/internals/configs"
	helperAuth "hader_backend/internals/helpers/auth"
)

func withSecret(t *testing.T, secret string) {
	t.Helper()
	old := configs.JWTSecret
	configs.JWTSecret = secret
	t.Cleanup(func() { configs.JWTSecret = old })
}

func TestIssueAndVerifyToken(t *testing.T) {
	withSecret(t, "test-secret")

	identity := helperAuth.Identity{
		ID:   uuid.New(),
		Name: "Ustadz Ahmad",
		Role: "teacher",
	}

	raw, err := IssueToken(identity)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if raw == "" {
		t.Fatal("IssueToken returned empty token")
	}

	got, ok := VerifyToken(raw)
	if !ok {
		t.Fatal("VerifyToken rejected a freshly issued token")
	}
	if got.ID != identity.ID {
		t.Errorf("id = %s, want %s", got.ID, identity.ID)
	}
	if got.Name != identity.Name {
		t.Errorf("name = %q, want %q", got.Name, identity.Name)
	}
	if got.Role != identity.Role {
		t.Errorf("role = %q, want %q", got.Role, identity.Role)
	}
}

func TestIssueTokenWithoutSecret(t *testing.T) {
	withSecret(t, "")
	if _, err := IssueToken(helperAuth.Identity{ID: uuid.New(), Role: "student"}); err == nil {
		t.Fatal("expected error when JWT_SECRET is empty")
	}
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	withSecret(t, "test-secret")

	raw, err := IssueToken(helperAuth.Identity{ID: uuid.New(), Name: "x", Role: "student"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	// rusak satu karakter di bagian signature
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, ok := VerifyToken(tampered); ok {
		t.Fatal("VerifyToken accepted a tampered token")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	withSecret(t, "test-secret")

	past := time.Now().UTC().Add(-2 * time.Hour)
	claims := jwt.MapClaims{
		"id":   uuid.New().String(),
		"name": "x",
		"role": "student",
		"iat":  past.Add(-TokenTTL).Unix(),
		"exp":  past.Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, ok := VerifyToken(raw); ok {
		t.Fatal("VerifyToken accepted an expired token")
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	withSecret(t, "secret-a")
	raw, err := IssueToken(helperAuth.Identity{ID: uuid.New(), Role: "admin"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	configs.JWTSecret = "secret-b"
	if _, ok := VerifyToken(raw); ok {
		t.Fatal("VerifyToken accepted a token signed with another secret")
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	withSecret(t, "test-secret")

	cases := []string{"", "   ", "not-a-jwt", "a.b.c"}
	for _, raw := range cases {
		if _, ok := VerifyToken(raw); ok {
			t.Errorf("VerifyToken(%q) = ok, want rejection", raw)
		}
	}
}

func TestTokenExpiryReadsClaim(t *testing.T) {
	withSecret(t, "test-secret")

	before := time.Now().UTC()
	raw, err := IssueToken(helperAuth.Identity{ID: uuid.New(), Role: "student"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	exp := TokenExpiry(raw)
	want := before.Add(TokenTTL)
	if exp.Before(want.Add(-time.Minute)) || exp.After(want.Add(time.Minute)) {
		t.Errorf("TokenExpiry = %s, want ~%s", exp, want)
	}
}
