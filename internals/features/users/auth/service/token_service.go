// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"hader_backend/internals/configs"
	helperAuth "hader_backend/internals/helpers/auth"
)

// Masa berlaku access token. Cookie login pakai nilai yang sama.
const TokenTTL = 24 * time.Hour

// IssueToken menandatangani klaim identitas dengan HS256.
// Secret kosong = error (bukan fallback) — LoadEnv sudah fatal lebih dulu,
// tapi caller non-HTTP (seeder/test) tetap dapat error yang jelas.
func IssueToken(identity helperAuth.Identity) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":   identity.ID.String(),
		"name": identity.Name,
		"role": identity.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyToken memvalidasi signature + expiry dan mengembalikan identitas.
// SEMUA kegagalan (malformed, tampered, expired) dibalas (nil, false) —
// caller tidak perlu branching per jenis error.
func VerifyToken(raw string) (*helperAuth.Identity, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || configs.JWTSecret == "" {
		return nil, false
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil || !tok.Valid {
		return nil, false
	}

	idStr, _ := claims["id"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, false
	}
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if role == "" {
		return nil, false
	}

	return &helperAuth.Identity{ID: id, Name: name, Role: role}, true
}

// TokenExpiry membaca klaim exp tanpa memvalidasi ulang — dipakai logout
// untuk tahu kapan entry blacklist boleh dibersihkan.
func TokenExpiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return time.Now().UTC().Add(TokenTTL)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0).UTC()
	}
	return time.Now().UTC().Add(TokenTTL)
}
