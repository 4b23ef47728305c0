// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"quizmaster_backend/internals/configs"
)

const AccessTTLDefault = 24 * time.Hour

var ErrInvalidCredential = errors.New("token tidak valid")

// IssueToken menerbitkan access token HS256 berisi identitas (sub, role).
// Stateless: verifikasi hanya butuh signing secret, tanpa session store.
func IssueToken(userID uuid.UUID, role string) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(AccessTTLDefault).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyToken memverifikasi signature + expiry dan mengembalikan (userID, role).
func VerifyToken(tokenString string) (uuid.UUID, string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return uuid.Nil, "", errors.New("JWT_SECRET belum diset")
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredential
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, "", ErrInvalidCredential
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", ErrInvalidCredential
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return uuid.Nil, "", ErrInvalidCredential
	}
	return userID, role, nil
}
