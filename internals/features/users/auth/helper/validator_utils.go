package helper

import (
	"errors"
	"strings"
)

// ValidateRegisterInput cek field wajib sebelum hashing & insert.
func ValidateRegisterInput(username, fullName, password string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("username wajib diisi")
	}
	if strings.TrimSpace(fullName) == "" {
		return errors.New("full_name wajib diisi")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password wajib diisi")
	}
	if len(password) < 6 {
		return errors.New("password minimal 6 karakter")
	}
	return nil
}
