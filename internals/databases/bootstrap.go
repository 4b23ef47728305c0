package database

import (
	"log"

	authHelper "quizmaster_backend/internals/features/users/auth/helper"
	userModel "quizmaster_backend/internals/features/users/user/model"

	"quizmaster_backend/internals/configs"
)

// EnsureDefaultAdmin menjamin minimal satu user role=admin setelah bootstrap.
func EnsureDefaultAdmin() {
	var cnt int64
	if err := DB.Model(&userModel.UserModel{}).
		Where("user_role = ?", userModel.RoleAdmin).
		Count(&cnt).Error; err != nil {
		log.Fatalf("❌ Gagal cek admin bootstrap: %v", err)
	}
	if cnt > 0 {
		return
	}

	username := configs.GetEnv("ADMIN_USERNAME", "admin@example.com")
	password := configs.GetEnv("ADMIN_PASSWORD", "admin123")

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		log.Fatalf("❌ Gagal hash password admin: %v", err)
	}

	admin := userModel.UserModel{
		UserUsername:     username,
		UserPasswordHash: hash,
		UserFullName:     "Quiz Master",
		UserRole:         userModel.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatalf("❌ Gagal membuat admin default: %v", err)
	}
	log.Printf("✅ Admin default dibuat: %s", username)
}
