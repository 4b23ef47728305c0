// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "quizmaster_backend/internals/features/users/auth/helper"
	tokenService "quizmaster_backend/internals/features/users/auth/service"
	userDTO "quizmaster_backend/internals/features/users/user/dto"
	userModel "quizmaster_backend/internals/features/users/user/model"
	helper "quizmaster_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

// format dob di body registrasi
const dobLayout = "02/01/2006"

// REGISTER
// POST /auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req userDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Username = strings.TrimSpace(req.Username)
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Qualification != nil {
		q := strings.TrimSpace(*req.Qualification)
		if q == "" {
			req.Qualification = nil
		} else {
			req.Qualification = &q
		}
	}

	if err := authHelper.ValidateRegisterInput(req.Username, req.FullName, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var dob *time.Time
	if req.DOB != nil && strings.TrimSpace(*req.DOB) != "" {
		t, err := time.Parse(dobLayout, strings.TrimSpace(*req.DOB))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format dob harus dd/mm/yyyy")
		}
		dob = &t
	}

	role := userModel.RoleUser
	if req.Role != nil && *req.Role != "" {
		role = *req.Role
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	u := userModel.UserModel{
		UserUsername:      req.Username,
		UserPasswordHash:  hash,
		UserFullName:      req.FullName,
		UserQualification: req.Qualification,
		UserDOB:           dob,
		UserRole:          role,
	}
	if err := h.DB.Create(&u).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			// referensi memakai 400 (bukan 409) untuk username kembar
			return helper.JsonError(c, fiber.StatusBadRequest, "Username sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", userDTO.FromUserModel(u))
}

// LOGIN
// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username dan password wajib diisi")
	}

	var u userModel.UserModel
	err := h.DB.First(&u, "user_username = ?", strings.TrimSpace(req.Username)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sama dengan password salah, jangan bocorkan username valid
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if err := authHelper.CheckPasswordHash(u.UserPasswordHash, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := tokenService.IssueToken(u.UserID, u.UserRole)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": token,
	})
}

// ME
// GET /auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var u userModel.UserModel
	if err := h.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonOK(c, "Profil ditemukan", userDTO.FromUserModel(u))
}
