// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/features/users/auth/dto"
	"kampusku_backend/internals/features/users/auth/model"
	helper "kampusku_backend/internals/helpers"
)

var validate = validator.New()

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func accessClaims(u *model.UserModel) jwt.MapClaims {
	claims := jwt.MapClaims{
		"user_id":  u.UserID,
		"username": u.UserUsername,
		"role":     u.UserRole,
		"exp":      time.Now().Add(accessTokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	}
	if u.UserStaffID != nil {
		claims["staff_id"] = *u.UserStaffID
	}
	if u.UserStudentID != nil {
		claims["student_id"] = *u.UserStudentID
	}
	return claims
}

func signToken(claims jwt.MapClaims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// issueTokens signs the access token and stores a fresh refresh token row.
func (ctrl *AuthController) issueTokens(c *fiber.Ctx, u *model.UserModel) (*dto.TokenPairResponse, error) {
	access, err := signToken(accessClaims(u), configs.JWTSecret)
	if err != nil {
		return nil, err
	}

	jti := uuid.NewString()
	refreshClaims := jwt.MapClaims{
		"user_id": u.UserID,
		"jti":     jti,
		"exp":     time.Now().Add(refreshTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	refresh, err := signToken(refreshClaims, configs.JWTRefreshSecret)
	if err != nil {
		return nil, err
	}

	row := model.RefreshTokenModel{
		TokenJTI:       jti,
		TokenUserID:    u.UserID,
		TokenExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Role:         u.UserRole,
		Username:     u.UserUsername,
	}, nil
}

// =======================
// POST /api/auth/login
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_username = ? AND user_is_active = TRUE", strings.TrimSpace(req.Username)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	tokens, err := ctrl.issueTokens(c, &user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	return helper.Success(c, "Login successful", tokens)
}

// parseRefresh verifies the refresh JWT and returns its claims.
func parseRefresh(raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return nil, errors.New("invalid refresh token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid refresh claims")
	}
	return claims, nil
}

// =======================
// POST /api/auth/refresh
// =======================
// Rotation: the presented token's jti is revoked and a new pair issued.
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	claims, err := parseRefresh(req.RefreshToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	jti, _ := claims["jti"].(string)
	userIDf, _ := claims["user_id"].(float64)
	if jti == "" || userIDf == 0 {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var row model.RefreshTokenModel
	err = ctrl.DB.WithContext(c.Context()).
		First(&row, "token_jti = ? AND token_revoked = FALSE AND token_expires_at > NOW()", jti).Error
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token expired or revoked")
	}

	var user model.UserModel
	err = ctrl.DB.WithContext(c.Context()).
		First(&user, "user_id = ? AND user_is_active = TRUE", int64(userIDf)).Error
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Account not found or inactive")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.RefreshTokenModel{}).
		Where("token_jti = ?", jti).
		Update("token_revoked", true).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to rotate token")
	}

	tokens, err := ctrl.issueTokens(c, &user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	return helper.Success(c, "Token refreshed", tokens)
}

// =======================
// POST /api/auth/logout
// =======================
// Revokes every refresh token of the calling user.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.RefreshTokenModel{}).
		Where("token_user_id = ? AND token_revoked = FALSE", userID).
		Update("token_revoked", true).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Logout failed")
	}
	return helper.Success(c, "Logged out", nil)
}
