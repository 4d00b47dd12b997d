package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "kampusku_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // use access_token cookie when no Bearer header
}

// AuthJWT validates the bearer token and hydrates locals expected by the
// helpers (user_id, userRole, username, staff_id, student_id).
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) Token: Authorization: Bearer xxx (or cookie when allowed)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verify algorithm
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		if v, ok := claims["role"].(string); ok {
			c.Locals(helper.LocUserRole, strings.ToUpper(strings.TrimSpace(v)))
		}
		if v, ok := claims["username"].(string); ok {
			c.Locals(helper.LocUsername, v)
		}
		if v, ok := claims["user_id"].(float64); ok {
			c.Locals(helper.LocUserID, int64(v))
		}
		if v, ok := claims["staff_id"].(float64); ok {
			c.Locals(helper.LocStaffID, int64(v))
		}
		if v, ok := claims["student_id"].(float64); ok {
			c.Locals(helper.LocStudentID, int64(v))
		}

		return c.Next()
	}
}
