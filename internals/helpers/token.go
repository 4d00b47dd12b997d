package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	LocUserID    = "user_id"
	LocUserRole  = "userRole"
	LocUsername  = "username"
	LocStudentID = "student_id"
	LocStaffID   = "staff_id"
)

// GetUserRole reads the role hydrated by the JWT middleware.
func GetUserRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return strings.ToUpper(strings.TrimSpace(v))
	}
	return ""
}

func GetUsername(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUsername).(string); ok {
		return v
	}
	return ""
}

func GetUserIDFromToken(c *fiber.Ctx) (int64, error) {
	v := c.Locals(LocUserID)
	switch t := v.(type) {
	case int64:
		return t, nil
	case float64:
		return int64(t), nil
	}
	return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing user id")
}

// GetStaffIDFromToken returns the staff id embedded in the token, when the
// logged-in user is a staff member.
func GetStaffIDFromToken(c *fiber.Ctx) (int64, error) {
	v := c.Locals(LocStaffID)
	switch t := v.(type) {
	case int64:
		return t, nil
	case float64:
		return int64(t), nil
	}
	return 0, fiber.NewError(fiber.StatusForbidden, "Forbidden: not a staff account")
}

func GetStudentIDFromToken(c *fiber.Ctx) (int64, error) {
	v := c.Locals(LocStudentID)
	switch t := v.(type) {
	case int64:
		return t, nil
	case float64:
		return int64(t), nil
	}
	return 0, fiber.NewError(fiber.StatusForbidden, "Forbidden: not a student account")
}
