// file: internals/features/system/settings/controller/settings_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/system/settings/service"
	helper "kampusku_backend/internals/helpers"
)

type SettingsController struct {
	Service *service.SettingsService
}

func NewSettingsController(svc *service.SettingsService) *SettingsController {
	return &SettingsController{Service: svc}
}

// =======================
// GET /api/a/settings/:key
// =======================
func (ctrl *SettingsController) GetSetting(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	if key == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Setting key is required")
	}

	s, err := ctrl.Service.Get(c.Context(), key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Setting not found: "+key)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load setting")
	}
	return helper.Success(c, "Setting found", s)
}

// =======================
// PUT /api/a/settings/:key
// =======================
func (ctrl *SettingsController) PutSetting(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	if key == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Setting key is required")
	}

	body := c.Body()
	if !json.Valid(body) {
		return helper.Error(c, fiber.StatusBadRequest, "Setting value must be valid JSON")
	}

	s, err := ctrl.Service.Put(c.Context(), key, datatypes.JSON(body))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save setting")
	}
	return helper.Success(c, "Setting saved", s)
}
