// file: internals/features/system/settings/route/settings_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/system/settings/controller"
	"kampusku_backend/internals/features/system/settings/service"
)

func SettingsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSettingsController(service.NewSettingsService(db))

	s := admin.Group("/settings")
	s.Get("/:key", ctrl.GetSetting)
	s.Put("/:key", ctrl.PutSetting)
}
