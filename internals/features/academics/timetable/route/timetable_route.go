// file: internals/features/academics/timetable/route/timetable_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/features/academics/timetable/controller"
	"kampusku_backend/internals/features/academics/timetable/service"
)

func TimetableAdminRoutes(admin fiber.Router, db *gorm.DB) {
	svc := service.NewTimetableService(db, configs.SemesterSearchMax())
	ctrl := controller.NewTimetableController(db, svc)

	t := admin.Group("/timetable")
	t.Post("/", ctrl.CreateSession)
	t.Get("/", ctrl.ListSessions)
	t.Get("/:id", ctrl.GetSession)
	t.Put("/:id", ctrl.UpdateSession)
	t.Delete("/:id", ctrl.DeactivateSession)
}
