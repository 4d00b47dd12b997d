// file: internals/features/attendance/marking/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/attendance/marking/controller"
)

func AttendanceStaffRoutes(staff fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	a := staff.Group("/attendance")
	a.Post("/", ctrl.MarkSession)
	a.Get("/session/:id", ctrl.GetSessionMarks)
}
