// file: internals/features/academics/staff/route/staff_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/staff/controller"
	reconcileService "kampusku_backend/internals/features/reconcile/service"
)

func StaffAdminRoutes(admin fiber.Router, db *gorm.DB, runner *reconcileService.Runner) {
	ctrl := controller.NewStaffController(db, runner)

	s := admin.Group("/staff")
	s.Post("/", ctrl.CreateStaff)
	s.Get("/", ctrl.ListStaff)
	s.Get("/:id", ctrl.GetStaff)
	s.Put("/:id/subjects", ctrl.SetStaffSubjects)
	s.Put("/:id", ctrl.UpdateStaff)
	s.Delete("/:id", ctrl.DeactivateStaff)
}
