// file: internals/features/academics/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/students/controller"
)

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	s := admin.Group("/students")
	s.Post("/", ctrl.CreateStudent)
	s.Get("/", ctrl.ListStudents)
	s.Get("/:id", ctrl.GetStudent)
	s.Put("/:id", ctrl.UpdateStudent)
	s.Delete("/:id", ctrl.DeactivateStudent)
}
