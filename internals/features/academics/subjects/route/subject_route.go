// file: internals/features/academics/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/subjects/controller"
)

func SubjectAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubjectController(db)

	s := admin.Group("/subjects")
	s.Post("/", ctrl.CreateSubject)
	s.Get("/", ctrl.ListSubjects)
	s.Get("/:id", ctrl.GetSubject)
	s.Put("/:id", ctrl.UpdateSubject)
	s.Delete("/:id", ctrl.DeleteSubject)
}
