// file: internals/features/attendance/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/attendance/reports/controller"
	"kampusku_backend/internals/features/attendance/reports/service"
	settingsService "kampusku_backend/internals/features/system/settings/service"
)

// ReportStaffRoutes mounts the read-only reports on the staff group.
func ReportStaffRoutes(staff fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(
		service.NewReportService(db),
		settingsService.NewSettingsService(db),
	)

	r := staff.Group("/reports")
	r.Get("/student/:id", ctrl.StudentReport)
	r.Get("/low-attendance", ctrl.LowAttendance)
}

// ReportAdminRoutes mounts the cross-cohort period summary for admins.
func ReportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(
		service.NewReportService(db),
		settingsService.NewSettingsService(db),
	)

	admin.Get("/reports/period", ctrl.PeriodSummary)
}
