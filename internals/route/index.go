// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	reconcileService "kampusku_backend/internals/features/reconcile/service"
	authmw "kampusku_backend/internals/middlewares/auth"

	staffRoute "kampusku_backend/internals/features/academics/staff/route"
	studentRoute "kampusku_backend/internals/features/academics/students/route"
	subjectRoute "kampusku_backend/internals/features/academics/subjects/route"
	timetableRoute "kampusku_backend/internals/features/academics/timetable/route"
	markingRoute "kampusku_backend/internals/features/attendance/marking/route"
	reportRoute "kampusku_backend/internals/features/attendance/reports/route"
	reconcileRoute "kampusku_backend/internals/features/reconcile/route"
	settingsRoute "kampusku_backend/internals/features/system/settings/route"
	authRoute "kampusku_backend/internals/features/users/auth/route"
)

// =======================
// ROUTE REGISTRATION
// =======================
// /api/auth  public (login rate-limited)
// /api/a     ADMIN only
// /api/s     STAFF and ADMIN
func SetupRoutes(app *fiber.App, db *gorm.DB, runner *reconcileService.Runner, store reconcileService.RosterStore) {
	api := app.Group("/api")

	// Public
	authRoute.AuthRoutes(api, db)

	jwtGuard := authmw.AuthJWT(authmw.AuthJWTOpts{Secret: configs.JWTSecret})

	// Admin group
	admin := api.Group("/a",
		jwtGuard,
		authmw.OnlyRoles("Admin access required", "ADMIN"),
	)
	studentRoute.StudentAdminRoutes(admin, db)
	subjectRoute.SubjectAdminRoutes(admin, db)
	staffRoute.StaffAdminRoutes(admin, db, runner)
	timetableRoute.TimetableAdminRoutes(admin, db)
	settingsRoute.SettingsAdminRoutes(admin, db)
	reconcileRoute.MaintenanceAdminRoutes(admin, runner, store)
	reportRoute.ReportAdminRoutes(admin, db)

	// Staff group
	staff := api.Group("/s",
		jwtGuard,
		authmw.OnlyRoles("Staff access required", "STAFF", "ADMIN"),
	)
	markingRoute.AttendanceStaffRoutes(staff, db)
	reportRoute.ReportStaffRoutes(staff, db)
}
