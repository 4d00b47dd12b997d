// file: internals/features/reconcile/route/maintenance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/features/reconcile/controller"
	"kampusku_backend/internals/features/reconcile/service"
	"kampusku_backend/internals/middlewares"
)

// MaintenanceAdminRoutes mounts the reconciliation endpoints on the admin
// group. The run endpoint gets its own tight rate limit on top of the
// single-flight guard in the runner.
func MaintenanceAdminRoutes(admin fiber.Router, runner *service.Runner, store service.RosterStore) {
	ctrl := controller.NewMaintenanceController(runner, store)

	m := admin.Group("/maintenance")
	m.Post("/run", middlewares.MaintenanceRateLimiter(), ctrl.RunPass)
	m.Get("/distribution", ctrl.Distribution)
}
