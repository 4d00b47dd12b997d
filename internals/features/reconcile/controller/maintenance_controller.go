// file: internals/features/reconcile/controller/maintenance_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/features/reconcile/service"
	helper "kampusku_backend/internals/helpers"
)

type MaintenanceController struct {
	Runner *service.Runner
	Store  service.RosterStore
}

func NewMaintenanceController(runner *service.Runner, store service.RosterStore) *MaintenanceController {
	return &MaintenanceController{Runner: runner, Store: store}
}

// =======================
// POST /api/a/maintenance/run
// =======================
func (ctrl *MaintenanceController) RunPass(c *fiber.Ctx) error {
	report, err := ctrl.Runner.RunMaintenancePass(c.Context())
	if err != nil {
		if errors.Is(err, service.ErrPassInProgress) {
			return helper.Error(c, fiber.StatusConflict, "A maintenance pass is already running")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Maintenance pass failed: "+err.Error())
	}
	return helper.Success(c, "Maintenance pass completed", report)
}

// =======================
// GET /api/a/maintenance/distribution
// =======================
func (ctrl *MaintenanceController) Distribution(c *fiber.Ctx) error {
	snap, err := ctrl.Store.LoadSnapshot(c.Context())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load roster: "+err.Error())
	}
	return helper.Success(c, "Cohort distribution", service.BuildDistribution(snap))
}
