// file: internals/features/attendance/reports/controller/report_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/attendance/reports/service"
	settingsService "kampusku_backend/internals/features/system/settings/service"
	helper "kampusku_backend/internals/helpers"
)

type ReportController struct {
	Service  *service.ReportService
	Settings *settingsService.SettingsService
}

func NewReportController(svc *service.ReportService, settings *settingsService.SettingsService) *ReportController {
	return &ReportController{Service: svc, Settings: settings}
}

// threshold precedence: ?threshold= query, settings override, env default.
func (ctrl *ReportController) threshold(c *fiber.Ctx) (float64, error) {
	raw := strings.TrimSpace(c.Query("threshold"))
	if raw == "" {
		return ctrl.Settings.AttendanceThreshold(c.Context()), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || v > 100 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "threshold must be a percentage in (0, 100]")
	}
	return v, nil
}

// =======================
// GET /api/s/reports/student/:id
// =======================
func (ctrl *ReportController) StudentReport(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	from, err := helper.ParseDateQuery(c, "from")
	if err != nil {
		return err
	}
	to, err := helper.ParseDateQuery(c, "to")
	if err != nil {
		return err
	}
	threshold, err := ctrl.threshold(c)
	if err != nil {
		return err
	}

	report, err := ctrl.Service.StudentReport(c.Context(), id, from, to, threshold)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	return helper.Success(c, "Attendance report", report)
}

// =======================
// GET /api/s/reports/low-attendance
// =======================
func (ctrl *ReportController) LowAttendance(c *fiber.Ctx) error {
	from, err := helper.ParseDateQuery(c, "from")
	if err != nil {
		return err
	}
	to, err := helper.ParseDateQuery(c, "to")
	if err != nil {
		return err
	}
	threshold, err := ctrl.threshold(c)
	if err != nil {
		return err
	}

	filter := service.LowAttendanceFilter{
		Department: strings.TrimSpace(c.Query("department")),
		Section:    strings.TrimSpace(c.Query("section")),
		From:       from,
		To:         to,
	}
	if raw := strings.TrimSpace(c.Query("semester")); raw != "" {
		sem, err := strconv.Atoi(raw)
		if err != nil || sem < 1 {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid semester")
		}
		filter.Semester = sem
	}

	entries, err := ctrl.Service.LowAttendance(c.Context(), filter, threshold)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build shortage list")
	}
	return helper.Success(c, "Students below threshold", fiber.Map{
		"threshold": threshold,
		"count":     len(entries),
		"students":  entries,
	})
}

// =======================
// GET /api/a/reports/period
// =======================
func (ctrl *ReportController) PeriodSummary(c *fiber.Ctx) error {
	from, err := helper.ParseDateQuery(c, "from")
	if err != nil {
		return err
	}
	to, err := helper.ParseDateQuery(c, "to")
	if err != nil {
		return err
	}

	summary, err := ctrl.Service.PeriodSummary(c.Context(), from, to)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build period summary")
	}
	return helper.Success(c, "Period summary", summary)
}
