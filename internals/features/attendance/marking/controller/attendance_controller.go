// file: internals/features/attendance/marking/controller/attendance_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	sessionModel "kampusku_backend/internals/features/academics/timetable/model"
	"kampusku_backend/internals/features/attendance/marking/dto"
	"kampusku_backend/internals/features/attendance/marking/model"
	helper "kampusku_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// =======================
// POST /api/s/attendance
// =======================
// Upserts one row per student on (student, session, date); marking twice
// updates the status instead of duplicating.
func (ctrl *AttendanceController) MarkSession(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := time.Parse(helper.DateLayout, req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
	}

	var session sessionModel.TimetableSessionModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&session, "session_id = ? AND session_is_active = TRUE", req.SessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Session not found or inactive")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load session")
	}

	rows := make([]model.SessionAttendanceModel, 0, len(req.Marks))
	for _, m := range req.Marks {
		rows = append(rows, model.SessionAttendanceModel{
			AttendanceStudentID: m.StudentID,
			AttendanceSessionID: req.SessionID,
			AttendanceDate:      date,
			AttendanceStatus:    model.AttendanceStatus(m.Status),
		})
	}

	err = ctrl.DB.WithContext(c.Context()).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_student_id"},
			{Name: "attendance_session_id"},
			{Name: "attendance_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"attendance_status", "attendance_updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save attendance")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance saved", fiber.Map{
		"session_id": req.SessionID,
		"date":       req.Date,
		"marked":     len(rows),
	})
}

// =======================
// GET /api/s/attendance/session/:id?date=YYYY-MM-DD
// =======================
func (ctrl *AttendanceController) GetSessionMarks(c *fiber.Ctx) error {
	sessionID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	date, err := helper.ParseDateQuery(c, "date")
	if err != nil {
		return err
	}

	q := ctrl.DB.WithContext(c.Context()).
		Where("attendance_session_id = ?", sessionID)
	if !date.IsZero() {
		q = q.Where("attendance_date = ?", date)
	}

	var marks []model.SessionAttendanceModel
	if err := q.Order("attendance_date, attendance_student_id").Find(&marks).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}
	return helper.Success(c, "Attendance marks", marks)
}
