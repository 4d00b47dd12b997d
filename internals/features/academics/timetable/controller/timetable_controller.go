// file: internals/features/academics/timetable/controller/timetable_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	"kampusku_backend/internals/features/academics/timetable/dto"
	"kampusku_backend/internals/features/academics/timetable/model"
	"kampusku_backend/internals/features/academics/timetable/service"
	helper "kampusku_backend/internals/helpers"
)

var validate = validator.New()

type TimetableController struct {
	DB      *gorm.DB
	Service *service.TimetableService
}

func NewTimetableController(db *gorm.DB, svc *service.TimetableService) *TimetableController {
	return &TimetableController{DB: db, Service: svc}
}

// =======================
// POST /api/a/timetable
// =======================
// The cohort is validated before the row exists: an empty semester is
// corrected to the populated one, and a staff member is auto-assigned
// from the subject registrations when none is given.
func (ctrl *TimetableController) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var subject subjectModel.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).First(&subject, "subject_id = ?", req.SubjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Subject does not exist")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load subject")
	}

	department := strings.TrimSpace(req.Department)
	section := strings.ToUpper(strings.TrimSpace(req.Section))

	semester, err := ctrl.Service.ValidateAndCorrectEnrollment(c.Context(), department, req.Semester, section)
	if err != nil {
		if errors.Is(err, service.ErrNoStudentsAnywhere) {
			return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to validate enrollment")
	}

	staffID := req.StaffID
	if staffID == nil {
		staffID, err = ctrl.Service.AutoAssignStaff(c.Context(), req.SubjectID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to auto-assign staff")
		}
	}

	session := model.TimetableSessionModel{
		SessionSubjectID:  &req.SubjectID,
		SessionStaffID:    staffID,
		SessionDepartment: department,
		SessionSemester:   semester,
		SessionSection:    section,
		SessionDayOfWeek:  req.DayOfWeek,
		SessionStartTime:  req.StartTime,
		SessionEndTime:    req.EndTime,
		SessionIsActive:   true,
	}
	if room := strings.TrimSpace(req.Room); room != "" {
		session.SessionRoom = &room
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&session).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	msg := "Session created"
	if semester != req.Semester {
		msg = "Session created (semester corrected to match enrollment)"
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, msg, session)
}

// =======================
// GET /api/a/timetable?department=&semester=&section=
// =======================
func (ctrl *TimetableController) ListSessions(c *fiber.Ctx) error {
	department := strings.TrimSpace(c.Query("department"))
	section := strings.ToUpper(strings.TrimSpace(c.Query("section")))
	semester := c.QueryInt("semester")

	if department != "" && semester > 0 && section != "" {
		sessions, err := ctrl.Service.SessionsForCohort(c.Context(), department, semester, section)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to list sessions")
		}
		return helper.Success(c, "Timetable", sessions)
	}

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.TimetableSessionModel{}).
		Preload("Subject").
		Preload("Staff")
	if department != "" {
		q = q.Where("session_department = ?", department)
	}
	if semester > 0 {
		q = q.Where("session_semester = ?", semester)
	}
	if section != "" {
		q = q.Where("session_section = ?", section)
	}
	if !c.QueryBool("include_inactive") {
		q = q.Where("session_is_active = TRUE")
	}

	var sessions []model.TimetableSessionModel
	if err := q.Order("session_id").Find(&sessions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list sessions")
	}
	return helper.Success(c, "Timetable", sessions)
}

// =======================
// GET /api/a/timetable/:id
// =======================
func (ctrl *TimetableController) GetSession(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var session model.TimetableSessionModel
	err = ctrl.DB.WithContext(c.Context()).
		Preload("Subject").
		Preload("Staff").
		First(&session, "session_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load session")
	}
	return helper.Success(c, "Session found", session)
}

// =======================
// PUT /api/a/timetable/:id
// =======================
func (ctrl *TimetableController) UpdateSession(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var session model.TimetableSessionModel
	if err := ctrl.DB.WithContext(c.Context()).First(&session, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load session")
	}

	updates := map[string]interface{}{}
	if req.SubjectID != nil {
		updates["session_subject_id"] = *req.SubjectID
		if req.StaffID == nil {
			staffID, err := ctrl.Service.AutoAssignStaff(c.Context(), *req.SubjectID)
			if err != nil {
				return helper.Error(c, fiber.StatusInternalServerError, "Failed to auto-assign staff")
			}
			if staffID != nil {
				updates["session_staff_id"] = *staffID
			}
		}
	}
	if req.StaffID != nil {
		updates["session_staff_id"] = *req.StaffID
	}

	// Cohort change revalidates enrollment against the new key.
	if req.Semester != nil || req.Section != nil {
		semester := session.SessionSemester
		if req.Semester != nil {
			semester = *req.Semester
		}
		section := session.SessionSection
		if req.Section != nil {
			section = strings.ToUpper(strings.TrimSpace(*req.Section))
		}
		corrected, err := ctrl.Service.ValidateAndCorrectEnrollment(c.Context(), session.SessionDepartment, semester, section)
		if err != nil {
			if errors.Is(err, service.ErrNoStudentsAnywhere) {
				return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to validate enrollment")
		}
		updates["session_semester"] = corrected
		updates["session_section"] = section
	}

	if req.DayOfWeek != nil {
		updates["session_day_of_week"] = *req.DayOfWeek
	}
	if req.StartTime != nil {
		updates["session_start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["session_end_time"] = *req.EndTime
	}
	if req.Room != nil {
		updates["session_room"] = strings.TrimSpace(*req.Room)
	}
	if req.IsActive != nil {
		updates["session_is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&session).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update session")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Subject").
		Preload("Staff").
		First(&session, "session_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to reload session")
	}
	return helper.Success(c, "Session updated", session)
}

// =======================
// DELETE /api/a/timetable/:id (soft: deactivate)
// =======================
func (ctrl *TimetableController) DeactivateSession(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.TimetableSessionModel{}).
		Where("session_id = ?", id).
		Update("session_is_active", false)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate session")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Session not found")
	}
	return helper.Success(c, "Session deactivated", fiber.Map{"session_id": id})
}
