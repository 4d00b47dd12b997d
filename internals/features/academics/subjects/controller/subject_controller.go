// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/subjects/dto"
	"kampusku_backend/internals/features/academics/subjects/model"
	sessionModel "kampusku_backend/internals/features/academics/timetable/model"
	helper "kampusku_backend/internals/helpers"
)

var validate = validator.New()

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// =======================
// POST /api/a/subjects
// =======================
// The name is stored as typed but checked against existing names modulo
// case/whitespace, so new duplicates are refused at the door while the
// deduplicator cleans up the historical ones.
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	normalized := model.NormalizeSubjectName(req.SubjectName)
	var existing int64
	err := ctrl.DB.WithContext(c.Context()).
		Model(&model.SubjectModel{}).
		Where("UPPER(TRIM(subject_name)) = ?", normalized).
		Count(&existing).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check subject name")
	}
	if existing > 0 {
		return helper.Error(c, fiber.StatusConflict, "A subject with this name already exists")
	}

	credits := req.SubjectCredits
	if credits == 0 {
		credits = 3
	}
	subject := model.SubjectModel{
		SubjectCode:       strings.ToUpper(strings.TrimSpace(req.SubjectCode)),
		SubjectName:       strings.TrimSpace(req.SubjectName),
		SubjectDepartment: strings.TrimSpace(req.SubjectDepartment),
		SubjectSemester:   req.SubjectSemester,
		SubjectCredits:    credits,
		SubjectIsElective: req.SubjectIsElective,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Subject code already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject created", subject)
}

// =======================
// GET /api/a/subjects?department=&semester=
// =======================
func (ctrl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.SubjectModel{})
	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		q = q.Where("subject_department = ?", dept)
	}
	if sem := c.QueryInt("semester"); sem > 0 {
		q = q.Where("subject_semester = ?", sem)
	}

	var subjects []model.SubjectModel
	if err := q.Order("subject_code").Find(&subjects).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list subjects")
	}
	return helper.Success(c, "Subjects", subjects)
}

// =======================
// GET /api/a/subjects/:id
// =======================
func (ctrl *SubjectController) GetSubject(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var subject model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).First(&subject, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load subject")
	}
	return helper.Success(c, "Subject found", subject)
}

// =======================
// PUT /api/a/subjects/:id
// =======================
func (ctrl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.SubjectName != nil {
		name := strings.TrimSpace(*req.SubjectName)
		var clash int64
		err := ctrl.DB.WithContext(c.Context()).
			Model(&model.SubjectModel{}).
			Where("UPPER(TRIM(subject_name)) = ? AND subject_id <> ?", model.NormalizeSubjectName(name), id).
			Count(&clash).Error
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to check subject name")
		}
		if clash > 0 {
			return helper.Error(c, fiber.StatusConflict, "A subject with this name already exists")
		}
		updates["subject_name"] = name
	}
	if req.SubjectDepartment != nil {
		updates["subject_department"] = strings.TrimSpace(*req.SubjectDepartment)
	}
	if req.SubjectSemester != nil {
		updates["subject_semester"] = *req.SubjectSemester
	}
	if req.SubjectCredits != nil {
		updates["subject_credits"] = *req.SubjectCredits
	}
	if req.SubjectIsElective != nil {
		updates["subject_is_elective"] = *req.SubjectIsElective
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.SubjectModel{}).
		Where("subject_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Subject not found")
	}

	var subject model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).First(&subject, "subject_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to reload subject")
	}
	return helper.Success(c, "Subject updated", subject)
}

// =======================
// DELETE /api/a/subjects/:id
// =======================
// Refused while active sessions still teach the subject; the timetable
// has to be cleaned up first.
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var inUse int64
	err = ctrl.DB.WithContext(c.Context()).
		Model(&sessionModel.TimetableSessionModel{}).
		Where("session_subject_id = ? AND session_is_active = TRUE", id).
		Count(&inUse).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check subject usage")
	}
	if inUse > 0 {
		return helper.Error(c, fiber.StatusConflict, "Subject is referenced by active sessions")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.Success(c, "Subject deleted", fiber.Map{"subject_id": id})
}
