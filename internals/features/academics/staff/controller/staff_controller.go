// file: internals/features/academics/staff/controller/staff_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/staff/dto"
	"kampusku_backend/internals/features/academics/staff/model"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	reconcileService "kampusku_backend/internals/features/reconcile/service"
	helper "kampusku_backend/internals/helpers"
)

var validate = validator.New()

type StaffController struct {
	DB     *gorm.DB
	Runner *reconcileService.Runner
}

func NewStaffController(db *gorm.DB, runner *reconcileService.Runner) *StaffController {
	return &StaffController{DB: db, Runner: runner}
}

// =======================
// POST /api/a/staff
// =======================
func (ctrl *StaffController) CreateStaff(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	staff := model.StaffModel{
		StaffName:         strings.TrimSpace(req.StaffName),
		StaffEmployeeCode: strings.ToUpper(strings.TrimSpace(req.StaffEmployeeCode)),
		StaffDepartment:   strings.TrimSpace(req.StaffDepartment),
		StaffIsActive:     true,
	}
	if s := strings.TrimSpace(req.StaffSubject); s != "" {
		staff.StaffSubject = &s
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Employee code already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create staff")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Staff created", staff)
}

// =======================
// GET /api/a/staff?department=
// =======================
func (ctrl *StaffController) ListStaff(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.StaffModel{}).Preload("StaffSubjects")
	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		q = q.Where("staff_department = ?", dept)
	}
	if !c.QueryBool("include_inactive") {
		q = q.Where("staff_is_active = TRUE")
	}

	var staff []model.StaffModel
	if err := q.Order("staff_employee_code").Find(&staff).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list staff")
	}
	return helper.Success(c, "Staff", staff)
}

// =======================
// GET /api/a/staff/:id
// =======================
func (ctrl *StaffController) GetStaff(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var staff model.StaffModel
	err = ctrl.DB.WithContext(c.Context()).
		Preload("StaffSubjects").
		First(&staff, "staff_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Staff not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load staff")
	}
	return helper.Success(c, "Staff found", staff)
}

// =======================
// PUT /api/a/staff/:id
// =======================
func (ctrl *StaffController) UpdateStaff(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.StaffName != nil {
		updates["staff_name"] = strings.TrimSpace(*req.StaffName)
	}
	if req.StaffDepartment != nil {
		updates["staff_department"] = strings.TrimSpace(*req.StaffDepartment)
	}
	if req.StaffSubject != nil {
		updates["staff_subject"] = strings.TrimSpace(*req.StaffSubject)
	}
	if req.StaffIsActive != nil {
		updates["staff_is_active"] = *req.StaffIsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.StaffModel{}).
		Where("staff_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update staff")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Staff not found")
	}

	var staff model.StaffModel
	if err := ctrl.DB.WithContext(c.Context()).Preload("StaffSubjects").First(&staff, "staff_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to reload staff")
	}
	return helper.Success(c, "Staff updated", staff)
}

// =======================
// PUT /api/a/staff/:id/subjects
// =======================
// Replaces the registered-subject set, then re-links the sessions teaching
// those subjects so the timetable follows the registration immediately.
func (ctrl *StaffController) SetStaffSubjects(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.SetStaffSubjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var staff model.StaffModel
	if err := ctrl.DB.WithContext(c.Context()).First(&staff, "staff_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Staff not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load staff")
	}

	var subjects []subjectModel.SubjectModel
	if len(req.SubjectIDs) > 0 {
		err := ctrl.DB.WithContext(c.Context()).
			Find(&subjects, "subject_id IN ?", req.SubjectIDs).Error
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to load subjects")
		}
		if len(subjects) != len(req.SubjectIDs) {
			return helper.Error(c, fiber.StatusBadRequest, "One or more subject ids do not exist")
		}
	}

	err = ctrl.DB.WithContext(c.Context()).
		Model(&staff).
		Association("StaffSubjects").
		Replace(subjects)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update registered subjects")
	}

	relinked, err := ctrl.Runner.OnStaffSubjectsChanged(c.Context(), id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Registration saved but session re-link failed: "+err.Error())
	}

	return helper.Success(c, "Registered subjects updated", fiber.Map{
		"staff_id":          id,
		"subject_count":     len(subjects),
		"sessions_relinked": relinked,
	})
}

// =======================
// DELETE /api/a/staff/:id (soft: deactivate)
// =======================
func (ctrl *StaffController) DeactivateStaff(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.StaffModel{}).
		Where("staff_id = ?", id).
		Update("staff_is_active", false)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate staff")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Staff not found")
	}
	return helper.Success(c, "Staff deactivated", fiber.Map{"staff_id": id})
}
