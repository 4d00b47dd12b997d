// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/students/dto"
	"kampusku_backend/internals/features/academics/students/model"
	helper "kampusku_backend/internals/helpers"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// =======================
// POST /api/a/students
// =======================
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student := model.StudentModel{
		StudentName:       strings.TrimSpace(req.StudentName),
		StudentRollNo:     strings.TrimSpace(req.StudentRollNo),
		StudentDepartment: strings.TrimSpace(req.StudentDepartment),
		StudentSemester:   req.StudentSemester,
		StudentSection:    strings.ToUpper(strings.TrimSpace(req.StudentSection)),
		StudentIsActive:   true,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Roll number already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", student)
}

// =======================
// GET /api/a/students?department=&semester=&section=
// =======================
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.StudentModel{})

	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		q = q.Where("student_department = ?", dept)
	}
	if raw := strings.TrimSpace(c.Query("semester")); raw != "" {
		sem, err := strconv.Atoi(raw)
		if err != nil || sem < 1 {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid semester")
		}
		q = q.Where("student_semester = ?", sem)
	}
	if sec := strings.TrimSpace(c.Query("section")); sec != "" {
		q = q.Where("student_section = ?", strings.ToUpper(sec))
	}
	if !c.QueryBool("include_inactive") {
		q = q.Where("student_is_active = TRUE")
	}

	var students []model.StudentModel
	if err := q.Order("student_roll_no").Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list students")
	}
	return helper.Success(c, "Students", students)
}

// =======================
// GET /api/a/students/:id
// =======================
func (ctrl *StudentController) GetStudent(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var student model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load student")
	}
	return helper.Success(c, "Student found", student)
}

// =======================
// PUT /api/a/students/:id
// =======================
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.StudentName != nil {
		updates["student_name"] = strings.TrimSpace(*req.StudentName)
	}
	if req.StudentDepartment != nil {
		updates["student_department"] = strings.TrimSpace(*req.StudentDepartment)
	}
	if req.StudentSemester != nil {
		updates["student_semester"] = *req.StudentSemester
	}
	if req.StudentSection != nil {
		updates["student_section"] = strings.ToUpper(strings.TrimSpace(*req.StudentSection))
	}
	if req.StudentIsActive != nil {
		updates["student_is_active"] = *req.StudentIsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	var student model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).First(&student, "student_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to reload student")
	}
	return helper.Success(c, "Student updated", student)
}

// =======================
// DELETE /api/a/students/:id (soft: deactivate)
// =======================
func (ctrl *StudentController) DeactivateStudent(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Update("student_is_active", false)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate student")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.Success(c, "Student deactivated", fiber.Map{"student_id": id})
}
