// file: internals/features/academics/staff/dto/staff_dto.go
package dto

type CreateStaffRequest struct {
	StaffName         string `json:"staff_name" validate:"required,min=2"`
	StaffEmployeeCode string `json:"staff_employee_code" validate:"required,min=2,max=30"`
	StaffDepartment   string `json:"staff_department" validate:"required"`
	StaffSubject      string `json:"staff_subject" validate:"omitempty,min=2"`
}

type UpdateStaffRequest struct {
	StaffName       *string `json:"staff_name" validate:"omitempty,min=2"`
	StaffDepartment *string `json:"staff_department" validate:"omitempty,min=1"`
	StaffSubject    *string `json:"staff_subject"`
	StaffIsActive   *bool   `json:"staff_is_active"`
}

// SetStaffSubjectsRequest replaces the staff member's registered subject
// set; the affected sessions are re-linked right after.
type SetStaffSubjectsRequest struct {
	SubjectIDs []int64 `json:"subject_ids" validate:"required,dive,min=1"`
}
