// file: internals/features/academics/students/dto/student_dto.go
package dto

type CreateStudentRequest struct {
	StudentName       string `json:"student_name" validate:"required,min=2"`
	StudentRollNo     string `json:"student_roll_no" validate:"required,min=2,max=30"`
	StudentDepartment string `json:"student_department" validate:"required"`
	StudentSemester   int    `json:"student_semester" validate:"required,min=1,max=8"`
	StudentSection    string `json:"student_section" validate:"required,max=5"`
}

type UpdateStudentRequest struct {
	StudentName       *string `json:"student_name" validate:"omitempty,min=2"`
	StudentDepartment *string `json:"student_department" validate:"omitempty,min=1"`
	StudentSemester   *int    `json:"student_semester" validate:"omitempty,min=1,max=8"`
	StudentSection    *string `json:"student_section" validate:"omitempty,max=5"`
	StudentIsActive   *bool   `json:"student_is_active"`
}
