// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

type CreateSubjectRequest struct {
	SubjectCode       string `json:"subject_code" validate:"required,min=2,max=20"`
	SubjectName       string `json:"subject_name" validate:"required,min=2"`
	SubjectDepartment string `json:"subject_department" validate:"required"`
	SubjectSemester   int    `json:"subject_semester" validate:"required,min=1,max=8"`
	SubjectCredits    int    `json:"subject_credits" validate:"omitempty,min=1,max=10"`
	SubjectIsElective bool   `json:"subject_is_elective"`
}

type UpdateSubjectRequest struct {
	SubjectName       *string `json:"subject_name" validate:"omitempty,min=2"`
	SubjectDepartment *string `json:"subject_department" validate:"omitempty,min=1"`
	SubjectSemester   *int    `json:"subject_semester" validate:"omitempty,min=1,max=8"`
	SubjectCredits    *int    `json:"subject_credits" validate:"omitempty,min=1,max=10"`
	SubjectIsElective *bool   `json:"subject_is_elective"`
}
