// file: internals/features/academics/timetable/dto/session_dto.go
package dto

type CreateSessionRequest struct {
	SubjectID  int64  `json:"subject_id" validate:"required,min=1"`
	StaffID    *int64 `json:"staff_id" validate:"omitempty,min=1"`
	Department string `json:"department" validate:"required"`
	Semester   int    `json:"semester" validate:"required,min=1,max=8"`
	Section    string `json:"section" validate:"required,max=5"`
	DayOfWeek  string `json:"day_of_week" validate:"required,oneof=MON TUE WED THU FRI SAT"`
	StartTime  string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string `json:"end_time" validate:"required,datetime=15:04"`
	Room       string `json:"room"`
}

type UpdateSessionRequest struct {
	SubjectID *int64  `json:"subject_id" validate:"omitempty,min=1"`
	StaffID   *int64  `json:"staff_id" validate:"omitempty,min=1"`
	Semester  *int    `json:"semester" validate:"omitempty,min=1,max=8"`
	Section   *string `json:"section" validate:"omitempty,max=5"`
	DayOfWeek *string `json:"day_of_week" validate:"omitempty,oneof=MON TUE WED THU FRI SAT"`
	StartTime *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   *string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Room      *string `json:"room"`
	IsActive  *bool   `json:"is_active"`
}
