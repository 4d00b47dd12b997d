// file: internals/features/attendance/marking/dto/attendance_dto.go
package dto

// AttendanceMark is one student's status for the session being marked.
type AttendanceMark struct {
	StudentID int64  `json:"student_id" validate:"required,min=1"`
	Status    string `json:"status" validate:"required,oneof=PRESENT ABSENT OD"`
}

// MarkAttendanceRequest marks a whole session for one date in one call.
// Re-marking the same (student, session, date) updates the status.
type MarkAttendanceRequest struct {
	SessionID int64            `json:"session_id" validate:"required,min=1"`
	Date      string           `json:"date" validate:"required,datetime=2006-01-02"`
	Marks     []AttendanceMark `json:"marks" validate:"required,min=1,dive"`
}
