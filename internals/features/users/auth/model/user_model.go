// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"
)

const (
	RoleAdmin   = "ADMIN"
	RoleStaff   = "STAFF"
	RoleStudent = "STUDENT"
)

// UserModel maps users. Staff and student accounts carry the link to
// their domain row; the ids are embedded in the JWT claims.
type UserModel struct {
	UserID        int64     `json:"user_id" gorm:"primaryKey;autoIncrement;column:user_id"`
	UserUsername  string    `json:"user_username" gorm:"type:varchar(50);not null;uniqueIndex;column:user_username"`
	UserPassword  string    `json:"-" gorm:"type:text;not null;column:user_password"`
	UserRole      string    `json:"user_role" gorm:"type:varchar(10);not null;column:user_role"`
	UserStaffID   *int64    `json:"user_staff_id,omitempty" gorm:"column:user_staff_id"`
	UserStudentID *int64    `json:"user_student_id,omitempty" gorm:"column:user_student_id"`
	UserIsActive  bool      `json:"user_is_active" gorm:"not null;default:true;column:user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }
