// file: internals/features/users/auth/model/refresh_token_model.go
package model

import "time"

// RefreshTokenModel stores issued refresh tokens by jti so they can be
// rotated on use and revoked on logout.
type RefreshTokenModel struct {
	TokenID        int64     `json:"token_id" gorm:"primaryKey;autoIncrement;column:token_id"`
	TokenJTI       string    `json:"token_jti" gorm:"type:varchar(36);not null;uniqueIndex;column:token_jti"`
	TokenUserID    int64     `json:"token_user_id" gorm:"not null;index;column:token_user_id"`
	TokenExpiresAt time.Time `json:"token_expires_at" gorm:"not null;column:token_expires_at"`
	TokenRevoked   bool      `json:"token_revoked" gorm:"not null;default:false;column:token_revoked"`
	TokenCreatedAt time.Time `json:"token_created_at" gorm:"column:token_created_at;autoCreateTime"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }
