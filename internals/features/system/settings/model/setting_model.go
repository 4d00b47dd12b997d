// file: internals/features/system/settings/model/setting_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// SystemSettingModel maps system_settings, a small JSON key-value store
// for runtime-tunable knobs (attendance threshold override and the like).
type SystemSettingModel struct {
	SettingsID        int64          `json:"settings_id" gorm:"primaryKey;autoIncrement;column:settings_id"`
	SettingsKey       string         `json:"settings_key" gorm:"type:varchar(80);not null;uniqueIndex;column:settings_key"`
	SettingsValue     datatypes.JSON `json:"settings_value" gorm:"type:jsonb;not null;column:settings_value"`
	SettingsCreatedAt time.Time      `json:"settings_created_at" gorm:"column:settings_created_at;autoCreateTime"`
	SettingsUpdatedAt time.Time      `json:"settings_updated_at" gorm:"column:settings_updated_at;autoUpdateTime"`
}

func (SystemSettingModel) TableName() string { return "system_settings" }

// KeyAttendanceMinPercentage overrides the env threshold when present.
const KeyAttendanceMinPercentage = "attendance_min_percentage"
