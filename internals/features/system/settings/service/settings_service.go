// file: internals/features/system/settings/service/settings_service.go
package service

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/features/system/settings/model"
)

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

func (svc *SettingsService) Get(ctx context.Context, key string) (*model.SystemSettingModel, error) {
	var s model.SystemSettingModel
	err := svc.DB.WithContext(ctx).First(&s, "settings_key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Put upserts a setting by key.
func (svc *SettingsService) Put(ctx context.Context, key string, value datatypes.JSON) (*model.SystemSettingModel, error) {
	s := model.SystemSettingModel{
		SettingsKey:   key,
		SettingsValue: value,
	}
	err := svc.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "settings_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"settings_value", "settings_updated_at"}),
	}).Create(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// AttendanceThreshold resolves the compliance threshold: DB override when
// set and numeric, env default otherwise.
func (svc *SettingsService) AttendanceThreshold(ctx context.Context) float64 {
	fallback := configs.AttendanceMinPercentage()

	s, err := svc.Get(ctx, model.KeyAttendanceMinPercentage)
	if err != nil {
		return fallback
	}
	var v float64
	if err := json.Unmarshal(s.SettingsValue, &v); err != nil || v <= 0 || v > 100 {
		return fallback
	}
	return v
}
