package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// IntegrationSetting is the singleton switch for the payment integration.
// The pipeline only reads it; the admin surface owns writes. SharedSecret,
// when set, enables HMAC verification of inbound deliveries.
type IntegrationSetting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	IsActive     bool      `gorm:"default:false" json:"is_active"`
	SharedSecret string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// GetIntegrationSetting loads the singleton row. A missing row is reported
// as gorm.ErrRecordNotFound; callers treat that the same as inactive.
func GetIntegrationSetting(db *gorm.DB) (*IntegrationSetting, error) {
	var s IntegrationSetting
	if err := db.Order("id").First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveIntegrationSetting upserts the singleton row (admin surface only).
func SaveIntegrationSetting(db *gorm.DB, s *IntegrationSetting) error {
	var existing IntegrationSetting
	err := db.Order("id").First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(s).Error
	}
	if err != nil {
		return err
	}
	s.ID = existing.ID
	return db.Save(s).Error
}
