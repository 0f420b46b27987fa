package repository

import (
	"github.com/campfirehq/campfire/app/models"
	"gorm.io/gorm"
)

// settingRepository implements the SettingRepository interface
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository instance
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// GetIntegration retrieves the payment integration singleton
func (r *settingRepository) GetIntegration() (*models.IntegrationSetting, error) {
	return models.GetIntegrationSetting(r.db)
}

// SaveIntegration upserts the payment integration singleton
func (r *settingRepository) SaveIntegration(s *models.IntegrationSetting) error {
	return models.SaveIntegrationSetting(r.db, s)
}
