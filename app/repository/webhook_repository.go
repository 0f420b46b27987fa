package repository

import (
	"github.com/campfirehq/campfire/app/models"
	"gorm.io/gorm"
)

// webhookDeliveryRepository implements the WebhookDeliveryRepository interface
type webhookDeliveryRepository struct {
	db *gorm.DB
}

// NewWebhookDeliveryRepository creates a new webhook audit log repository instance
func NewWebhookDeliveryRepository(db *gorm.DB) WebhookDeliveryRepository {
	return &webhookDeliveryRepository{db: db}
}

func (r *webhookDeliveryRepository) GetByID(id uint) (*models.WebhookDelivery, error) {
	var d models.WebhookDelivery
	err := r.db.First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *webhookDeliveryRepository) ListRecent(limit int) ([]models.WebhookDelivery, error) {
	var deliveries []models.WebhookDelivery
	err := r.db.Order("created_at DESC").Limit(limit).Find(&deliveries).Error
	return deliveries, err
}

func (r *webhookDeliveryRepository) ListByStatus(status string, limit int) ([]models.WebhookDelivery, error) {
	var deliveries []models.WebhookDelivery
	err := r.db.Where("status = ?", status).Order("created_at DESC").Limit(limit).Find(&deliveries).Error
	return deliveries, err
}
