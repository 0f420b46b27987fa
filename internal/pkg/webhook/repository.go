package webhook

import (
	"time"

	"github.com/campfirehq/campfire/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository provides the DB operations used by the pipeline service.
type Repository interface {
	GetIntegrationSetting() (*models.IntegrationSetting, error)
	CreateDelivery(d *models.WebhookDelivery) error
	FinishDelivery(id uint, status, message string) error
	CreatePurchaseIfNotExists(p *models.Purchase) (bool, error)
	GetPurchaseByOrderID(orderID string) (*models.Purchase, error)
	RevokePurchase(p *models.Purchase, rawPayload string, at time.Time) error
	CreateProfile(profile *models.Profile) error
	UsernameExists(username string) (bool, error)
	CreateNotification(userID uint, notificationType, content string) error
	MarkStaleDeliveriesFailed(cutoff time.Time, message string) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a pipeline repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetIntegrationSetting() (*models.IntegrationSetting, error) {
	return models.GetIntegrationSetting(r.db)
}

func (r *gormRepository) CreateDelivery(d *models.WebhookDelivery) error {
	return r.db.Create(d).Error
}

func (r *gormRepository) FinishDelivery(id uint, status, message string) error {
	return r.db.Model(&models.WebhookDelivery{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":        status,
		"error_message": message,
	}).Error
}

func (r *gormRepository) CreatePurchaseIfNotExists(p *models.Purchase) (bool, error) {
	tx := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		DoNothing: true,
	}).Create(p)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *gormRepository) GetPurchaseByOrderID(orderID string) (*models.Purchase, error) {
	var p models.Purchase
	if err := r.db.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) RevokePurchase(p *models.Purchase, rawPayload string, at time.Time) error {
	return r.db.Model(p).Updates(map[string]interface{}{
		"status":            models.PurchaseStatusRefunded,
		"access_granted":    false,
		"access_revoked_at": &at,
		"raw_payload":       rawPayload,
	}).Error
}

func (r *gormRepository) CreateProfile(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *gormRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) CreateNotification(userID uint, notificationType, content string) error {
	return models.CreateNotification(r.db, userID, notificationType, content)
}

func (r *gormRepository) MarkStaleDeliveriesFailed(cutoff time.Time, message string) (int64, error) {
	tx := r.db.Model(&models.WebhookDelivery{}).
		Where("status = ? AND created_at < ?", models.DeliveryStatusProcessing, cutoff).
		Updates(map[string]interface{}{
			"status":        models.DeliveryStatusError,
			"error_message": message,
		})
	return tx.RowsAffected, tx.Error
}
