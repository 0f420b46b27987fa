package repository

import (
	"github.com/campfirehq/campfire/app/models"
	"gorm.io/gorm"
)

// purchaseRepository implements the PurchaseRepository interface
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository instance
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) GetByOrderID(orderID string) (*models.Purchase, error) {
	var p models.Purchase
	err := r.db.Where("order_id = ?", orderID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *purchaseRepository) GetByUserID(userID uint) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.Where("user_id = ?", userID).Order("purchase_date DESC").Find(&purchases).Error
	return purchases, err
}

// HasActiveAccess reports whether any paid purchase still grants the user
// community access.
func (r *purchaseRepository) HasActiveAccess(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Purchase{}).
		Where("user_id = ? AND status = ? AND access_granted = ?", userID, models.PurchaseStatusPaid, true).
		Count(&count).Error
	return count > 0, err
}
