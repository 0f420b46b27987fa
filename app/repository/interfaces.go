package repository

import (
	"github.com/campfirehq/campfire/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Count() (int64, error)
}

// ProfileRepository defines the interface for community profile operations
type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetByUserID(userID uint) (*models.Profile, error)
	GetByUsername(username string) (*models.Profile, error)
	Update(profile *models.Profile) error
}

// PurchaseRepository defines the interface for purchase-related operations
type PurchaseRepository interface {
	GetByOrderID(orderID string) (*models.Purchase, error)
	GetByUserID(userID uint) ([]models.Purchase, error)
	HasActiveAccess(userID uint) (bool, error)
}

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	GetByUserID(userID uint, offset, limit int) ([]models.Notification, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(id, userID uint) error
}

// WebhookDeliveryRepository exposes the audit log for inspection/replay
type WebhookDeliveryRepository interface {
	GetByID(id uint) (*models.WebhookDelivery, error)
	ListRecent(limit int) ([]models.WebhookDelivery, error)
	ListByStatus(status string, limit int) ([]models.WebhookDelivery, error)
}

// SettingRepository defines the interface for the payment integration switch
type SettingRepository interface {
	GetIntegration() (*models.IntegrationSetting, error)
	SaveIntegration(s *models.IntegrationSetting) error
}

// Repositories bundles all repository implementations
type Repositories struct {
	User         UserRepository
	Profile      ProfileRepository
	Purchase     PurchaseRepository
	Notification NotificationRepository
	Webhook      WebhookDeliveryRepository
	Setting      SettingRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Profile:      NewProfileRepository(db),
		Purchase:     NewPurchaseRepository(db),
		Notification: NewNotificationRepository(db),
		Webhook:      NewWebhookDeliveryRepository(db),
		Setting:      NewSettingRepository(db),
	}
}
