package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	NotificationTypePurchase = "purchase"
	NotificationTypeRefund   = "refund"
	NotificationTypeSystem   = "system"
)

type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Type      string         `gorm:"type:varchar(50)" json:"type" validate:"oneof=purchase refund system"`
	Content   string         `gorm:"type:text" json:"content"`
	IsRead    bool           `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarkAsRead flags a notification as read
func (n *Notification) MarkAsRead(db *gorm.DB) error {
	n.IsRead = true
	return db.Model(n).Update("is_read", true).Error
}

// CreateNotification inserts a new notification for a user
func CreateNotification(db *gorm.DB, userID uint, notificationType string, content string) error {
	notification := Notification{
		UserID:  userID,
		Type:    notificationType,
		Content: content,
		IsRead:  false,
	}

	return db.Create(&notification).Error
}
