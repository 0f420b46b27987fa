package models

import "time"

const (
	PurchaseStatusPaid     = "paid"
	PurchaseStatusRefunded = "refunded"
)

// Purchase records one paid order and whether it currently grants community
// access. OrderID is the external identity key and carries a unique index so
// replayed deliveries of the same order can never produce a second row.
type Purchase struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	OrderID         string     `gorm:"uniqueIndex;type:varchar(191);not null" json:"order_id"`
	ProductID       string     `gorm:"type:varchar(191);index" json:"product_id"`
	CustomerEmail   string     `gorm:"type:varchar(200);index" json:"customer_email"`
	CustomerName    string     `gorm:"type:varchar(150)" json:"customer_name"`
	UserID          *uint      `gorm:"index" json:"user_id,omitempty"`
	Status          string     `gorm:"type:varchar(20);not null;default:'paid'" json:"status"`
	AccessGranted   bool       `gorm:"default:false;index" json:"access_granted"`
	PurchaseDate    time.Time  `gorm:"type:timestamp" json:"purchase_date"`
	AccessRevokedAt *time.Time `gorm:"type:timestamp;default:null" json:"access_revoked_at,omitempty"`
	RawPayload      string     `gorm:"type:longtext" json:"raw_payload"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// HasAccess reports whether the purchase still entitles community access.
func (p *Purchase) HasAccess() bool {
	return p.Status == PurchaseStatusPaid && p.AccessGranted
}
