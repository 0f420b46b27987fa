package models

import "time"

const (
	DeliveryStatusProcessing = "processing"
	DeliveryStatusSuccess    = "success"
	DeliveryStatusError      = "error"
)

// WebhookDelivery is the audit row for one inbound payment webhook call. It
// is inserted with status processing before any business logic runs and
// updated exactly once to a terminal status. Rows are never deleted.
type WebhookDelivery struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	EventType     string    `gorm:"type:varchar(100);index" json:"event_type"`
	CustomerEmail string    `gorm:"type:varchar(200);index" json:"customer_email"`
	CustomerName  string    `gorm:"type:varchar(150)" json:"customer_name"`
	OrderID       string    `gorm:"type:varchar(191);index" json:"order_id"`
	ProductID     string    `gorm:"type:varchar(191)" json:"product_id"`
	Status        string    `gorm:"type:varchar(20);not null;index" json:"status"`
	ErrorMessage  string    `gorm:"type:text" json:"error_message,omitempty"`
	RawPayload    string    `gorm:"type:longtext;not null" json:"raw_payload"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
