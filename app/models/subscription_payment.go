package models

import "time"

// SubscriptionPayment records one payment event for a billing cycle. Rows are
// children of a Subscription and must be deleted before their parent.
type SubscriptionPayment struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	SubscriptionID uint          `gorm:"not null;index" json:"subscription_id"`
	Subscription   *Subscription `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:RESTRICT" json:"-"`
	Amount         int64         `gorm:"not null" json:"amount"` // cents
	Currency       string        `gorm:"type:varchar(3);not null;default:'EUR'" json:"currency"`
	PaidAt         time.Time     `gorm:"type:timestamp" json:"paid_at"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
}
