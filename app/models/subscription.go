package models

import "time"

const (
	SubscriptionStatusPending   = "pending"
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"
)

const (
	PlanBasic        = "basic"
	PlanProfessional = "professional"
)

// Subscription is one billing relationship belonging to exactly one user. A
// user may accumulate many over time but at most one with a non-terminal
// status (pending or active) at any moment; that invariant is enforced by the
// maintenance sweeps, not by the schema.
type Subscription struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Status      string     `gorm:"type:varchar(32);not null;default:'pending';index" json:"status"`
	Plan        string     `gorm:"type:varchar(50);not null" json:"plan"`
	PeriodStart *time.Time `gorm:"type:timestamp;default:null" json:"period_start,omitempty"`
	PeriodEnd   *time.Time `gorm:"type:timestamp;default:null" json:"period_end,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsTerminal reports whether the subscription can no longer change state.
func (s *Subscription) IsTerminal() bool {
	return s.Status == SubscriptionStatusCancelled || s.Status == SubscriptionStatusExpired
}
