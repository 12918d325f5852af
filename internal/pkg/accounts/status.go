package accounts

import "github.com/estatefox/estatefox/app/models"

// CanTransition reports whether a subscription status change is legal.
// pending -> active (confirmed payment), pending -> cancelled (abandonment),
// active -> expired (time-based), active -> cancelled (explicit). No status
// re-enters pending; expired and cancelled are terminal.
func CanTransition(from, to string) bool {
	switch from {
	case models.SubscriptionStatusPending:
		return to == models.SubscriptionStatusActive || to == models.SubscriptionStatusCancelled
	case models.SubscriptionStatusActive:
		return to == models.SubscriptionStatusExpired || to == models.SubscriptionStatusCancelled
	default:
		return false
	}
}
