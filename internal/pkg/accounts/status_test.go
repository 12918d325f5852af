package accounts

import (
	"testing"

	"github.com/estatefox/estatefox/app/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{from: models.SubscriptionStatusPending, to: models.SubscriptionStatusActive, want: true},
		{from: models.SubscriptionStatusPending, to: models.SubscriptionStatusCancelled, want: true},
		{from: models.SubscriptionStatusActive, to: models.SubscriptionStatusExpired, want: true},
		{from: models.SubscriptionStatusActive, to: models.SubscriptionStatusCancelled, want: true},
		{from: models.SubscriptionStatusPending, to: models.SubscriptionStatusExpired, want: false},
		{from: models.SubscriptionStatusActive, to: models.SubscriptionStatusPending, want: false},
		{from: models.SubscriptionStatusCancelled, to: models.SubscriptionStatusPending, want: false},
		{from: models.SubscriptionStatusCancelled, to: models.SubscriptionStatusActive, want: false},
		{from: models.SubscriptionStatusExpired, to: models.SubscriptionStatusActive, want: false},
		{from: models.SubscriptionStatusExpired, to: models.SubscriptionStatusPending, want: false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Fatalf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
