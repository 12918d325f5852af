package entitlements

import (
	"strings"

	"github.com/estatefox/estatefox/app/models"
)

type Plan string

const (
	PlanNone         Plan = ""
	PlanBasic        Plan = "basic"
	PlanProfessional Plan = "professional"
)

// NormalizePlan maps arbitrary input to a known plan, defaulting to basic.
func NormalizePlan(plan string) Plan {
	switch strings.ToLower(strings.TrimSpace(plan)) {
	case string(PlanProfessional):
		return PlanProfessional
	default:
		return PlanBasic
	}
}

// PlanRank orders plans so the highest entitlement wins when comparing.
func PlanRank(plan Plan) int {
	switch plan {
	case PlanProfessional:
		return 2
	case PlanBasic:
		return 1
	default:
		return 0
	}
}

// IsEntitling reports whether a user subscription status grants access.
func IsEntitling(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case models.SubStatusActive, models.SubStatusTrialing:
		return true
	default:
		return false
	}
}

// IsNonTerminal reports whether a subscription status still counts against
// the one-open-subscription-per-user invariant.
func IsNonTerminal(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case models.SubscriptionStatusPending, models.SubscriptionStatusActive:
		return true
	default:
		return false
	}
}
