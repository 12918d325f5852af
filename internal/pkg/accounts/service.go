package accounts

import (
	"errors"
	"fmt"
	"time"

	"github.com/estatefox/estatefox/app/models"
	"github.com/estatefox/estatefox/app/repository"
	"github.com/estatefox/estatefox/internal/pkg/entitlements"
	"gorm.io/gorm"
)

// TrialDuration is the entitlement window granted when an account is created
// without a confirmed payment.
const TrialDuration = 30 * 24 * time.Hour

// Service is the identity and entitlement manager. It guarantees idempotent
// account creation and provides the bulk entitlement-reset and purge sweeps
// used for environment maintenance.
type Service struct {
	users repository.UserRepository
	subs  repository.SubscriptionRepository
}

// NewService creates an accounts service from injected repositories.
func NewService(users repository.UserRepository, subs repository.SubscriptionRepository) *Service {
	return &Service{users: users, subs: subs}
}

// NewServiceFromDB creates an accounts service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	repos := repository.NewRepositories(db)
	return NewService(repos.User, repos.Subscription)
}

// EnsureAccount finds the account for email or creates it with the given
// attributes. Find-or-create, never a blind create: calling it repeatedly
// from a cold-start script yields exactly one stored account. The returned
// bool reports whether a row was created.
func (s *Service) EnsureAccount(email string, attrs AccountAttributes) (*models.User, bool, error) {
	user, err := s.users.GetByEmail(email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user, err = models.NewUser(attrs.Name, attrs.Company, email, attrs.Password)
	if err != nil {
		return nil, false, fmt.Errorf("build account %s: %w", models.NormalizeEmail(email), err)
	}
	if attrs.Role == models.ROLE_ADMIN {
		user.Role = models.ROLE_ADMIN
	}

	now := time.Now()
	trialEnd := now.Add(TrialDuration)
	plan := string(entitlements.NormalizePlan(attrs.Plan))
	user.SubscriptionStatus = models.SubStatusTrialing
	user.SubscriptionPlan = &plan
	user.SubscriptionStart = &now
	user.TrialEndsAt = &trialEnd

	if err := s.users.Create(user); err != nil {
		// Duplicate key here means a concurrent writer won the race between
		// our lookup and create. Surfaced, not retried.
		return nil, false, fmt.Errorf("create account %s: %w", user.Email, err)
	}
	return user, true, nil
}

// RecreateAccount deletes any existing account for email before creating it
// fresh. Destructive; only for controlled test/seed environments. A deletion
// failure aborts before the create is attempted.
func (s *Service) RecreateAccount(email string, attrs AccountAttributes) (*models.User, error) {
	existing, err := s.users.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		if err := s.users.Delete(existing.ID); err != nil {
			return nil, fmt.Errorf("delete account %s (id %d): %w", existing.Email, existing.ID, err)
		}
	}

	user, _, err := s.EnsureAccount(email, attrs)
	return user, err
}

// ResetAllEntitlements nulls the entitlement fields of every account in one
// bulk statement and returns the affected row count. No per-row retries; the
// statement either applies or does not.
func (s *Service) ResetAllEntitlements() (int64, error) {
	return s.users.ResetEntitlements()
}

// PurgeSubscriptions deletes all subscription payments, then all
// subscriptions, then resets every account's entitlements. The child-first
// order is mandatory; a foreign key violation from the store is surfaced,
// never retried.
func (s *Service) PurgeSubscriptions() (*PurgeReport, error) {
	report := &PurgeReport{}

	payments, err := s.subs.DeleteAllPayments()
	if err != nil {
		return nil, fmt.Errorf("delete subscription payments: %w", err)
	}
	report.PaymentsDeleted = payments

	subs, err := s.subs.DeleteAll()
	if err != nil {
		return nil, fmt.Errorf("delete subscriptions: %w", err)
	}
	report.SubscriptionsDeleted = subs

	reset, err := s.ResetAllEntitlements()
	if err != nil {
		return nil, fmt.Errorf("reset entitlements: %w", err)
	}
	report.EntitlementsReset = reset

	return report, nil
}

// PurgePendingSubscriptions deletes abandoned checkout attempts: every
// subscription still in pending, together with its payments. Active and
// terminal subscriptions are left alone. Per-record failures are recorded in
// the report and the sweep continues.
func (s *Service) PurgePendingSubscriptions() (*PendingPurgeReport, error) {
	pending, err := s.subs.ListByStatus(models.SubscriptionStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending subscriptions: %w", err)
	}

	report := &PendingPurgeReport{Scanned: len(pending)}
	for _, sub := range pending {
		payments, err := s.subs.DeletePaymentsBySubscription(sub.ID)
		if err != nil {
			report.Failures = append(report.Failures, SweepFailure{SubscriptionID: sub.ID, Err: err.Error()})
			continue
		}
		if err := s.subs.Delete(sub.ID); err != nil {
			report.Failures = append(report.Failures, SweepFailure{SubscriptionID: sub.ID, Err: err.Error()})
			continue
		}
		report.PaymentsDeleted += payments
		report.SubscriptionsDeleted++
	}

	return report, nil
}

// HasOpenSubscription reports whether the user already has a subscription in
// a non-terminal status. Checkout flows consult this before creating a new
// pending subscription; abandoned pending rows that would make it return true
// are what PurgePendingSubscriptions clears out.
func (s *Service) HasOpenSubscription(userID uint) (bool, error) {
	subs, err := s.subs.ListByUser(userID)
	if err != nil {
		return false, err
	}
	for _, sub := range subs {
		if entitlements.IsNonTerminal(sub.Status) {
			return true, nil
		}
	}
	return false, nil
}

// EffectivePlan computes the best plan among the user's entitling
// subscriptions. Users without one fall back to no plan.
func (s *Service) EffectivePlan(userID uint) (entitlements.Plan, error) {
	subs, err := s.subs.ListByUser(userID)
	if err != nil {
		return entitlements.PlanNone, err
	}

	best := entitlements.PlanNone
	for _, sub := range subs {
		if !entitlements.IsEntitling(sub.Status) {
			continue
		}
		candidate := entitlements.NormalizePlan(sub.Plan)
		if entitlements.PlanRank(candidate) > entitlements.PlanRank(best) {
			best = candidate
		}
	}
	return best, nil
}

// TransitionSubscription applies a status change after checking it against
// the transition table. Payment webhooks and expiry jobs go through here.
func (s *Service) TransitionSubscription(id uint, to string) (*models.Subscription, error) {
	sub, err := s.subs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(sub.Status, to) {
		return nil, fmt.Errorf("subscription %d: illegal transition %s -> %s", id, sub.Status, to)
	}
	sub.Status = to
	if err := s.subs.Update(sub); err != nil {
		return nil, err
	}
	return sub, nil
}
