package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	ROLE_USER  = "user"
	ROLE_ADMIN = "admin"
)

// Subscription status values stored on the user row. They mirror the status of
// the user's current Subscription; SubStatusNone means no subscription was ever
// granted.
const (
	SubStatusNone      = "none"
	SubStatusTrialing  = "trialing"
	SubStatusActive    = "active"
	SubStatusPending   = "pending"
	SubStatusExpired   = "expired"
	SubStatusCancelled = "cancelled"
)

type User struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"type:varchar(150)" json:"name" validate:"required,min=3,max=150"`
	Company       string `gorm:"type:varchar(150);default:null" json:"company" validate:"max=150"`
	Email         string `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,min=5,max=200"`
	Password      string `gorm:"type:text" json:"-" validate:"required,min=6"`
	Role          string `gorm:"type:varchar(50);default:'user'" json:"role" validate:"oneof=user admin"`
	EmailVerified bool   `gorm:"default:false" json:"email_verified"`

	// Entitlement fields. Either all null/none (no subscription ever granted)
	// or a consistent set matching the current status.
	SubscriptionStatus string     `gorm:"type:varchar(32);default:'none'" json:"subscription_status"`
	SubscriptionPlan   *string    `gorm:"type:varchar(50);default:null" json:"subscription_plan,omitempty"`
	SubscriptionStart  *time.Time `gorm:"type:timestamp;default:null" json:"subscription_start,omitempty"`
	SubscriptionEnd    *time.Time `gorm:"type:timestamp;default:null" json:"subscription_end,omitempty"`
	TrialEndsAt        *time.Time `gorm:"type:timestamp;default:null" json:"trial_ends_at,omitempty"`
	LastPaymentAt      *time.Time `gorm:"type:timestamp;default:null" json:"last_payment_at,omitempty"`
	NextPaymentAt      *time.Time `gorm:"type:timestamp;default:null" json:"next_payment_at,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// NormalizeEmail lower-cases and trims an identity key so lookups and creates
// agree on the same value.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser builds an unsaved user with a hashed password and normalized email.
func NewUser(name, company, email, password string) (*User, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:               name,
		Company:            company,
		Email:              NormalizeEmail(email),
		Password:           pw,
		Role:               ROLE_USER,
		SubscriptionStatus: SubStatusNone,
	}

	err = u.Validate()
	if err != nil {
		return nil, err
	}

	return u, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.Password)
}

// SetPassword hashes and sets a new password for the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hashedPassword
	return nil
}

// HasEntitlement reports whether the user currently has trial or paid access.
func (u *User) HasEntitlement() bool {
	return u.SubscriptionStatus == SubStatusActive || u.SubscriptionStatus == SubStatusTrialing
}

// ClearEntitlements resets all entitlement fields to the no-subscription state.
func (u *User) ClearEntitlements() {
	u.SubscriptionStatus = SubStatusNone
	u.SubscriptionPlan = nil
	u.SubscriptionStart = nil
	u.SubscriptionEnd = nil
	u.TrialEndsAt = nil
	u.LastPaymentAt = nil
	u.NextPaymentAt = nil
}
