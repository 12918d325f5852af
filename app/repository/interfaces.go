package repository

import (
	"github.com/estatefox/estatefox/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	// Delete removes the row permanently (not a soft delete) so the unique
	// email index is free for a subsequent re-create.
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	// ResetEntitlements nulls the entitlement fields of every user in a
	// single bulk statement and returns the number of affected rows.
	ResetEntitlements() (int64, error)
}

// SubscriptionRepository defines the interface for subscription and payment operations
type SubscriptionRepository interface {
	Create(sub *models.Subscription) error
	GetByID(id uint) (*models.Subscription, error)
	ListByStatus(status string) ([]models.Subscription, error)
	ListByUser(userID uint) ([]models.Subscription, error)
	Update(sub *models.Subscription) error
	Delete(id uint) error
	DeleteAll() (int64, error)
	Count() (int64, error)
	CreatePayment(payment *models.SubscriptionPayment) error
	DeletePaymentsBySubscription(subscriptionID uint) (int64, error)
	DeleteAllPayments() (int64, error)
	CountPayments() (int64, error)
}

// ApartmentRepository defines the interface for apartment-related database operations
type ApartmentRepository interface {
	Create(apartment *models.Apartment) error
	GetByID(id uint) (*models.Apartment, error)
	// ListOrderedByID returns all apartments ordered by surrogate key
	// ascending, i.e. creation order.
	ListOrderedByID() ([]models.Apartment, error)
	Delete(id uint) error
	Count() (int64, error)
	CountByUniqueID(uniqueID string) (int64, error)
}

// DocumentRepository defines the interface for document-related database operations
type DocumentRepository interface {
	Create(doc *models.Document) error
	GetByID(id uint) (*models.Document, error)
	ListByFileURLPrefix(prefix string) ([]models.Document, error)
	UpdateFileURL(id uint, fileURL string) error
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Subscription SubscriptionRepository
	Apartment    ApartmentRepository
	Document     DocumentRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Apartment:    NewApartmentRepository(db),
		Document:     NewDocumentRepository(db),
	}
}
