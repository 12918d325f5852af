package repository

import (
	"github.com/estatefox/estatefox/app/models"
	"gorm.io/gorm"
)

// subscriptionRepository implements the SubscriptionRepository interface
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(sub *models.Subscription) error {
	return r.db.Create(sub).Error
}

func (r *subscriptionRepository) GetByID(id uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) ListByStatus(status string) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where("status = ?", status).Order("id ASC").Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) ListByUser(userID uint) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) Update(sub *models.Subscription) error {
	return r.db.Save(sub).Error
}

func (r *subscriptionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Subscription{}, id).Error
}

// DeleteAll removes every subscription row. Payments must be deleted first or
// the store reports a foreign key violation.
func (r *subscriptionRepository) DeleteAll() (int64, error) {
	tx := r.db.Where("1 = 1").Delete(&models.Subscription{})
	return tx.RowsAffected, tx.Error
}

func (r *subscriptionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) CreatePayment(payment *models.SubscriptionPayment) error {
	return r.db.Create(payment).Error
}

func (r *subscriptionRepository) DeletePaymentsBySubscription(subscriptionID uint) (int64, error) {
	tx := r.db.Where("subscription_id = ?", subscriptionID).Delete(&models.SubscriptionPayment{})
	return tx.RowsAffected, tx.Error
}

func (r *subscriptionRepository) DeleteAllPayments() (int64, error) {
	tx := r.db.Where("1 = 1").Delete(&models.SubscriptionPayment{})
	return tx.RowsAffected, tx.Error
}

func (r *subscriptionRepository) CountPayments() (int64, error) {
	var count int64
	err := r.db.Model(&models.SubscriptionPayment{}).Count(&count).Error
	return count, err
}
