package repository

import (
	"github.com/estatefox/estatefox/app/models"
	"gorm.io/gorm"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", models.NormalizeEmail(email)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update saves changes to an existing user
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete permanently removes a user. Unscoped so the unique email index does
// not keep a soft-deleted row around that would block a re-create.
func (r *userRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.User{}, id).Error
}

// List retrieves users with pagination
func (r *userRepository) List(offset, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Offset(offset).Limit(limit).Order("id ASC").Find(&users).Error
	return users, err
}

// Count returns the total number of users
func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// ResetEntitlements nulls every user's entitlement fields in one statement.
func (r *userRepository) ResetEntitlements() (int64, error) {
	tx := r.db.Model(&models.User{}).Where("1 = 1").Updates(map[string]interface{}{
		"subscription_status": models.SubStatusNone,
		"subscription_plan":   nil,
		"subscription_start":  nil,
		"subscription_end":    nil,
		"trial_ends_at":       nil,
		"last_payment_at":     nil,
		"next_payment_at":     nil,
	})
	return tx.RowsAffected, tx.Error
}
