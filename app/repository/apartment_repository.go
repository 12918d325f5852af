package repository

import (
	"github.com/estatefox/estatefox/app/models"
	"gorm.io/gorm"
)

// apartmentRepository implements the ApartmentRepository interface
type apartmentRepository struct {
	db *gorm.DB
}

// NewApartmentRepository creates a new apartment repository instance
func NewApartmentRepository(db *gorm.DB) ApartmentRepository {
	return &apartmentRepository{db: db}
}

func (r *apartmentRepository) Create(apartment *models.Apartment) error {
	return r.db.Create(apartment).Error
}

func (r *apartmentRepository) GetByID(id uint) (*models.Apartment, error) {
	var apartment models.Apartment
	err := r.db.First(&apartment, id).Error
	if err != nil {
		return nil, err
	}
	return &apartment, nil
}

// ListOrderedByID returns every apartment in creation order. The dedupe sweep
// relies on this ordering to pick the earliest row per business key.
func (r *apartmentRepository) ListOrderedByID() ([]models.Apartment, error) {
	var apartments []models.Apartment
	err := r.db.Order("id ASC").Find(&apartments).Error
	return apartments, err
}

func (r *apartmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Apartment{}, id).Error
}

func (r *apartmentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Apartment{}).Count(&count).Error
	return count, err
}

func (r *apartmentRepository) CountByUniqueID(uniqueID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Apartment{}).Where("unique_id = ?", uniqueID).Count(&count).Error
	return count, err
}
