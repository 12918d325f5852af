package repository

import (
	"github.com/estatefox/estatefox/app/models"
	"gorm.io/gorm"
)

// documentRepository implements the DocumentRepository interface
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository instance
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(doc *models.Document) error {
	return r.db.Create(doc).Error
}

func (r *documentRepository) GetByID(id uint) (*models.Document, error) {
	var doc models.Document
	err := r.db.First(&doc, id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListByFileURLPrefix returns documents whose file_url starts with the given
// prefix, ordered by id. The URL normalizer uses this as its idempotence
// filter: rewritten rows no longer match.
func (r *documentRepository) ListByFileURLPrefix(prefix string) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Where("file_url LIKE ?", prefix+"%").Order("id ASC").Find(&docs).Error
	return docs, err
}

func (r *documentRepository) UpdateFileURL(id uint, fileURL string) error {
	return r.db.Model(&models.Document{}).Where("id = ?", id).Update("file_url", fileURL).Error
}

func (r *documentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Document{}).Count(&count).Error
	return count, err
}
