package repository

import (
	"template-service-backend/internal/database/models"

	"gorm.io/gorm"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document with its recipients
func (r *DocumentRepository) Create(document *models.Document) error {
	return r.db.Create(document).Error
}

// GetByID retrieves a document with its recipients
func (r *DocumentRepository) GetByID(id int64) (*models.Document, error) {
	var document models.Document
	err := r.db.Preload("Recipients", func(db *gorm.DB) *gorm.DB {
		return db.Order("document_recipients.id")
	}).First(&document, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &document, nil
}
