package repository

import (
	"template-service-backend/internal/database/models"

	"gorm.io/gorm"
)

// DirectLinkRepository handles database operations for template direct links
type DirectLinkRepository struct {
	db *gorm.DB
}

// NewDirectLinkRepository creates a new direct link repository
func NewDirectLinkRepository(db *gorm.DB) *DirectLinkRepository {
	return &DirectLinkRepository{db: db}
}

// Create creates a new direct link
func (r *DirectLinkRepository) Create(link *models.TemplateDirectLink) error {
	return r.db.Create(link).Error
}

// GetByTemplateID retrieves the direct link of a template
func (r *DirectLinkRepository) GetByTemplateID(templateID int64) (*models.TemplateDirectLink, error) {
	var link models.TemplateDirectLink
	if err := r.db.First(&link, "template_id = ?", templateID).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByToken retrieves a direct link by its public token
func (r *DirectLinkRepository) GetByToken(token string) (*models.TemplateDirectLink, error) {
	var link models.TemplateDirectLink
	if err := r.db.First(&link, "token = ?", token).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// SetEnabled enables or disables a direct link
func (r *DirectLinkRepository) SetEnabled(id int64, enabled bool) error {
	result := r.db.Model(&models.TemplateDirectLink{}).Where("id = ?", id).Update("enabled", enabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a direct link
func (r *DirectLinkRepository) Delete(id int64) error {
	result := r.db.Delete(&models.TemplateDirectLink{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
