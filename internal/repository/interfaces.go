package repository

import (
	"template-service-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TemplateRepositoryInterface defines the interface for template repository operations
type TemplateRepositoryInterface interface {
	Create(template *models.Template) error
	GetByID(id int64, scope *TemplateScope) (*models.Template, error)
	Find(filter TemplateFilter) ([]models.Template, int64, error)
	Update(template *models.Template) error
	Delete(id int64) error
	UpdateWithMeta(template *models.Template, meta *models.TemplateMeta) error
	AddRecipient(recipient *models.TemplateRecipient) error
}

// DirectLinkRepositoryInterface defines the interface for template direct link operations
type DirectLinkRepositoryInterface interface {
	Create(link *models.TemplateDirectLink) error
	GetByTemplateID(templateID int64) (*models.TemplateDirectLink, error)
	GetByToken(token string) (*models.TemplateDirectLink, error)
	SetEnabled(id int64, enabled bool) error
	Delete(id int64) error
}

// DocumentRepositoryInterface defines the interface for document repository operations
type DocumentRepositoryInterface interface {
	Create(document *models.Document) error
	GetByID(id int64) (*models.Document, error)
}
