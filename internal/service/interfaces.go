package service

import (
	"context"

	"template-service-backend/internal/database/models"
	"template-service-backend/internal/validation"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TemplateServiceInterface defines the interface for template service
type TemplateServiceInterface interface {
	CreateTemplate(ctx context.Context, userID int64, req *validation.CreateTemplateRequest) (*models.Template, error)
	DuplicateTemplate(ctx context.Context, userID int64, req *validation.DuplicateTemplateRequest) (*models.Template, error)
	DeleteTemplate(ctx context.Context, userID int64, req *validation.DeleteTemplateRequest) error
	GetTemplateByID(ctx context.Context, userID int64, req *validation.GetTemplateByIDQuery) (*models.Template, error)
	FindTemplates(ctx context.Context, userID int64, req *validation.FindTemplatesQuery) (*TemplateListResponse, error)
	UpdateTemplateSettings(ctx context.Context, userID int64, req *validation.UpdateTemplateSettingsRequest) (*models.Template, error)
	SetSigningOrderForTemplate(ctx context.Context, userID int64, req *validation.SetSigningOrderRequest) (*models.Template, error)
	UpdateTemplateTypedSignatureSettings(ctx context.Context, userID int64, req *validation.UpdateTypedSignatureSettingsRequest) (*models.Template, error)
	MoveTemplateToTeam(ctx context.Context, userID int64, req *validation.MoveTemplateToTeamRequest) (*models.Template, error)
	CreateTemplateDirectLink(ctx context.Context, userID int64, req *validation.CreateTemplateDirectLinkRequest) (*models.TemplateDirectLink, error)
	DeleteTemplateDirectLink(ctx context.Context, userID int64, req *validation.DeleteTemplateDirectLinkRequest) error
	ToggleTemplateDirectLink(ctx context.Context, userID int64, req *validation.ToggleTemplateDirectLinkRequest) (*models.TemplateDirectLink, error)
	CreateDocumentFromTemplate(ctx context.Context, userID int64, req *validation.CreateDocumentFromTemplateRequest) (*models.Document, error)
	CreateDocumentFromDirectTemplate(ctx context.Context, req *validation.CreateDocumentFromDirectTemplateRequest) (*models.Document, error)
}
