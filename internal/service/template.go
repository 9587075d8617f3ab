package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"template-service-backend/internal/database/models"
	apperrors "template-service-backend/internal/errors"
	"template-service-backend/internal/logger"
	"template-service-backend/internal/repository"
	"template-service-backend/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pagination defaults for FindTemplates
const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// DuplicateTitleSuffix is appended to the title of a duplicated template
const DuplicateTitleSuffix = " (copy)"

// Placeholder recipient created when a direct link is enabled on a template
// that has no recipient to bind it to.
const (
	DirectLinkRecipientEmail = "direct.link@placeholder.invalid"
	DirectLinkRecipientName  = "Direct link recipient"
)

// TemplateListResponse represents a paginated list of templates
type TemplateListResponse struct {
	Data        []models.Template `json:"data"`
	Count       int64             `json:"count"`
	CurrentPage int               `json:"currentPage"`
	PerPage     int               `json:"perPage"`
	TotalPages  int               `json:"totalPages"`
}

// TemplateService handles business logic for templates, their direct links
// and the documents created from them. Payloads reach it already validated.
type TemplateService struct {
	templates   repository.TemplateRepositoryInterface
	directLinks repository.DirectLinkRepositoryInterface
	documents   repository.DocumentRepositoryInterface
	newToken    func() string
}

// NewTemplateService creates a new template service
func NewTemplateService(
	templates repository.TemplateRepositoryInterface,
	directLinks repository.DirectLinkRepositoryInterface,
	documents repository.DocumentRepositoryInterface,
) *TemplateService {
	return &TemplateService{
		templates:   templates,
		directLinks: directLinks,
		documents:   documents,
		newToken:    newDirectLinkToken,
	}
}

func newDirectLinkToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func scope(userID int64, teamID *int64) *repository.TemplateScope {
	return &repository.TemplateScope{UserID: userID, TeamID: teamID}
}

func (s *TemplateService) getTemplate(id int64, scope *repository.TemplateScope) (*models.Template, error) {
	template, err := s.templates.GetByID(id, scope)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return template, nil
}

// metaFor returns a copy of the template meta, or the defaults when the
// template has none yet.
func metaFor(template *models.Template) *models.TemplateMeta {
	if template.Meta != nil {
		meta := *template.Meta
		return &meta
	}
	return &models.TemplateMeta{
		TemplateID:         template.ID,
		DistributionMethod: models.DistributionMethodEmail,
		EmailSettings:      models.DefaultDocumentEmailSettings(),
		Language:           string(models.DefaultLanguage),
		SigningOrder:       models.SigningOrderParallel,
	}
}

// CreateTemplate creates a private template owned by the caller
func (s *TemplateService) CreateTemplate(ctx context.Context, userID int64, req *validation.CreateTemplateRequest) (*models.Template, error) {
	template := &models.Template{
		Title:                  req.Title,
		Type:                   models.TemplateTypePrivate,
		UserID:                 userID,
		TeamID:                 req.TeamID,
		TemplateDocumentDataID: req.TemplateDocumentDataID,
	}

	if err := s.templates.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	logger.WithContext(ctx).WithField("template_id", template.ID).Info("Template created")
	return template, nil
}

// DuplicateTemplate copies a template with its meta and recipients. The copy
// has no direct link.
func (s *TemplateService) DuplicateTemplate(ctx context.Context, userID int64, req *validation.DuplicateTemplateRequest) (*models.Template, error) {
	source, err := s.getTemplate(req.TemplateID, scope(userID, req.TeamID))
	if err != nil {
		return nil, err
	}

	duplicate := &models.Template{
		Title:                  source.Title + DuplicateTitleSuffix,
		Type:                   source.Type,
		UserID:                 userID,
		TeamID:                 source.TeamID,
		ExternalID:             source.ExternalID,
		PublicTitle:            source.PublicTitle,
		PublicDescription:      source.PublicDescription,
		TemplateDocumentDataID: source.TemplateDocumentDataID,
		GlobalAccessAuth:       source.GlobalAccessAuth,
		GlobalActionAuth:       source.GlobalActionAuth,
	}
	if source.Meta != nil {
		meta := *source.Meta
		meta.ID = 0
		meta.TemplateID = 0
		duplicate.Meta = &meta
	}
	for _, recipient := range source.Recipients {
		duplicate.Recipients = append(duplicate.Recipients, models.TemplateRecipient{
			Email: recipient.Email,
			Name:  recipient.Name,
		})
	}

	if err := s.templates.Create(duplicate); err != nil {
		return nil, fmt.Errorf("failed to duplicate template: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"template_id":  duplicate.ID,
		"duplicate_of": source.ID,
	}).Info("Template duplicated")
	return duplicate, nil
}

// DeleteTemplate deletes a template
func (s *TemplateService) DeleteTemplate(ctx context.Context, userID int64, req *validation.DeleteTemplateRequest) error {
	template, err := s.getTemplate(req.TemplateID, scope(userID, req.TeamID))
	if err != nil {
		return err
	}

	if err := s.templates.Delete(template.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTemplateNotFound
		}
		return fmt.Errorf("failed to delete template: %w", err)
	}

	logger.WithContext(ctx).WithField("template_id", template.ID).Info("Template deleted")
	return nil
}

// GetTemplateByID retrieves a template with its meta, recipients and direct link
func (s *TemplateService) GetTemplateByID(ctx context.Context, userID int64, req *validation.GetTemplateByIDQuery) (*models.Template, error) {
	return s.getTemplate(req.TemplateID, scope(userID, req.TeamID))
}

// FindTemplates searches templates by title with pagination
func (s *TemplateService) FindTemplates(ctx context.Context, userID int64, req *validation.FindTemplatesQuery) (*TemplateListResponse, error) {
	page, perPage := DefaultPage, DefaultPerPage
	if req.Page != nil {
		page = *req.Page
	}
	if req.PerPage != nil {
		perPage = *req.PerPage
	}
	if page < 1 || perPage < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	filter := repository.TemplateFilter{
		Scope:  *scope(userID, req.TeamID),
		Type:   req.Type,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}
	if req.Query != nil {
		filter.Query = *req.Query
	}

	templates, total, err := s.templates.Find(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find templates: %w", err)
	}
	if templates == nil {
		templates = []models.Template{}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"page":  page,
		"total": total,
	}).Debug("Templates found")

	return &TemplateListResponse{
		Data:        templates,
		Count:       total,
		CurrentPage: page,
		PerPage:     perPage,
		TotalPages:  int((total + int64(perPage) - 1) / int64(perPage)),
	}, nil
}

// UpdateTemplateSettings applies the data block to the template and, when
// present, the meta block to its meta. Nullable fields sent as null clear the
// stored value. The meta language falls back to data.language.
func (s *TemplateService) UpdateTemplateSettings(ctx context.Context, userID int64, req *validation.UpdateTemplateSettingsRequest) (*models.Template, error) {
	template, err := s.getTemplate(req.TemplateID, scope(userID, req.TeamID))
	if err != nil {
		return nil, err
	}

	data := req.Data
	if data.Title != nil {
		template.Title = *data.Title
	}
	if data.ExternalID.IsSet() {
		template.ExternalID = data.ExternalID.Ptr()
	}
	if data.GlobalAccessAuth.IsSet() {
		template.GlobalAccessAuth = data.GlobalAccessAuth.Ptr()
	}
	if data.GlobalActionAuth.IsSet() {
		template.GlobalActionAuth = data.GlobalActionAuth.Ptr()
	}
	if data.PublicTitle != nil {
		template.PublicTitle = *data.PublicTitle
	}
	if data.PublicDescription != nil {
		template.PublicDescription = *data.PublicDescription
	}
	if data.Type != nil {
		template.Type = *data.Type
	}

	meta := metaFor(template)
	meta.Language = data.Language
	if in := req.Meta; in != nil {
		meta.Subject = in.Subject
		meta.Message = in.Message
		meta.Timezone = in.Timezone
		meta.DateFormat = in.DateFormat
		meta.DistributionMethod = in.DistributionMethod
		meta.EmailSettings = in.EmailSettings
		meta.RedirectURL = ""
		if in.RedirectURL != nil {
			meta.RedirectURL = *in.RedirectURL
		}
		if in.Language != nil {
			meta.Language = string(*in.Language)
		}
		if in.TypedSignatureEnabled != nil {
			meta.TypedSignatureEnabled = *in.TypedSignatureEnabled
		}
	}

	if err := s.templates.UpdateWithMeta(template, meta); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	template.Meta = meta

	logger.WithContext(ctx).WithField("template_id", template.ID).Info("Template settings updated")
	return template, nil
}

// SetSigningOrderForTemplate changes whether recipients sign in turn or in parallel
func (s *TemplateService) SetSigningOrderForTemplate(ctx context.Context, userID int64, req *validation.SetSigningOrderRequest) (*models.Template, error) {
	return s.updateMeta(ctx, userID, req.TemplateID, req.TeamID, func(meta *models.TemplateMeta) {
		meta.SigningOrder = req.SigningOrder
	})
}

// UpdateTemplateTypedSignatureSettings enables or disables typed signatures
func (s *TemplateService) UpdateTemplateTypedSignatureSettings(ctx context.Context, userID int64, req *validation.UpdateTypedSignatureSettingsRequest) (*models.Template, error) {
	return s.updateMeta(ctx, userID, req.TemplateID, req.TeamID, func(meta *models.TemplateMeta) {
		meta.TypedSignatureEnabled = req.TypedSignatureEnabled
	})
}

// updateMeta changes one meta setting. The template row is saved as well so
// its updatedAt moves and open direct links see the change.
func (s *TemplateService) updateMeta(ctx context.Context, userID, templateID int64, teamID *int64, apply func(*models.TemplateMeta)) (*models.Template, error) {
	template, err := s.getTemplate(templateID, scope(userID, teamID))
	if err != nil {
		return nil, err
	}

	meta := metaFor(template)
	apply(meta)
	if err := s.templates.UpdateWithMeta(template, meta); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	template.Meta = meta

	logger.WithContext(ctx).WithField("template_id", template.ID).Info("Template meta updated")
	return template, nil
}

// MoveTemplateToTeam moves a template owned by the caller into a team
func (s *TemplateService) MoveTemplateToTeam(ctx context.Context, userID int64, req *validation.MoveTemplateToTeamRequest) (*models.Template, error) {
	template, err := s.getTemplate(req.TemplateID, nil)
	if err != nil {
		return nil, err
	}
	if template.UserID != userID {
		return nil, apperrors.ErrTemplateNotFound
	}
	if template.TeamID != nil && *template.TeamID == req.TeamID {
		return nil, apperrors.ErrTemplateAlreadyInTeam
	}

	teamID := req.TeamID
	template.TeamID = &teamID
	if err := s.templates.Update(template); err != nil {
		return nil, fmt.Errorf("failed to move template: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"template_id": template.ID,
		"team_id":     teamID,
	}).Info("Template moved to team")
	return template, nil
}

// CreateTemplateDirectLink enables the public link of a template. The link is
// bound to the given template recipient, to the first recipient when none is
// given, or to a new placeholder recipient when the template has none.
func (s *TemplateService) CreateTemplateDirectLink(ctx context.Context, userID int64, req *validation.CreateTemplateDirectLinkRequest) (*models.TemplateDirectLink, error) {
	template, err := s.getTemplate(req.TemplateID, scope(userID, req.TeamID))
	if err != nil {
		return nil, err
	}
	if template.DirectLink != nil {
		return nil, apperrors.ErrTemplateDirectLinkExists
	}

	var recipientID int64
	switch {
	case req.DirectRecipientID != nil:
		for _, recipient := range template.Recipients {
			if recipient.ID == *req.DirectRecipientID {
				recipientID = recipient.ID
				break
			}
		}
		if recipientID == 0 {
			return nil, apperrors.ErrTemplateRecipientNotFound
		}
	case len(template.Recipients) > 0:
		recipientID = template.Recipients[0].ID
	default:
		placeholder := &models.TemplateRecipient{
			TemplateID: template.ID,
			Email:      DirectLinkRecipientEmail,
			Name:       DirectLinkRecipientName,
		}
		if err := s.templates.AddRecipient(placeholder); err != nil {
			return nil, fmt.Errorf("failed to create direct link recipient: %w", err)
		}
		recipientID = placeholder.ID
	}

	link := &models.TemplateDirectLink{
		TemplateID:                template.ID,
		Token:                     s.newToken(),
		Enabled:                   true,
		DirectTemplateRecipientID: recipientID,
	}
	if err := s.directLinks.Create(link); err != nil {
		return nil, fmt.Errorf("failed to create direct link: %w", err)
	}

	logger.WithContext(ctx).WithField("template_id", template.ID).Info("Template direct link created")
	return link, nil
}

// DeleteTemplateDirectLink removes the public link of a template
func (s *TemplateService) DeleteTemplateDirectLink(ctx context.Context, userID int64, req *validation.DeleteTemplateDirectLinkRequest) error {
	link, err := s.directLinkFor(userID, req.TemplateID, req.TeamID)
	if err != nil {
		return err
	}

	if err := s.directLinks.Delete(link.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTemplateDirectLinkNotFound
		}
		return fmt.Errorf("failed to delete direct link: %w", err)
	}

	logger.WithContext(ctx).WithField("template_id", req.TemplateID).Info("Template direct link deleted")
	return nil
}

// ToggleTemplateDirectLink enables or disables the public link of a template
func (s *TemplateService) ToggleTemplateDirectLink(ctx context.Context, userID int64, req *validation.ToggleTemplateDirectLinkRequest) (*models.TemplateDirectLink, error) {
	link, err := s.directLinkFor(userID, req.TemplateID, req.TeamID)
	if err != nil {
		return nil, err
	}

	if err := s.directLinks.SetEnabled(link.ID, req.Enabled); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateDirectLinkNotFound
		}
		return nil, fmt.Errorf("failed to toggle direct link: %w", err)
	}
	link.Enabled = req.Enabled

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"template_id": req.TemplateID,
		"enabled":     req.Enabled,
	}).Info("Template direct link toggled")
	return link, nil
}

func (s *TemplateService) directLinkFor(userID, templateID int64, teamID *int64) (*models.TemplateDirectLink, error) {
	template, err := s.getTemplate(templateID, scope(userID, teamID))
	if err != nil {
		return nil, err
	}
	if template.DirectLink == nil {
		return nil, apperrors.ErrTemplateDirectLinkNotFound
	}
	return template.DirectLink, nil
}

// CreateDocumentFromTemplate instantiates a document. Every given recipient
// must reference a template recipient; template recipients that are not given
// keep their placeholder details.
func (s *TemplateService) CreateDocumentFromTemplate(ctx context.Context, userID int64, req *validation.CreateDocumentFromTemplateRequest) (*models.Document, error) {
	template, err := s.getTemplate(req.TemplateID, scope(userID, req.TeamID))
	if err != nil {
		return nil, err
	}

	overrides := make(map[int64]validation.RecipientInput, len(req.Recipients))
	for _, input := range req.Recipients {
		overrides[input.ID] = input
	}
	known := make(map[int64]struct{}, len(template.Recipients))
	for _, recipient := range template.Recipients {
		known[recipient.ID] = struct{}{}
	}
	for id := range overrides {
		if _, ok := known[id]; !ok {
			return nil, apperrors.ErrTemplateRecipientNotFound
		}
	}

	status := models.DocumentStatusDraft
	if req.DistributeDocument != nil && *req.DistributeDocument {
		status = models.DocumentStatusPending
	}
	dataID := template.TemplateDocumentDataID
	if req.CustomDocumentDataID != nil && *req.CustomDocumentDataID != "" {
		dataID = *req.CustomDocumentDataID
	}

	document := newDocument(template, userID, status, models.DocumentSourceTemplate, dataID)
	for _, recipient := range template.Recipients {
		templateRecipientID := recipient.ID
		out := models.DocumentRecipient{
			TemplateRecipientID: &templateRecipientID,
			Email:               recipient.Email,
			Name:                recipient.Name,
		}
		if input, ok := overrides[recipient.ID]; ok {
			out.Email = input.Email
			if input.Name != nil {
				out.Name = *input.Name
			}
		}
		document.Recipients = append(document.Recipients, out)
	}

	if err := s.documents.Create(document); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"template_id": template.ID,
		"document_id": document.ID,
		"status":      document.Status,
	}).Info("Document created from template")
	return document, nil
}

// CreateDocumentFromDirectTemplate lets a recipient start a document through
// a public link. The request fails with ErrTemplateModified when the template
// changed after the recipient loaded it.
func (s *TemplateService) CreateDocumentFromDirectTemplate(ctx context.Context, req *validation.CreateDocumentFromDirectTemplateRequest) (*models.Document, error) {
	link, err := s.directLinks.GetByToken(req.DirectTemplateToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateDirectLinkNotFound
		}
		return nil, fmt.Errorf("failed to get direct link: %w", err)
	}
	if !link.Enabled {
		return nil, apperrors.ErrDirectLinkDisabled
	}

	template, err := s.getTemplate(link.TemplateID, nil)
	if err != nil {
		return nil, err
	}
	// clients send millisecond timestamps
	if template.UpdatedAt.Truncate(time.Millisecond).After(req.TemplateUpdatedAt) {
		return nil, apperrors.ErrTemplateModified
	}

	document := newDocument(template, template.UserID, models.DocumentStatusPending, models.DocumentSourceTemplateDirectLink, template.TemplateDocumentDataID)
	if req.DirectTemplateExternalID != nil {
		document.ExternalID = req.DirectTemplateExternalID
	}
	for _, recipient := range template.Recipients {
		templateRecipientID := recipient.ID
		out := models.DocumentRecipient{
			TemplateRecipientID: &templateRecipientID,
			Email:               recipient.Email,
			Name:                recipient.Name,
		}
		if recipient.ID == link.DirectTemplateRecipientID {
			out.Email = req.DirectRecipientEmail
			out.Name = ""
			if req.DirectRecipientName != nil {
				out.Name = *req.DirectRecipientName
			}
		}
		document.Recipients = append(document.Recipients, out)
	}

	if err := s.documents.Create(document); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"template_id":   template.ID,
		"document_id":   document.ID,
		"signed_fields": len(req.SignedFieldValues),
	}).Info("Document created from direct link")
	return document, nil
}

func newDocument(template *models.Template, userID int64, status models.DocumentStatus, source models.DocumentSource, dataID string) *models.Document {
	templateID := template.ID
	return &models.Document{
		Title:          template.Title,
		UserID:         userID,
		TeamID:         template.TeamID,
		TemplateID:     &templateID,
		ExternalID:     template.ExternalID,
		Status:         status,
		Source:         source,
		DocumentDataID: dataID,
	}
}
