package testutils

import (
	"fmt"
	"sync/atomic"

	"template-service-backend/internal/database/models"
)

var sequence atomic.Int64

func next() int64 {
	return sequence.Add(1)
}

// TemplateFactory provides methods to create test Template data
type TemplateFactory struct{}

// NewTemplateFactory creates a new TemplateFactory
func NewTemplateFactory() *TemplateFactory {
	return &TemplateFactory{}
}

// Create creates a test Template owned by userID with two recipients
func (f *TemplateFactory) Create(userID int64) *models.Template {
	n := next()
	return &models.Template{
		Title:                  fmt.Sprintf("Test Template %d", n),
		Type:                   models.TemplateTypePrivate,
		UserID:                 userID,
		TemplateDocumentDataID: fmt.Sprintf("document-data-%d", n),
		Recipients: []models.TemplateRecipient{
			{Email: fmt.Sprintf("signer-%d@example.com", n), Name: "Signer"},
			{Email: fmt.Sprintf("witness-%d@example.com", n), Name: "Witness"},
		},
	}
}

// WithTitle sets a custom title for the template
func (f *TemplateFactory) WithTitle(userID int64, title string) *models.Template {
	template := f.Create(userID)
	template.Title = title
	return template
}

// WithTeam places the template in a team
func (f *TemplateFactory) WithTeam(userID, teamID int64) *models.Template {
	template := f.Create(userID)
	template.TeamID = &teamID
	return template
}

// WithMeta attaches the default meta to the template
func (f *TemplateFactory) WithMeta(userID int64) *models.Template {
	template := f.Create(userID)
	template.Meta = &models.TemplateMeta{
		Subject:            "Please sign",
		Message:            "Your document is ready",
		Timezone:           "Etc/UTC",
		DateFormat:         "yyyy-MM-dd",
		DistributionMethod: models.DistributionMethodEmail,
		EmailSettings:      models.DefaultDocumentEmailSettings(),
		Language:           string(models.DefaultLanguage),
		SigningOrder:       models.SigningOrderParallel,
	}
	return template
}

// DirectLinkFactory provides methods to create test TemplateDirectLink data
type DirectLinkFactory struct{}

// NewDirectLinkFactory creates a new DirectLinkFactory
func NewDirectLinkFactory() *DirectLinkFactory {
	return &DirectLinkFactory{}
}

// Create creates an enabled direct link bound to the first recipient of template
func (f *DirectLinkFactory) Create(template *models.Template) *models.TemplateDirectLink {
	link := &models.TemplateDirectLink{
		TemplateID: template.ID,
		Token:      fmt.Sprintf("token-%d", next()),
		Enabled:    true,
	}
	if len(template.Recipients) > 0 {
		link.DirectTemplateRecipientID = template.Recipients[0].ID
	}
	return link
}

// DocumentFactory provides methods to create test Document data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a draft document instantiated from template
func (f *DocumentFactory) Create(template *models.Template) *models.Document {
	templateID := template.ID
	document := &models.Document{
		Title:          template.Title,
		UserID:         template.UserID,
		TeamID:         template.TeamID,
		TemplateID:     &templateID,
		Status:         models.DocumentStatusDraft,
		Source:         models.DocumentSourceTemplate,
		DocumentDataID: template.TemplateDocumentDataID,
	}
	for _, recipient := range template.Recipients {
		recipientID := recipient.ID
		document.Recipients = append(document.Recipients, models.DocumentRecipient{
			TemplateRecipientID: &recipientID,
			Email:               recipient.Email,
			Name:                recipient.Name,
		})
	}
	return document
}

// FactorySet provides access to all factories
type FactorySet struct {
	Template   *TemplateFactory
	DirectLink *DirectLinkFactory
	Document   *DocumentFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Template:   NewTemplateFactory(),
		DirectLink: NewDirectLinkFactory(),
		Document:   NewDocumentFactory(),
	}
}
