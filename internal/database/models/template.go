package models

import "time"

// Template is a reusable document definition that documents are instantiated from
type Template struct {
	BaseModel
	Title                  string              `json:"title" gorm:"not null"`
	Type                   TemplateType        `json:"type" gorm:"size:16;not null;default:PRIVATE"`
	UserID                 int64               `json:"userId" gorm:"not null;index"`
	TeamID                 *int64              `json:"teamId,omitempty" gorm:"index"`
	ExternalID             *string             `json:"externalId,omitempty" gorm:"size:255"`
	PublicTitle            string              `json:"publicTitle" gorm:"size:50"`
	PublicDescription      string              `json:"publicDescription" gorm:"size:256"`
	TemplateDocumentDataID string              `json:"templateDocumentDataId" gorm:"not null"`
	GlobalAccessAuth       *DocumentAccessAuth `json:"globalAccessAuth" gorm:"size:32"`
	GlobalActionAuth       *DocumentActionAuth `json:"globalActionAuth" gorm:"size:32"`

	// Relationships
	Meta       *TemplateMeta       `json:"templateMeta,omitempty" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
	DirectLink *TemplateDirectLink `json:"directLink,omitempty" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
	Recipients []TemplateRecipient `json:"recipients,omitempty" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Template
func (Template) TableName() string {
	return "templates"
}

// DocumentEmailSettings toggles the emails sent while a document moves through signing.
// Every setting is on unless the payload turns it off.
type DocumentEmailSettings struct {
	RecipientSigningRequest bool `json:"recipientSigningRequest" default:"true"`
	RecipientRemoved        bool `json:"recipientRemoved" default:"true"`
	RecipientSigned         bool `json:"recipientSigned" default:"true"`
	DocumentPending         bool `json:"documentPending" default:"true"`
	DocumentCompleted       bool `json:"documentCompleted" default:"true"`
	DocumentDeleted         bool `json:"documentDeleted" default:"true"`
	OwnerDocumentCompleted  bool `json:"ownerDocumentCompleted" default:"true"`
}

// DefaultDocumentEmailSettings has every email enabled
func DefaultDocumentEmailSettings() DocumentEmailSettings {
	return DocumentEmailSettings{
		RecipientSigningRequest: true,
		RecipientRemoved:        true,
		RecipientSigned:         true,
		DocumentPending:         true,
		DocumentCompleted:       true,
		DocumentDeleted:         true,
		OwnerDocumentCompleted:  true,
	}
}

// TemplateMeta holds the sending configuration copied onto documents created from a template
type TemplateMeta struct {
	ID                    int64                      `json:"id" gorm:"primaryKey;autoIncrement"`
	TemplateID            int64                      `json:"templateId" gorm:"not null;uniqueIndex"`
	Subject               string                     `json:"subject"`
	Message               string                     `json:"message"`
	Timezone              string                     `json:"timezone" gorm:"size:64"`
	DateFormat            string                     `json:"dateFormat" gorm:"size:64"`
	DistributionMethod    DocumentDistributionMethod `json:"distributionMethod" gorm:"size:16;not null;default:EMAIL"`
	EmailSettings         DocumentEmailSettings      `json:"emailSettings" gorm:"serializer:json"`
	RedirectURL           string                     `json:"redirectUrl"`
	Language              string                     `json:"language" gorm:"size:32;not null;default:en"`
	TypedSignatureEnabled bool                       `json:"typedSignatureEnabled"`
	SigningOrder          DocumentSigningOrder       `json:"signingOrder" gorm:"size:16;not null;default:PARALLEL"`
}

// TableName returns the table name for TemplateMeta
func (TemplateMeta) TableName() string {
	return "template_meta"
}

// TemplateRecipient is a placeholder recipient declared on a template
type TemplateRecipient struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	TemplateID int64  `json:"templateId" gorm:"not null;index"`
	Email      string `json:"email" gorm:"not null;size:255"`
	Name       string `json:"name" gorm:"size:255"`
}

// TableName returns the table name for TemplateRecipient
func (TemplateRecipient) TableName() string {
	return "template_recipients"
}

// TemplateDirectLink is the public, tokenized link that lets a recipient start a document themselves
type TemplateDirectLink struct {
	ID                        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	TemplateID                int64     `json:"templateId" gorm:"not null;uniqueIndex"`
	Token                     string    `json:"token" gorm:"not null;uniqueIndex;size:64"`
	Enabled                   bool      `json:"enabled"`
	DirectTemplateRecipientID int64     `json:"directTemplateRecipientId" gorm:"not null"`
	CreatedAt                 time.Time `json:"createdAt"`
}

// TableName returns the table name for TemplateDirectLink
func (TemplateDirectLink) TableName() string {
	return "template_direct_links"
}
