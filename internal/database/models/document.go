package models

// Document is a signable document instantiated from a template
type Document struct {
	BaseModel
	Title          string         `json:"title" gorm:"not null"`
	UserID         int64          `json:"userId" gorm:"not null;index"`
	TeamID         *int64         `json:"teamId,omitempty" gorm:"index"`
	TemplateID     *int64         `json:"templateId,omitempty" gorm:"index"`
	ExternalID     *string        `json:"externalId,omitempty" gorm:"size:255"`
	Status         DocumentStatus `json:"status" gorm:"size:16;not null;default:DRAFT"`
	Source         DocumentSource `json:"source" gorm:"size:32;not null"`
	DocumentDataID string         `json:"documentDataId" gorm:"not null"`

	// Relationships
	Recipients []DocumentRecipient `json:"recipients,omitempty" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}

// DocumentRecipient is a concrete recipient of a document
type DocumentRecipient struct {
	ID                  int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	DocumentID          int64  `json:"documentId" gorm:"not null;index"`
	TemplateRecipientID *int64 `json:"templateRecipientId,omitempty"`
	Email               string `json:"email" gorm:"not null;size:255"`
	Name                string `json:"name" gorm:"size:255"`
}

// TableName returns the table name for DocumentRecipient
func (DocumentRecipient) TableName() string {
	return "document_recipients"
}
