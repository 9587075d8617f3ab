package validation

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"template-service-backend/internal/database/models"
	apperrors "template-service-backend/internal/errors"
)

// Public-facing template text limits, counted in characters.
const (
	MaxTemplatePublicTitleLength       = 50
	MaxTemplatePublicDescriptionLength = 256
)

// RecipientsUniqueMessage is reported when two recipients share an email address.
const RecipientsUniqueMessage = "Recipients must have unique emails"

// Field conventions: non-pointer fields are required, pointer and Nullable
// fields are optional, and a `default` tag fills in an absent value.

// CreateTemplateRequest represents the payload for creating a template
type CreateTemplateRequest struct {
	Title                  string `json:"title" validate:"min=1"`
	TeamID                 *int64 `json:"teamId,omitempty" validate:"omitempty,min=1"`
	TemplateDocumentDataID string `json:"templateDocumentDataId" validate:"min=1"`
}

func (r *CreateTemplateRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

// RecipientActionAuthOptions is the proof of authentication a recipient sends
// with a signed field. Which of the optional members are required depends on Type.
type RecipientActionAuthOptions struct {
	Type                   models.RecipientActionAuth `json:"type" validate:"recipient_action_auth"`
	Token                  *string                    `json:"token,omitempty"`
	TokenReference         *string                    `json:"tokenReference,omitempty"`
	AuthenticationResponse *json.RawMessage           `json:"authenticationResponse,omitempty"`
}

// SignedFieldValue is a value a direct-link recipient entered into a template field
type SignedFieldValue struct {
	Token       string                      `json:"token"`
	FieldID     int64                       `json:"fieldId" validate:"min=1"`
	Value       string                      `json:"value"`
	IsBase64    *bool                       `json:"isBase64,omitempty"`
	AuthOptions *RecipientActionAuthOptions `json:"authOptions,omitempty"`
}

// CreateDocumentFromDirectTemplateRequest represents a recipient self-starting a document via a direct link
type CreateDocumentFromDirectTemplateRequest struct {
	DirectRecipientName      *string            `json:"directRecipientName,omitempty"`
	DirectRecipientEmail     string             `json:"directRecipientEmail" validate:"email"`
	DirectTemplateToken      string             `json:"directTemplateToken" validate:"min=1"`
	DirectTemplateExternalID *string            `json:"directTemplateExternalId,omitempty"`
	SignedFieldValues        []SignedFieldValue `json:"signedFieldValues" validate:"dive"`
	TemplateUpdatedAt        time.Time          `json:"templateUpdatedAt"`
}

func (r *CreateDocumentFromDirectTemplateRequest) normalize() {
	for i := range r.SignedFieldValues {
		r.SignedFieldValues[i].Value = strings.TrimSpace(r.SignedFieldValues[i].Value)
	}
}

func (r *CreateDocumentFromDirectTemplateRequest) refine(issues apperrors.ValidationErrors) apperrors.ValidationErrors {
	var out apperrors.ValidationErrors
	for i, field := range r.SignedFieldValues {
		path := "signedFieldValues." + strconv.Itoa(i) + ".authOptions"
		if field.AuthOptions == nil || issues.HasPrefix(path) {
			continue
		}
		opts := field.AuthOptions
		switch opts.Type {
		case models.RecipientActionAuthPasskey:
			if opts.AuthenticationResponse == nil {
				out.Add(path+".authenticationResponse", "Required")
			}
			if opts.TokenReference == nil {
				out.Add(path+".tokenReference", "Required")
			}
		case models.RecipientActionAuthTwoFactorAuth:
			if opts.Token == nil {
				out.Add(path+".token", "Required")
			}
		}
	}
	return out
}

// RecipientInput binds a template recipient placeholder to a concrete person
type RecipientInput struct {
	ID    int64   `json:"id" validate:"min=1"`
	Email string  `json:"email" validate:"email"`
	Name  *string `json:"name,omitempty"`
}

// CreateDocumentFromTemplateRequest represents the payload for instantiating a document
type CreateDocumentFromTemplateRequest struct {
	TemplateID           int64            `json:"templateId" validate:"min=1"`
	TeamID               *int64           `json:"teamId,omitempty" validate:"omitempty,min=1"`
	Recipients           []RecipientInput `json:"recipients" validate:"dive"`
	DistributeDocument   *bool            `json:"distributeDocument,omitempty"`
	CustomDocumentDataID *string          `json:"customDocumentDataId,omitempty"`
}

// refine runs only once every recipient passed its own checks.
func (r *CreateDocumentFromTemplateRequest) refine(issues apperrors.ValidationErrors) apperrors.ValidationErrors {
	var out apperrors.ValidationErrors
	if issues.HasPrefix("recipients") {
		return out
	}
	seen := make(map[string]struct{}, len(r.Recipients))
	for _, recipient := range r.Recipients {
		seen[recipient.Email] = struct{}{}
	}
	if len(seen) != len(r.Recipients) {
		out.Add("recipients", RecipientsUniqueMessage)
	}
	return out
}

// DuplicateTemplateRequest represents the payload for copying a template
type DuplicateTemplateRequest struct {
	TemplateID int64  `json:"templateId" validate:"min=1"`
	TeamID     *int64 `json:"teamId,omitempty" validate:"omitempty,min=1"`
}

// CreateTemplateDirectLinkRequest represents the payload for enabling a template's public link
type CreateTemplateDirectLinkRequest struct {
	TemplateID        int64  `json:"templateId" validate:"min=1"`
	TeamID            *int64 `json:"teamId,omitempty" validate:"omitempty,min=1"`
	DirectRecipientID *int64 `json:"directRecipientId,omitempty" validate:"omitempty,min=1"`
}

// DeleteTemplateDirectLinkRequest represents the payload for removing a template's public link
type DeleteTemplateDirectLinkRequest struct {
	TemplateID int64  `json:"templateId" validate:"min=1"`
	TeamID     *int64 `json:"teamId,omitempty" validate:"omitempty,min=1"`
}

// ToggleTemplateDirectLinkRequest represents the payload for enabling or disabling a public link
type ToggleTemplateDirectLinkRequest struct {
	TemplateID int64  `json:"templateId" validate:"min=1"`
	TeamID     *int64 `json:"teamId,omitempty" validate:"omitempty,min=1"`
	Enabled    bool   `json:"enabled"`
}

// DeleteTemplateRequest represents the payload for deleting a template
type DeleteTemplateRequest struct {
	TemplateID int64  `json:"templateId" validate:"min=1"`
	TeamID     *int64 `json:"teamId,omitempty" validate:"omitempty,min=1"`
}

// UpdateTemplateSettingsData holds the template attributes being changed.
// Language accepts any string so new locales can be stored before they are
// added to the supported set.
type UpdateTemplateSettingsData struct {
	Title             *string                             `json:"title,omitempty" validate:"omitempty,min=1"`
	ExternalID        Nullable[string]                    `json:"externalId,omitzero"`
	GlobalAccessAuth  Nullable[models.DocumentAccessAuth] `json:"globalAccessAuth,omitzero" validate:"omitempty,access_auth"`
	GlobalActionAuth  Nullable[models.DocumentActionAuth] `json:"globalActionAuth,omitzero" validate:"omitempty,action_auth"`
	PublicTitle       *string                             `json:"publicTitle,omitempty" validate:"omitempty,min=1,max=50"`
	PublicDescription *string                             `json:"publicDescription,omitempty" validate:"omitempty,min=1,max=256"`
	Type              *models.TemplateType                `json:"type,omitempty" validate:"omitempty,template_type"`
	Language          string                              `json:"language" default:"en"`
}

// TemplateMetaInput holds the sending configuration of a template
type TemplateMetaInput struct {
	Subject               string                            `json:"subject"`
	Message               string                            `json:"message"`
	Timezone              string                            `json:"timezone"`
	DateFormat            string                            `json:"dateFormat"`
	DistributionMethod    models.DocumentDistributionMethod `json:"distributionMethod" validate:"distribution_method"`
	EmailSettings         models.DocumentEmailSettings      `json:"emailSettings" default:"{}"`
	RedirectURL           *string                           `json:"redirectUrl,omitempty" validate:"omitempty,redirect_url"`
	Language              *models.LanguageCode              `json:"language,omitempty" validate:"omitempty,language_code"`
	TypedSignatureEnabled *bool                             `json:"typedSignatureEnabled,omitempty"`
}

// UpdateTemplateSettingsRequest represents the payload for updating template settings
type UpdateTemplateSettingsRequest struct {
	TemplateID int64                      `json:"templateId" validate:"min=1"`
	TeamID     *int64                     `json:"teamId,omitempty" validate:"omitempty,min=1"`
	Data       UpdateTemplateSettingsData `json:"data"`
	Meta       *TemplateMetaInput         `json:"meta,omitempty"`
}

func (r *UpdateTemplateSettingsRequest) normalize() {
	r.Data.PublicTitle = trimPtr(r.Data.PublicTitle)
	r.Data.PublicDescription = trimPtr(r.Data.PublicDescription)
}

// SetSigningOrderRequest represents the payload for changing a template's signing order
type SetSigningOrderRequest struct {
	TemplateID   int64                       `json:"templateId" validate:"min=1"`
	TeamID       *int64                      `json:"teamId,omitempty" validate:"omitempty,min=1"`
	SigningOrder models.DocumentSigningOrder `json:"signingOrder" validate:"signing_order"`
}

// FindSearchParams are the generic search and pagination parameters shared by list queries.
// Page numbers arrive as query strings, so numeric strings are accepted.
type FindSearchParams struct {
	Query   *string `json:"query,omitempty"`
	Page    *int    `json:"page,omitempty" payload:"coerce" validate:"omitempty,min=1"`
	PerPage *int    `json:"perPage,omitempty" payload:"coerce" validate:"omitempty,min=1"`
}

// FindTemplatesQuery represents the template search parameters
type FindTemplatesQuery struct {
	FindSearchParams
	TeamID *int64               `json:"teamId,omitempty" validate:"omitempty,min=1"`
	Type   *models.TemplateType `json:"type,omitempty" validate:"omitempty,template_type"`
}

// GetTemplateByIDQuery represents a single-template lookup
type GetTemplateByIDQuery struct {
	TemplateID int64  `json:"templateId" validate:"min=1"`
	TeamID     *int64 `json:"teamId,omitempty" validate:"omitempty,min=1"`
}

// MoveTemplateToTeamRequest represents the payload for moving a template into a team.
// Unlike the other operations the team is mandatory.
type MoveTemplateToTeamRequest struct {
	TemplateID int64 `json:"templateId" validate:"min=1"`
	TeamID     int64 `json:"teamId" validate:"min=1"`
}

// UpdateTypedSignatureSettingsRequest represents the payload for toggling typed signatures
type UpdateTypedSignatureSettingsRequest struct {
	TemplateID            int64  `json:"templateId" validate:"min=1"`
	TeamID                *int64 `json:"teamId,omitempty" validate:"omitempty,min=1"`
	TypedSignatureEnabled bool   `json:"typedSignatureEnabled"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
