package validation

import (
	"fmt"
	"sort"

	apperrors "template-service-backend/internal/errors"
)

// Operation names a template lifecycle operation whose payload can be validated.
type Operation string

const (
	OpCreateTemplate                       Operation = "createTemplate"
	OpCreateDocumentFromDirectTemplate     Operation = "createDocumentFromDirectTemplate"
	OpCreateDocumentFromTemplate           Operation = "createDocumentFromTemplate"
	OpDuplicateTemplate                    Operation = "duplicateTemplate"
	OpCreateTemplateDirectLink             Operation = "createTemplateDirectLink"
	OpDeleteTemplateDirectLink             Operation = "deleteTemplateDirectLink"
	OpToggleTemplateDirectLink             Operation = "toggleTemplateDirectLink"
	OpDeleteTemplate                       Operation = "deleteTemplate"
	OpUpdateTemplateSettings               Operation = "updateTemplateSettings"
	OpSetSigningOrderForTemplate           Operation = "setSigningOrderForTemplate"
	OpFindTemplates                        Operation = "findTemplates"
	OpGetTemplateByID                      Operation = "getTemplateById"
	OpMoveTemplateToTeam                   Operation = "moveTemplateToTeam"
	OpUpdateTemplateTypedSignatureSettings Operation = "updateTemplateTypedSignatureSettings"
)

type validateFunc func(v *Validator, raw []byte) (any, error)

func erase[T any](v *Validator, raw []byte) (any, error) {
	req, err := validateInto[T](v, raw)
	if err != nil {
		return nil, err
	}
	return req, nil
}

var operations = map[Operation]validateFunc{
	OpCreateTemplate:                       erase[CreateTemplateRequest],
	OpCreateDocumentFromDirectTemplate:     erase[CreateDocumentFromDirectTemplateRequest],
	OpCreateDocumentFromTemplate:           erase[CreateDocumentFromTemplateRequest],
	OpDuplicateTemplate:                    erase[DuplicateTemplateRequest],
	OpCreateTemplateDirectLink:             erase[CreateTemplateDirectLinkRequest],
	OpDeleteTemplateDirectLink:             erase[DeleteTemplateDirectLinkRequest],
	OpToggleTemplateDirectLink:             erase[ToggleTemplateDirectLinkRequest],
	OpDeleteTemplate:                       erase[DeleteTemplateRequest],
	OpUpdateTemplateSettings:               erase[UpdateTemplateSettingsRequest],
	OpSetSigningOrderForTemplate:           erase[SetSigningOrderRequest],
	OpFindTemplates:                        erase[FindTemplatesQuery],
	OpGetTemplateByID:                      erase[GetTemplateByIDQuery],
	OpMoveTemplateToTeam:                   erase[MoveTemplateToTeamRequest],
	OpUpdateTemplateTypedSignatureSettings: erase[UpdateTypedSignatureSettingsRequest],
}

// ParseOperation returns the Operation named s.
func ParseOperation(s string) (Operation, error) {
	op := Operation(s)
	if _, ok := operations[op]; !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownOperation, s)
	}
	return op, nil
}

// Operations lists every known operation in name order.
func Operations() []Operation {
	ops := make([]Operation, 0, len(operations))
	for op := range operations {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Validate checks raw against the schema of op. On success the result is a
// pointer to the request type of that operation, e.g. *CreateTemplateRequest.
// Validation failures are returned as errors.ValidationErrors.
func (v *Validator) Validate(op Operation, raw []byte) (any, error) {
	fn, ok := operations[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownOperation, op)
	}
	return fn(v, raw)
}

// CreateTemplate validates the payload for creating a template.
func (v *Validator) CreateTemplate(raw []byte) (*CreateTemplateRequest, error) {
	return validateInto[CreateTemplateRequest](v, raw)
}

// CreateDocumentFromDirectTemplate validates a direct-link signing submission.
func (v *Validator) CreateDocumentFromDirectTemplate(raw []byte) (*CreateDocumentFromDirectTemplateRequest, error) {
	return validateInto[CreateDocumentFromDirectTemplateRequest](v, raw)
}

// CreateDocumentFromTemplate validates the payload for instantiating a document.
// Recipient emails must be pairwise distinct.
func (v *Validator) CreateDocumentFromTemplate(raw []byte) (*CreateDocumentFromTemplateRequest, error) {
	return validateInto[CreateDocumentFromTemplateRequest](v, raw)
}

func (v *Validator) DuplicateTemplate(raw []byte) (*DuplicateTemplateRequest, error) {
	return validateInto[DuplicateTemplateRequest](v, raw)
}

func (v *Validator) CreateTemplateDirectLink(raw []byte) (*CreateTemplateDirectLinkRequest, error) {
	return validateInto[CreateTemplateDirectLinkRequest](v, raw)
}

func (v *Validator) DeleteTemplateDirectLink(raw []byte) (*DeleteTemplateDirectLinkRequest, error) {
	return validateInto[DeleteTemplateDirectLinkRequest](v, raw)
}

func (v *Validator) ToggleTemplateDirectLink(raw []byte) (*ToggleTemplateDirectLinkRequest, error) {
	return validateInto[ToggleTemplateDirectLinkRequest](v, raw)
}

func (v *Validator) DeleteTemplate(raw []byte) (*DeleteTemplateRequest, error) {
	return validateInto[DeleteTemplateRequest](v, raw)
}

// UpdateTemplateSettings validates a settings update. data.language defaults
// to "en" when absent and the meta block is optional.
func (v *Validator) UpdateTemplateSettings(raw []byte) (*UpdateTemplateSettingsRequest, error) {
	return validateInto[UpdateTemplateSettingsRequest](v, raw)
}

func (v *Validator) SetSigningOrderForTemplate(raw []byte) (*SetSigningOrderRequest, error) {
	return validateInto[SetSigningOrderRequest](v, raw)
}

// FindTemplates validates template search parameters. Pagination values may
// be numeric strings.
func (v *Validator) FindTemplates(raw []byte) (*FindTemplatesQuery, error) {
	return validateInto[FindTemplatesQuery](v, raw)
}

func (v *Validator) GetTemplateByID(raw []byte) (*GetTemplateByIDQuery, error) {
	return validateInto[GetTemplateByIDQuery](v, raw)
}

// MoveTemplateToTeam validates a move; teamId is required here.
func (v *Validator) MoveTemplateToTeam(raw []byte) (*MoveTemplateToTeamRequest, error) {
	return validateInto[MoveTemplateToTeamRequest](v, raw)
}

func (v *Validator) UpdateTemplateTypedSignatureSettings(raw []byte) (*UpdateTypedSignatureSettingsRequest, error) {
	return validateInto[UpdateTypedSignatureSettingsRequest](v, raw)
}
