package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"template-service-backend/internal/auth"
	"template-service-backend/internal/database/models"
	apperrors "template-service-backend/internal/errors"
	"template-service-backend/internal/logger"
	"template-service-backend/internal/metrics"
	"template-service-backend/internal/service"
	"template-service-backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

// MaxPayloadBytes caps the size of an operation payload
const MaxPayloadBytes = 1 << 20

// Operation outcomes recorded in metrics
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

// ValidationErrorResponse is returned when a payload is rejected. Every issue
// found is listed.
type ValidationErrorResponse struct {
	Error     string                     `json:"error" example:"validation failed"`
	Operation string                     `json:"operation" example:"createTemplate"`
	Issues    apperrors.ValidationErrors `json:"issues"`
}

// DirectLinkResponse is a direct link together with the URL recipients open
type DirectLinkResponse struct {
	models.TemplateDirectLink
	URL string `json:"url" example:"https://sign.example.com/d/3f2c9a"`
}

// TemplateHandler handles HTTP requests for template operations
type TemplateHandler struct {
	service           service.TemplateServiceInterface
	validator         *validation.Validator
	metrics           *metrics.Metrics
	directLinkBaseURL string
}

// NewTemplateHandler creates a new template handler. Direct link URLs are
// built as directLinkBaseURL/<token>.
func NewTemplateHandler(service service.TemplateServiceInterface, validator *validation.Validator, metrics *metrics.Metrics, directLinkBaseURL string) *TemplateHandler {
	return &TemplateHandler{
		service:           service,
		validator:         validator,
		metrics:           metrics,
		directLinkBaseURL: strings.TrimSuffix(directLinkBaseURL, "/"),
	}
}

func (h *TemplateHandler) directLinkResponse(link *models.TemplateDirectLink) *DirectLinkResponse {
	return &DirectLinkResponse{TemplateDirectLink: *link, URL: h.directLinkBaseURL + "/" + link.Token}
}

// CreateTemplate handles POST /api/v1/templates
// @Summary Create a template
// @Description Create a private template from an uploaded document
// @Tags templates
// @Accept json
// @Produce json
// @Param template body validation.CreateTemplateRequest true "Template data"
// @Success 201 {object} models.Template "Successfully created template"
// @Failure 400 {object} ValidationErrorResponse "Invalid payload"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	op := validation.OpCreateTemplate
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	raw, ok := h.body(c, op)
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.CreateTemplate)
	if !ok {
		return
	}

	template, err := h.service.CreateTemplate(c, userID, req)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	h.succeed(c, op, http.StatusCreated, template)
}

// FindTemplates handles GET /api/v1/templates
// @Summary Find templates
// @Description Search the templates of the caller or of a team by title
// @Tags templates
// @Produce json
// @Param query query string false "Title search"
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Page size" default(10)
// @Param teamId query int false "Team ID"
// @Param type query string false "Template type" Enums(PUBLIC, PRIVATE)
// @Success 200 {object} service.TemplateListResponse "Successfully retrieved templates"
// @Failure 400 {object} ValidationErrorResponse "Invalid parameters"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates [get]
func (h *TemplateHandler) FindTemplates(c *gin.Context) {
	op := validation.OpFindTemplates
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	raw, ok := h.query(c, op, "teamId")
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.FindTemplates)
	if !ok {
		return
	}

	result, err := h.service.FindTemplates(c, userID, req)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	h.succeed(c, op, http.StatusOK, result)
}

// GetTemplate handles GET /api/v1/templates/:templateId
// @Summary Get template by ID
// @Description Get a template with its meta, recipients and direct link
// @Tags templates
// @Produce json
// @Param templateId path int true "Template ID"
// @Param teamId query int false "Team ID"
// @Success 200 {object} models.Template "Successfully retrieved template"
// @Failure 400 {object} ValidationErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{templateId} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	op := validation.OpGetTemplateByID
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	raw, ok := h.query(c, op, "templateId", "teamId")
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.GetTemplateByID)
	if !ok {
		return
	}

	template, err := h.service.GetTemplateByID(c, userID, req)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	h.succeed(c, op, http.StatusOK, template)
}

// DuplicateTemplate handles POST /api/v1/templates/:templateId/duplicate
// @Summary Duplicate a template
// @Description Copy a template with its meta and recipients
// @Tags templates
// @Accept json
// @Produce json
// @Param templateId path int true "Template ID"
// @Param payload body validation.DuplicateTemplateRequest false "Team scope"
// @Success 201 {object} models.Template "Successfully duplicated template"
// @Failure 400 {object} ValidationErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{templateId}/duplicate [post]
func (h *TemplateHandler) DuplicateTemplate(c *gin.Context) {
	op := validation.OpDuplicateTemplate
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	raw, ok := h.body(c, op)
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.DuplicateTemplate)
	if !ok {
		return
	}

	template, err := h.service.DuplicateTemplate(c, userID, req)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	h.succeed(c, op, http.StatusCreated, template)
}

// DeleteTemplate handles DELETE /api/v1/templates/:templateId
// @Summary Delete a template
// @Tags templates
// @Produce json
// @Param templateId path int true "Template ID"
// @Param teamId query int false "Team ID"
// @Success 204 "Template deleted"
// @Failure 400 {object} ValidationErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{templateId} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	op := validation.OpDeleteTemplate
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	raw, ok := h.query(c, op, "templateId", "teamId")
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.DeleteTemplate)
	if !ok {
		return
	}

	if err := h.service.DeleteTemplate(c, userID, req); err != nil {
		h.fail(c, op, err)
		return
	}

	h.metrics.RecordOperation(string(op), OutcomeSuccess)
	c.Status(http.StatusNoContent)
}

// UpdateTemplateSettings handles PATCH /api/v1/templates/:templateId/settings
// @Summary Update template settings
// @Description Update template attributes and, optionally, its sending configuration
// @Tags templates
// @Accept json
// @Produce json
// @Param templateId path int true "Template ID"
// @Param settings body validation.UpdateTemplateSettingsRequest true "Settings"
// @Success 200 {object} models.Template "Successfully updated template"
// @Failure 400 {object} ValidationErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{templateId}/settings [patch]
func (h *TemplateHandler) UpdateTemplateSettings(c *gin.Context) {
	op := validation.OpUpdateTemplateSettings
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	raw, ok := h.body(c, op)
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.UpdateTemplateSettings)
	if !ok {
		return
	}

	template, err := h.service.UpdateTemplateSettings(c, userID, req)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	h.succeed(c, op, http.StatusOK, template)
}

// SetSigningOrder handles PUT /api/v1/templates/:templateId/signing-order
// @Summary Set the signing order
// @Tags templates
// @Accept json
// @Produce json
// @Param templateId path int true "Template ID"
// @Param payload body validation.SetSigningOrderRequest true "Signing order"
// @Success 200 {object} models.Template "Successfully updated template"
// @Failure 400 {object} ValidationErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{templateId}/signing-order [put]
func (h *TemplateHandler) SetSigningOrder(c *gin.Context) {
	op := validation.OpSetSigningOrderForTemplate
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	raw, ok := h.body(c, op)
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.SetSigningOrderForTemplate)
	if !ok {
		return
	}

	template, err := h.service.SetSigningOrderForTemplate(c, userID, req)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	h.succeed(c, op, http.StatusOK, template)
}

// UpdateTypedSignatureSettings handles PUT /api/v1/templates/:templateId/typed-signature
// @Summary Enable or disable typed signatures
// @Tags templates
// @Accept json
// @Produce json
// @Param templateId path int true "Template ID"
// @Param payload body validation.UpdateTypedSignatureSettingsRequest true "Typed signature setting"
// @Success 200 {object} models.Template "Successfully updated template"
// @Failure 400 {object} ValidationErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{templateId}/typed-signature [put]
func (h *TemplateHandler) UpdateTypedSignatureSettings(c *gin.Context) {
	op := validation.OpUpdateTemplateTypedSignatureSettings
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	raw, ok := h.body(c, op)
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.UpdateTemplateTypedSignatureSettings)
	if !ok {
		return
	}

	template, err := h.service.UpdateTemplateTypedSignatureSettings(c, userID, req)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	h.succeed(c, op, http.StatusOK, template)
}

// MoveTemplateToTeam handles POST /api/v1/templates/:templateId/move
// @Summary Move a template into a team
// @Tags templates
// @Accept json
// @Produce json
// @Param templateId path int true "Template ID"
// @Param payload body validation.MoveTemplateToTeamRequest true "Target team"
// @Success 200 {object} models.Template "Successfully moved template"
// @Failure 400 {object} ValidationErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 409 {object} ErrorResponse "Template already in team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{templateId}/move [post]
func (h *TemplateHandler) MoveTemplateToTeam(c *gin.Context) {
	op := validation.OpMoveTemplateToTeam
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	raw, ok := h.body(c, op)
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.MoveTemplateToTeam)
	if !ok {
		return
	}

	template, err := h.service.MoveTemplateToTeam(c, userID, req)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	h.succeed(c, op, http.StatusOK, template)
}

// CreateDirectLink handles POST /api/v1/templates/:templateId/direct-link
// @Summary Create a template direct link
// @Description Enable the public link that lets a recipient start a document themselves
// @Tags direct-links
// @Accept json
// @Produce json
// @Param templateId path int true "Template ID"
// @Param payload body validation.CreateTemplateDirectLinkRequest false "Direct recipient"
// @Success 201 {object} DirectLinkResponse "Successfully created direct link"
// @Failure 400 {object} ValidationErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Template or recipient not found"
// @Failure 409 {object} ErrorResponse "Direct link already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{templateId}/direct-link [post]
func (h *TemplateHandler) CreateDirectLink(c *gin.Context) {
	op := validation.OpCreateTemplateDirectLink
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	raw, ok := h.body(c, op)
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.CreateTemplateDirectLink)
	if !ok {
		return
	}

	link, err := h.service.CreateTemplateDirectLink(c, userID, req)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	h.succeed(c, op, http.StatusCreated, h.directLinkResponse(link))
}

// DeleteDirectLink handles DELETE /api/v1/templates/:templateId/direct-link
// @Summary Delete a template direct link
// @Tags direct-links
// @Produce json
// @Param templateId path int true "Template ID"
// @Param teamId query int false "Team ID"
// @Success 204 "Direct link deleted"
// @Failure 400 {object} ValidationErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Direct link not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{templateId}/direct-link [delete]
func (h *TemplateHandler) DeleteDirectLink(c *gin.Context) {
	op := validation.OpDeleteTemplateDirectLink
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	raw, ok := h.query(c, op, "templateId", "teamId")
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.DeleteTemplateDirectLink)
	if !ok {
		return
	}

	if err := h.service.DeleteTemplateDirectLink(c, userID, req); err != nil {
		h.fail(c, op, err)
		return
	}

	h.metrics.RecordOperation(string(op), OutcomeSuccess)
	c.Status(http.StatusNoContent)
}

// ToggleDirectLink handles PATCH /api/v1/templates/:templateId/direct-link
// @Summary Enable or disable a template direct link
// @Tags direct-links
// @Accept json
// @Produce json
// @Param templateId path int true "Template ID"
// @Param payload body validation.ToggleTemplateDirectLinkRequest true "Enabled flag"
// @Success 200 {object} DirectLinkResponse "Successfully toggled direct link"
// @Failure 400 {object} ValidationErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Direct link not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{templateId}/direct-link [patch]
func (h *TemplateHandler) ToggleDirectLink(c *gin.Context) {
	op := validation.OpToggleTemplateDirectLink
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	raw, ok := h.body(c, op)
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.ToggleTemplateDirectLink)
	if !ok {
		return
	}

	link, err := h.service.ToggleTemplateDirectLink(c, userID, req)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	h.succeed(c, op, http.StatusOK, h.directLinkResponse(link))
}

// CreateDocument handles POST /api/v1/templates/:templateId/documents
// @Summary Create a document from a template
// @Description Instantiate a document, binding template recipients to real people
// @Tags documents
// @Accept json
// @Produce json
// @Param templateId path int true "Template ID"
// @Param payload body validation.CreateDocumentFromTemplateRequest true "Recipients"
// @Success 201 {object} models.Document "Successfully created document"
// @Failure 400 {object} ValidationErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Template or recipient not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{templateId}/documents [post]
func (h *TemplateHandler) CreateDocument(c *gin.Context) {
	op := validation.OpCreateDocumentFromTemplate
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	raw, ok := h.body(c, op)
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.CreateDocumentFromTemplate)
	if !ok {
		return
	}

	document, err := h.service.CreateDocumentFromTemplate(c, userID, req)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	h.succeed(c, op, http.StatusCreated, document)
}

// CreateDocumentFromDirectLink handles POST /api/v1/direct-templates/documents
// @Summary Create a document through a direct link
// @Description Public endpoint used by a recipient who opened a template direct link
// @Tags documents
// @Accept json
// @Produce json
// @Param payload body validation.CreateDocumentFromDirectTemplateRequest true "Signed field values"
// @Success 201 {object} models.Document "Successfully created document"
// @Failure 400 {object} ValidationErrorResponse "Invalid payload"
// @Failure 403 {object} ErrorResponse "Direct link disabled"
// @Failure 404 {object} ErrorResponse "Direct link not found"
// @Failure 409 {object} ErrorResponse "Template changed since it was opened"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /direct-templates/documents [post]
func (h *TemplateHandler) CreateDocumentFromDirectLink(c *gin.Context) {
	op := validation.OpCreateDocumentFromDirectTemplate
	raw, ok := h.body(c, op)
	if !ok {
		return
	}
	req, ok := decode(h, c, op, raw, h.validator.CreateDocumentFromDirectTemplate)
	if !ok {
		return
	}

	document, err := h.service.CreateDocumentFromDirectTemplate(c, req)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	h.succeed(c, op, http.StatusCreated, document)
}

func (h *TemplateHandler) userID(c *gin.Context) (int64, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return 0, false
	}
	return userID, true
}

// body reads the request payload and merges the templateId path parameter
// into it, so path and body are validated together.
func (h *TemplateHandler) body(c *gin.Context, op validation.Operation) ([]byte, bool) {
	var raw []byte
	if c.Request.Body != nil {
		var err error
		raw, err = io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxPayloadBytes))
		if err != nil {
			h.metrics.RecordOperation(string(op), OutcomeInvalid)
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
			return nil, false
		}
	}
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	return withPathParams(c, raw), true
}

func withPathParams(c *gin.Context, raw []byte) []byte {
	templateID := c.Param("templateId")
	if templateID == "" || !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return raw
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return raw
	}
	fields["templateId"] = paramValue(templateID)
	merged, err := json.Marshal(fields)
	if err != nil {
		return raw
	}
	return merged
}

func (h *TemplateHandler) query(c *gin.Context, op validation.Operation, numeric ...string) ([]byte, bool) {
	raw, err := queryPayload(c, numeric...)
	if err != nil {
		h.fail(c, op, err)
		return nil, false
	}
	return raw, true
}

// queryPayload builds an operation payload from path and query parameters.
// Values of the numeric keys are sent as numbers when they are JSON numbers,
// so the validator reports a type error for anything else.
func queryPayload(c *gin.Context, numeric ...string) ([]byte, error) {
	isNumeric := make(map[string]bool, len(numeric))
	for _, key := range numeric {
		isNumeric[key] = true
	}

	fields := make(map[string]json.RawMessage)
	for key, values := range c.Request.URL.Query() {
		if len(values) == 0 {
			continue
		}
		if isNumeric[key] {
			fields[key] = paramValue(values[0])
		} else {
			fields[key] = stringValue(values[0])
		}
	}
	for _, param := range c.Params {
		fields[param.Key] = paramValue(param.Value)
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query parameters: %w", err)
	}
	return raw, nil
}

// paramValue passes value through as a number only when it is already a JSON
// number. Forms like "01", "+1", ".5" or "NaN" become strings.
func paramValue(value string) json.RawMessage {
	if _, err := strconv.ParseFloat(value, 64); err == nil && json.Valid([]byte(value)) {
		return json.RawMessage(value)
	}
	return stringValue(value)
}

func stringValue(value string) json.RawMessage {
	encoded, _ := json.Marshal(value)
	return encoded
}

// decode validates raw with fn and writes the rejection response on failure.
func decode[T any](h *TemplateHandler, c *gin.Context, op validation.Operation, raw []byte, fn func([]byte) (*T, error)) (*T, bool) {
	req, err := fn(raw)
	if err != nil {
		h.rejectPayload(c, op, err)
		return nil, false
	}
	return req, true
}

func (h *TemplateHandler) rejectPayload(c *gin.Context, op validation.Operation, err error) {
	issues, ok := apperrors.AsValidationErrors(err)
	if !ok {
		h.fail(c, op, err)
		return
	}

	h.metrics.RecordOperation(string(op), OutcomeInvalid)
	for _, issue := range issues {
		h.metrics.RecordValidationFailure(string(op), issue.Field)
	}
	logger.WithContext(c).WithFields(map[string]interface{}{
		"operation": op,
		"issues":    len(issues),
	}).Debug("Payload rejected")

	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:     "validation failed",
		Operation: string(op),
		Issues:    issues,
	})
}

func (h *TemplateHandler) succeed(c *gin.Context, op validation.Operation, status int, body interface{}) {
	h.metrics.RecordOperation(string(op), OutcomeSuccess)
	c.JSON(status, body)
}

// fail maps service errors to HTTP responses
func (h *TemplateHandler) fail(c *gin.Context, op validation.Operation, err error) {
	h.metrics.RecordOperation(string(op), OutcomeFailed)

	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrTemplateModified),
		errors.Is(err, apperrors.ErrTemplateAlreadyInTeam):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrDirectLinkDisabled):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrInvalidPaginationParams):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		logger.WithContext(c).WithField("operation", op).Errorf("Operation failed: %v", err)
		c.JSON(status, gin.H{"error": "Failed to " + string(op), "details": err.Error()})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
