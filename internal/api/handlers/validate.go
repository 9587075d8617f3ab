package handlers

import (
	"net/http"

	"template-service-backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// ValidationResponse is returned by a successful dry run
type ValidationResponse struct {
	Operation string      `json:"operation" example:"createTemplate"`
	Valid     bool        `json:"valid" example:"true"`
	Payload   interface{} `json:"payload"`
}

// OperationsResponse lists the operations that can be validated
type OperationsResponse struct {
	Operations []validation.Operation `json:"operations"`
}

// ListOperations handles GET /api/v1/validate
// @Summary List validatable operations
// @Tags validation
// @Produce json
// @Success 200 {object} OperationsResponse "Known operations"
// @Router /validate [get]
func (h *TemplateHandler) ListOperations(c *gin.Context) {
	c.JSON(http.StatusOK, OperationsResponse{Operations: validation.Operations()})
}

// ValidateOperation handles POST /api/v1/validate/:operation
// @Summary Validate an operation payload
// @Description Run the validator for one operation without executing it. The normalized payload is returned on success.
// @Tags validation
// @Accept json
// @Produce json
// @Param operation path string true "Operation name" example(createTemplate)
// @Param payload body object true "Operation payload"
// @Success 200 {object} ValidationResponse "Payload is valid"
// @Failure 400 {object} ValidationErrorResponse "Payload is invalid"
// @Failure 404 {object} ErrorResponse "Unknown operation"
// @Router /validate/{operation} [post]
func (h *TemplateHandler) ValidateOperation(c *gin.Context) {
	op, err := validation.ParseOperation(c.Param("operation"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	raw, ok := h.body(c, op)
	if !ok {
		return
	}

	payload, err := h.validator.Validate(op, raw)
	if err != nil {
		h.rejectPayload(c, op, err)
		return
	}

	c.JSON(http.StatusOK, ValidationResponse{
		Operation: string(op),
		Valid:     true,
		Payload:   payload,
	})
}
