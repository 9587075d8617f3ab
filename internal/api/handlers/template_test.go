package handlers

import (
	"net/http"
	"testing"
	"time"

	"template-service-backend/internal/auth"
	"template-service-backend/internal/database/models"
	apperrors "template-service-backend/internal/errors"
	"template-service-backend/internal/metrics"
	"template-service-backend/internal/mocks"
	"template-service-backend/internal/service"
	"template-service-backend/internal/testutils"
	"template-service-backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const handlerTestUserID int64 = 21

// TemplateHandlerTestSuite defines the test suite for TemplateHandler
type TemplateHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTemplateService *mocks.MockTemplateServiceInterface
	metrics             *metrics.Metrics
	handler             *TemplateHandler
	httpSuite           *testutils.HTTPTestSuite
	authHeader          map[string]string
}

// SetupTest sets up the test suite
func (suite *TemplateHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTemplateService = mocks.NewMockTemplateServiceInterface(suite.ctrl)
	suite.metrics = metrics.New("handler_test")

	v, err := validation.New(nil)
	suite.Require().NoError(err)
	suite.handler = NewTemplateHandler(suite.mockTemplateService, v, suite.metrics, "https://sign.example.com/d/")

	authService, err := auth.NewAuthService("handler-test-secret")
	suite.Require().NoError(err)
	token, err := authService.GenerateJWT(&auth.UserProfile{ID: handlerTestUserID, Username: "jdoe", Email: "jdoe@example.com"})
	suite.Require().NoError(err)
	suite.authHeader = testutils.BearerHeader(token)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/direct-templates/documents", suite.handler.CreateDocumentFromDirectLink)
	v1.GET("/validate", suite.handler.ListOperations)
	v1.POST("/validate/:operation", suite.handler.ValidateOperation)

	templates := v1.Group("/templates", auth.NewAuthMiddleware(authService).RequireAuth())
	{
		templates.POST("", suite.handler.CreateTemplate)
		templates.GET("", suite.handler.FindTemplates)
		templates.GET("/:templateId", suite.handler.GetTemplate)
		templates.DELETE("/:templateId", suite.handler.DeleteTemplate)
		templates.POST("/:templateId/duplicate", suite.handler.DuplicateTemplate)
		templates.PATCH("/:templateId/settings", suite.handler.UpdateTemplateSettings)
		templates.PUT("/:templateId/signing-order", suite.handler.SetSigningOrder)
		templates.PUT("/:templateId/typed-signature", suite.handler.UpdateTypedSignatureSettings)
		templates.POST("/:templateId/move", suite.handler.MoveTemplateToTeam)
		templates.POST("/:templateId/direct-link", suite.handler.CreateDirectLink)
		templates.PATCH("/:templateId/direct-link", suite.handler.ToggleDirectLink)
		templates.DELETE("/:templateId/direct-link", suite.handler.DeleteDirectLink)
		templates.POST("/:templateId/documents", suite.handler.CreateDocument)
	}
}

// TearDownTest cleans up after each test
func (suite *TemplateHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TemplateHandlerTestSuite) operationCount(op validation.Operation, outcome string) float64 {
	return testutil.ToFloat64(suite.metrics.OperationsTotal.WithLabelValues(string(op), outcome))
}

func sampleTemplate(id int64) *models.Template {
	template := &models.Template{Title: "Lease", Type: models.TemplateTypePrivate, UserID: handlerTestUserID, TemplateDocumentDataID: "data-1"}
	template.ID = id
	return template
}

// TestCreateTemplate tests creating a template
func (suite *TemplateHandlerTestSuite) TestCreateTemplate() {
	suite.mockTemplateService.EXPECT().
		CreateTemplate(gomock.Any(), handlerTestUserID, &validation.CreateTemplateRequest{Title: "Lease", TemplateDocumentDataID: "data-1"}).
		Return(sampleTemplate(5), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/templates", map[string]interface{}{
		"title":                  "  Lease  ",
		"templateDocumentDataId": "data-1",
		"unknown":                true,
	}, suite.authHeader)

	var response models.Template
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), int64(5), response.ID)
	assert.Equal(suite.T(), 1.0, suite.operationCount(validation.OpCreateTemplate, OutcomeSuccess))
}

// TestCreateTemplateInvalid tests that every issue is reported and the service is not called
func (suite *TemplateHandlerTestSuite) TestCreateTemplateInvalid() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/templates", map[string]interface{}{
		"title":  "   ",
		"teamId": "5",
	}, suite.authHeader)

	var response ValidationErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	assert.Equal(suite.T(), "validation failed", response.Error)
	assert.Equal(suite.T(), string(validation.OpCreateTemplate), response.Operation)
	assert.Len(suite.T(), response.Issues, 3)
	assert.Equal(suite.T(), "Expected number, received string", response.Issues.For("teamId")[0].Message)
	assert.Equal(suite.T(), "Required", response.Issues.For("templateDocumentDataId")[0].Message)
	assert.Equal(suite.T(), "String must contain at least 1 character(s)", response.Issues.For("title")[0].Message)

	assert.Equal(suite.T(), 1.0, suite.operationCount(validation.OpCreateTemplate, OutcomeInvalid))
	assert.Equal(suite.T(), 1.0, testutil.ToFloat64(suite.metrics.ValidationFailuresTotal.WithLabelValues("createTemplate", "title")))
}

// TestCreateTemplateMalformedJSON tests a body that is not JSON
func (suite *TemplateHandlerTestSuite) TestCreateTemplateMalformedJSON() {
	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/templates", `{"title": `, suite.authHeader)

	var response ValidationErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	suite.Require().Len(response.Issues, 1)
	assert.Equal(suite.T(), "", response.Issues[0].Field)
	assert.Equal(suite.T(), "Invalid JSON payload", response.Issues[0].Message)
}

// TestCreateTemplateUnauthenticated tests that template routes require a token
func (suite *TemplateHandlerTestSuite) TestCreateTemplateUnauthenticated() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/templates", map[string]interface{}{"title": "Lease"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authorization header is required")
}

// TestFindTemplates tests that query parameters reach the service
func (suite *TemplateHandlerTestSuite) TestFindTemplates() {
	suite.mockTemplateService.EXPECT().
		FindTemplates(gomock.Any(), handlerTestUserID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ int64, req *validation.FindTemplatesQuery) (*service.TemplateListResponse, error) {
			assert.Equal(suite.T(), 2, *req.Page)
			assert.Equal(suite.T(), int64(5), *req.TeamID)
			assert.Equal(suite.T(), "lease", *req.Query)
			assert.Nil(suite.T(), req.PerPage)
			return &service.TemplateListResponse{Data: []models.Template{}, CurrentPage: 2, PerPage: 10}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/templates?page=2&teamId=5&query=lease", nil, suite.authHeader)

	var response service.TemplateListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 2, response.CurrentPage)
}

// TestFindTemplatesInvalidParams tests query parameters that fail validation
func (suite *TemplateHandlerTestSuite) TestFindTemplatesInvalidParams() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/templates?perPage=abc&teamId=team&type=SHARED", nil, suite.authHeader)

	var response ValidationErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	assert.Equal(suite.T(), "Expected number, received nan", response.Issues.For("perPage")[0].Message)
	assert.Equal(suite.T(), "Expected number, received string", response.Issues.For("teamId")[0].Message)
	assert.Equal(suite.T(), "Invalid enum value. Expected 'PUBLIC' | 'PRIVATE', received 'SHARED'", response.Issues.For("type")[0].Message)
}

// TestGetTemplate tests the path parameter and error mapping
func (suite *TemplateHandlerTestSuite) TestGetTemplate() {
	suite.mockTemplateService.EXPECT().
		GetTemplateByID(gomock.Any(), handlerTestUserID, &validation.GetTemplateByIDQuery{TemplateID: 8}).
		Return(nil, apperrors.ErrTemplateNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/templates/8", nil, suite.authHeader)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "template not found")

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/templates/abc", nil, suite.authHeader)
	var response ValidationErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	assert.Equal(suite.T(), "Expected number, received string", response.Issues.For("templateId")[0].Message)
}

// TestNonCanonicalTemplateID tests ids that parse as floats but are not JSON numbers
func (suite *TemplateHandlerTestSuite) TestNonCanonicalTemplateID() {
	for _, id := range []string{"01", "+1", ".5", "NaN", "Inf"} {
		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodDelete, "/api/v1/templates/"+id, nil, suite.authHeader)

		var response ValidationErrorResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
		suite.Require().Len(response.Issues, 1, id)
		assert.Equal(suite.T(), "templateId", response.Issues[0].Field, id)
		assert.Equal(suite.T(), "Expected number, received string", response.Issues[0].Message, id)
	}

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPatch, "/api/v1/templates/01/direct-link", map[string]interface{}{
		"enabled": true,
	}, suite.authHeader)

	var response ValidationErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	suite.Require().Len(response.Issues, 1)
	assert.Equal(suite.T(), "Expected number, received string", response.Issues.For("templateId")[0].Message)
}

// TestDeleteTemplate tests deleting a template
func (suite *TemplateHandlerTestSuite) TestDeleteTemplate() {
	teamID := int64(3)
	suite.mockTemplateService.EXPECT().
		DeleteTemplate(gomock.Any(), handlerTestUserID, &validation.DeleteTemplateRequest{TemplateID: 8, TeamID: &teamID}).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodDelete, "/api/v1/templates/8?teamId=3", nil, suite.authHeader)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestToggleDirectLink tests that the path template id is merged into the body
func (suite *TemplateHandlerTestSuite) TestToggleDirectLink() {
	suite.mockTemplateService.EXPECT().
		ToggleTemplateDirectLink(gomock.Any(), handlerTestUserID, &validation.ToggleTemplateDirectLinkRequest{TemplateID: 3, Enabled: true}).
		Return(&models.TemplateDirectLink{ID: 1, TemplateID: 3, Token: "abc123", Enabled: true}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPatch, "/api/v1/templates/3/direct-link", map[string]interface{}{
		"templateId": 99,
		"enabled":    true,
	}, suite.authHeader)

	var response DirectLinkResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.True(suite.T(), response.Enabled)
	assert.Equal(suite.T(), "https://sign.example.com/d/abc123", response.URL)
}

// TestCreateDirectLinkConflict tests the already exists mapping
func (suite *TemplateHandlerTestSuite) TestCreateDirectLinkConflict() {
	suite.mockTemplateService.EXPECT().
		CreateTemplateDirectLink(gomock.Any(), handlerTestUserID, gomock.Any()).
		Return(nil, apperrors.ErrTemplateDirectLinkExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/templates/3/direct-link", nil, suite.authHeader)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
	assert.Equal(suite.T(), 1.0, suite.operationCount(validation.OpCreateTemplateDirectLink, OutcomeFailed))
}

// TestMoveTemplateToTeam tests the required team id and same-team conflict
func (suite *TemplateHandlerTestSuite) TestMoveTemplateToTeam() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/templates/3/move", map[string]interface{}{}, suite.authHeader)
	var response ValidationErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	assert.Equal(suite.T(), "Required", response.Issues.For("teamId")[0].Message)

	suite.mockTemplateService.EXPECT().
		MoveTemplateToTeam(gomock.Any(), handlerTestUserID, &validation.MoveTemplateToTeamRequest{TemplateID: 3, TeamID: 4}).
		Return(nil, apperrors.ErrTemplateAlreadyInTeam).
		Times(1)

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/templates/3/move", map[string]interface{}{"teamId": 4}, suite.authHeader)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already belongs")
}

// TestUpdateTemplateSettings tests settings payload validation through the handler
func (suite *TemplateHandlerTestSuite) TestUpdateTemplateSettings() {
	suite.mockTemplateService.EXPECT().
		UpdateTemplateSettings(gomock.Any(), handlerTestUserID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ int64, req *validation.UpdateTemplateSettingsRequest) (*models.Template, error) {
			assert.Equal(suite.T(), int64(3), req.TemplateID)
			assert.True(suite.T(), req.Data.GlobalActionAuth.IsNull())
			assert.Equal(suite.T(), "en", req.Data.Language)
			return sampleTemplate(3), nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPatch, "/api/v1/templates/3/settings", map[string]interface{}{
		"data": map[string]interface{}{"globalActionAuth": nil},
	}, suite.authHeader)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestCreateDocument tests duplicate recipient emails
func (suite *TemplateHandlerTestSuite) TestCreateDocument() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/templates/3/documents", map[string]interface{}{
		"recipients": []map[string]interface{}{
			{"id": 1, "email": "a@example.com"},
			{"id": 2, "email": "a@example.com"},
		},
	}, suite.authHeader)

	var response ValidationErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	suite.Require().Len(response.Issues, 1)
	assert.Equal(suite.T(), "recipients", response.Issues[0].Field)
	assert.Equal(suite.T(), validation.RecipientsUniqueMessage, response.Issues[0].Message)
}

// TestCreateDocumentFromDirectLink tests the public endpoint and its error mapping
func (suite *TemplateHandlerTestSuite) TestCreateDocumentFromDirectLink() {
	body := map[string]interface{}{
		"directRecipientEmail": "visitor@example.com",
		"directTemplateToken":  "tok",
		"signedFieldValues":    []interface{}{},
		"templateUpdatedAt":    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}

	suite.mockTemplateService.EXPECT().
		CreateDocumentFromDirectTemplate(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrTemplateModified).
		Times(1)
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/direct-templates/documents", body)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "modified")

	suite.mockTemplateService.EXPECT().
		CreateDocumentFromDirectTemplate(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrDirectLinkDisabled).
		Times(1)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/direct-templates/documents", body)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "disabled")

	suite.mockTemplateService.EXPECT().
		CreateDocumentFromDirectTemplate(gomock.Any(), gomock.Any()).
		Return(&models.Document{Status: models.DocumentStatusPending}, nil).
		Times(1)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/direct-templates/documents", body)
	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestServiceErrorIsInternal tests the fallback mapping
func (suite *TemplateHandlerTestSuite) TestServiceErrorIsInternal() {
	suite.mockTemplateService.EXPECT().
		DuplicateTemplate(gomock.Any(), handlerTestUserID, &validation.DuplicateTemplateRequest{TemplateID: 3}).
		Return(nil, assert.AnError).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/templates/3/duplicate", nil, suite.authHeader)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to duplicateTemplate")
}

// TestValidateOperation tests the dry run endpoint
func (suite *TemplateHandlerTestSuite) TestValidateOperation() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/validate/createTemplate", map[string]interface{}{
		"title":                  " Lease ",
		"templateDocumentDataId": "data-1",
	})
	var valid map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &valid)
	assert.Equal(suite.T(), true, valid["valid"])
	assert.Equal(suite.T(), "Lease", valid["payload"].(map[string]interface{})["title"])

	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/validate/setSigningOrderForTemplate", map[string]interface{}{
		"templateId":   1,
		"signingOrder": "RANDOM",
	})
	var invalid ValidationErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &invalid)
	assert.Equal(suite.T(), "Invalid enum value. Expected 'PARALLEL' | 'SEQUENTIAL', received 'RANDOM'", invalid.Issues.For("signingOrder")[0].Message)

	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/validate/launchRocket", map[string]interface{}{})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "unknown template operation")
}

// TestListOperations tests listing the known operations
func (suite *TemplateHandlerTestSuite) TestListOperations() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/validate", nil)

	var response OperationsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Operations, 14)
	assert.Contains(suite.T(), response.Operations, validation.OpGetTemplateByID)
}

// TestTemplateHandlerTestSuite runs the test suite
func TestTemplateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateHandlerTestSuite))
}

func init() {
	gin.SetMode(gin.TestMode)
}
