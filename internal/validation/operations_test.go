package validation_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"template-service-backend/internal/database/models"
	apperrors "template-service-backend/internal/errors"
	"template-service-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// OperationsTestSuite defines the test suite for the template operation validator
type OperationsTestSuite struct {
	suite.Suite
	validator *validation.Validator
}

// SetupTest sets up the test suite
func (suite *OperationsTestSuite) SetupTest() {
	v, err := validation.New(validator.New())
	suite.Require().NoError(err)
	suite.validator = v
}

func (suite *OperationsTestSuite) issues(err error) apperrors.ValidationErrors {
	suite.Require().Error(err)
	issues, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok, "expected validation errors, got %v", err)
	return issues
}

func paths(issues apperrors.ValidationErrors) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.Field
	}
	return out
}

const validMeta = `"subject":"Please sign","message":"Thanks","timezone":"Europe/Berlin","dateFormat":"yyyy-MM-dd","distributionMethod":"EMAIL"`

// TestCreateTemplate tests validation of new templates
func (suite *OperationsTestSuite) TestCreateTemplate() {
	suite.Run("trims title and strips unknown keys", func() {
		req, err := suite.validator.CreateTemplate([]byte(`{"title":"  Onboarding  ","templateDocumentDataId":"data_1","unknown":true}`))
		suite.Require().NoError(err)
		suite.Equal("Onboarding", req.Title)
		suite.Equal("data_1", req.TemplateDocumentDataID)
		suite.Nil(req.TeamID)
	})

	suite.Run("reports every missing field", func() {
		_, err := suite.validator.CreateTemplate([]byte(`{}`))
		issues := suite.issues(err)
		suite.Equal([]string{"title", "templateDocumentDataId"}, paths(issues))
		suite.Equal("Required", issues[0].Message)
		suite.Equal("Required", issues[1].Message)
	})

	suite.Run("title empty after trim", func() {
		_, err := suite.validator.CreateTemplate([]byte(`{"title":"   ","templateDocumentDataId":"data_1"}`))
		issues := suite.issues(err)
		suite.Require().Len(issues, 1)
		suite.Equal("title", issues[0].Field)
		suite.Equal("String must contain at least 1 character(s)", issues[0].Message)
	})

	suite.Run("null on a non-nullable field is a type error", func() {
		_, err := suite.validator.CreateTemplate([]byte(`{"title":"a","templateDocumentDataId":"d","teamId":null}`))
		issues := suite.issues(err)
		suite.Require().Len(issues, 1)
		suite.Equal("teamId", issues[0].Field)
		suite.Equal("Expected number, received null", issues[0].Message)
	})

	suite.Run("ids must be integers", func() {
		_, err := suite.validator.CreateTemplate([]byte(`{"title":"a","templateDocumentDataId":"d","teamId":1.5}`))
		issues := suite.issues(err)
		suite.Require().Len(issues, 1)
		suite.Equal("Expected integer, received float", issues[0].Message)
	})

	suite.Run("numeric strings are not coerced outside search params", func() {
		_, err := suite.validator.CreateTemplate([]byte(`{"title":"a","templateDocumentDataId":"d","teamId":"3"}`))
		issues := suite.issues(err)
		suite.Require().Len(issues, 1)
		suite.Equal("Expected number, received string", issues[0].Message)
	})
}

// TestMalformedPayloads tests payloads that are not JSON objects
func (suite *OperationsTestSuite) TestMalformedPayloads() {
	testCases := []struct {
		name    string
		payload string
		message string
	}{
		{name: "Invalid JSON", payload: `{"title":`, message: "Invalid JSON payload"},
		{name: "Array", payload: `[]`, message: "Expected object, received array"},
		{name: "String", payload: `"template"`, message: "Expected object, received string"},
		{name: "Null", payload: `null`, message: "Expected object, received null"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			_, err := suite.validator.DeleteTemplate([]byte(tc.payload))
			require.Error(t, err)
			issues, ok := apperrors.AsValidationErrors(err)
			require.True(t, ok)
			require.Len(t, issues, 1)
			assert.Equal(t, "", issues[0].Field)
			assert.Equal(t, tc.message, issues[0].Message)
		})
	}
}

// TestCreateDocumentFromTemplate tests recipient validation
func (suite *OperationsTestSuite) TestCreateDocumentFromTemplate() {
	suite.Run("distinct recipients", func() {
		req, err := suite.validator.CreateDocumentFromTemplate([]byte(`{
			"templateId": 7,
			"recipients": [
				{"id": 1, "email": "alice@example.com", "name": "Alice"},
				{"id": 2, "email": "bob@example.com"}
			],
			"distributeDocument": true
		}`))
		suite.Require().NoError(err)
		suite.Equal(int64(7), req.TemplateID)
		suite.Len(req.Recipients, 2)
		suite.Require().NotNil(req.Recipients[0].Name)
		suite.Equal("Alice", *req.Recipients[0].Name)
		suite.Nil(req.Recipients[1].Name)
		suite.Require().NotNil(req.DistributeDocument)
		suite.True(*req.DistributeDocument)
	})

	suite.Run("duplicate emails are a single aggregated issue", func() {
		_, err := suite.validator.CreateDocumentFromTemplate([]byte(`{
			"templateId": 7,
			"recipients": [
				{"id": 1, "email": "alice@example.com"},
				{"id": 2, "email": "alice@example.com"},
				{"id": 3, "email": "alice@example.com"}
			]
		}`))
		issues := suite.issues(err)
		suite.Require().Len(issues, 1)
		suite.Equal("recipients", issues[0].Field)
		suite.Equal(validation.RecipientsUniqueMessage, issues[0].Message)
	})

	suite.Run("uniqueness waits for per-recipient checks", func() {
		_, err := suite.validator.CreateDocumentFromTemplate([]byte(`{
			"templateId": 7,
			"recipients": [
				{"id": 1, "email": "alice@example.com"},
				{"id": 2, "email": "alice@example.com"},
				{"id": 3, "email": "not-an-email"}
			]
		}`))
		issues := suite.issues(err)
		suite.Require().Len(issues, 1)
		suite.Equal("recipients.2.email", issues[0].Field)
		suite.Equal("Invalid email", issues[0].Message)
	})

	suite.Run("malformed recipient entries keep their index", func() {
		_, err := suite.validator.CreateDocumentFromTemplate([]byte(`{
			"templateId": 7,
			"recipients": [
				{"id": 1, "email": "alice@example.com"},
				{"email": 5}
			]
		}`))
		issues := suite.issues(err)
		suite.ElementsMatch([]string{"recipients.1.id", "recipients.1.email"}, paths(issues))
	})

	suite.Run("missing template id", func() {
		_, err := suite.validator.CreateDocumentFromTemplate([]byte(`{"recipients": []}`))
		issues := suite.issues(err)
		suite.Equal([]string{"templateId"}, paths(issues))
	})
}

// TestCreateDocumentFromDirectTemplate tests direct link submissions
func (suite *OperationsTestSuite) TestCreateDocumentFromDirectTemplate() {
	suite.Run("valid submission", func() {
		req, err := suite.validator.CreateDocumentFromDirectTemplate([]byte(`{
			"directRecipientEmail": "signer@example.com",
			"directTemplateToken": "tok_123",
			"signedFieldValues": [
				{"token": "tok_123", "fieldId": 3, "value": "  John  ", "authOptions": {"type": "TWO_FACTOR_AUTH", "token": "123456"}}
			],
			"templateUpdatedAt": "2024-05-01T10:00:00Z"
		}`))
		suite.Require().NoError(err)
		suite.Equal("tok_123", req.DirectTemplateToken)
		suite.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), req.TemplateUpdatedAt.UTC())
		suite.Require().Len(req.SignedFieldValues, 1)
		suite.Equal("John", req.SignedFieldValues[0].Value)
		suite.Equal(models.RecipientActionAuthTwoFactorAuth, req.SignedFieldValues[0].AuthOptions.Type)
	})

	suite.Run("field-level failures are all reported", func() {
		_, err := suite.validator.CreateDocumentFromDirectTemplate([]byte(`{
			"directRecipientEmail": "nope",
			"directTemplateToken": "",
			"signedFieldValues": [{"token": "t", "fieldId": 0, "value": "x"}],
			"templateUpdatedAt": "yesterday"
		}`))
		issues := suite.issues(err)
		suite.ElementsMatch(
			[]string{"templateUpdatedAt", "directRecipientEmail", "directTemplateToken", "signedFieldValues.0.fieldId"},
			paths(issues),
		)
		suite.Equal("Invalid date", issues.For("templateUpdatedAt")[0].Message)
		suite.Equal("Invalid email", issues.For("directRecipientEmail")[0].Message)
	})

	suite.Run("passkey auth requires its proof", func() {
		_, err := suite.validator.CreateDocumentFromDirectTemplate([]byte(`{
			"directRecipientEmail": "signer@example.com",
			"directTemplateToken": "tok",
			"signedFieldValues": [{"token": "t", "fieldId": 1, "value": "x", "authOptions": {"type": "PASSKEY"}}],
			"templateUpdatedAt": "2024-05-01T10:00:00Z"
		}`))
		issues := suite.issues(err)
		suite.ElementsMatch([]string{
			"signedFieldValues.0.authOptions.authenticationResponse",
			"signedFieldValues.0.authOptions.tokenReference",
		}, paths(issues))
	})

	suite.Run("unknown auth type", func() {
		_, err := suite.validator.CreateDocumentFromDirectTemplate([]byte(`{
			"directRecipientEmail": "signer@example.com",
			"directTemplateToken": "tok",
			"signedFieldValues": [{"token": "t", "fieldId": 1, "value": "x", "authOptions": {"type": "SMS"}}],
			"templateUpdatedAt": "2024-05-01T10:00:00Z"
		}`))
		issues := suite.issues(err)
		suite.Require().Len(issues, 1)
		suite.Equal("signedFieldValues.0.authOptions.type", issues[0].Field)
		suite.Equal(
			"Invalid enum value. Expected 'ACCOUNT' | 'PASSKEY' | 'TWO_FACTOR_AUTH' | 'EXPLICIT_NONE', received 'SMS'",
			issues[0].Message,
		)
	})
}

// TestDirectLinkOperations tests direct link create, delete and toggle
func (suite *OperationsTestSuite) TestDirectLinkOperations() {
	suite.Run("recipient id is optional", func() {
		req, err := suite.validator.CreateTemplateDirectLink([]byte(`{"templateId": 1}`))
		suite.Require().NoError(err)
		suite.Nil(req.DirectRecipientID)
	})

	suite.Run("recipient id zero fails", func() {
		_, err := suite.validator.CreateTemplateDirectLink([]byte(`{"templateId": 1, "directRecipientId": 0}`))
		issues := suite.issues(err)
		suite.Require().Len(issues, 1)
		suite.Equal("directRecipientId", issues[0].Field)
		suite.Equal("Number must be greater than or equal to 1", issues[0].Message)
	})

	suite.Run("template id below one fails", func() {
		_, err := suite.validator.DeleteTemplateDirectLink([]byte(`{"templateId": -4}`))
		issues := suite.issues(err)
		suite.Equal([]string{"templateId"}, paths(issues))
	})

	suite.Run("toggle needs a boolean", func() {
		_, err := suite.validator.ToggleTemplateDirectLink([]byte(`{"templateId": 1, "enabled": "yes"}`))
		issues := suite.issues(err)
		suite.Require().Len(issues, 1)
		suite.Equal("enabled", issues[0].Field)
		suite.Equal("Expected boolean, received string", issues[0].Message)
	})

	suite.Run("toggle off", func() {
		req, err := suite.validator.ToggleTemplateDirectLink([]byte(`{"templateId": 1, "enabled": false}`))
		suite.Require().NoError(err)
		suite.False(req.Enabled)
	})
}

// TestMoveTemplateToTeam tests that the team is mandatory for moves
func (suite *OperationsTestSuite) TestMoveTemplateToTeam() {
	_, err := suite.validator.MoveTemplateToTeam([]byte(`{"templateId": 3}`))
	issues := suite.issues(err)
	suite.Require().Len(issues, 1)
	suite.Equal("teamId", issues[0].Field)
	suite.Equal("Required", issues[0].Message)

	req, err := suite.validator.MoveTemplateToTeam([]byte(`{"templateId": 3, "teamId": 9}`))
	suite.Require().NoError(err)
	suite.Equal(int64(9), req.TeamID)

	// the same payload without a team is fine for other operations
	_, err = suite.validator.DuplicateTemplate([]byte(`{"templateId": 3}`))
	suite.NoError(err)
}

// TestSetSigningOrder tests signing order enum membership
func (suite *OperationsTestSuite) TestSetSigningOrder() {
	req, err := suite.validator.SetSigningOrderForTemplate([]byte(`{"templateId": 1, "signingOrder": "SEQUENTIAL"}`))
	suite.Require().NoError(err)
	suite.Equal(models.SigningOrderSequential, req.SigningOrder)

	_, err = suite.validator.SetSigningOrderForTemplate([]byte(`{"templateId": 1, "signingOrder": "sequential"}`))
	issues := suite.issues(err)
	suite.Require().Len(issues, 1)
	suite.Equal("Invalid enum value. Expected 'PARALLEL' | 'SEQUENTIAL', received 'sequential'", issues[0].Message)
}

// TestFindTemplates tests search parameter coercion
func (suite *OperationsTestSuite) TestFindTemplates() {
	suite.Run("numeric strings are coerced", func() {
		q, err := suite.validator.FindTemplates([]byte(`{"query":"nda","page":"2","perPage":20,"type":"PUBLIC"}`))
		suite.Require().NoError(err)
		suite.Require().NotNil(q.Page)
		suite.Equal(2, *q.Page)
		suite.Equal(20, *q.PerPage)
		suite.Equal(models.TemplateTypePublic, *q.Type)
	})

	suite.Run("empty query", func() {
		q, err := suite.validator.FindTemplates([]byte(`{}`))
		suite.Require().NoError(err)
		suite.Nil(q.Page)
		suite.Nil(q.TeamID)
	})

	suite.Run("invalid pagination", func() {
		_, err := suite.validator.FindTemplates([]byte(`{"page":"abc","perPage":"0","type":"SHARED"}`))
		issues := suite.issues(err)
		suite.Equal("Expected number, received nan", issues.For("page")[0].Message)
		suite.Equal("Number must be greater than or equal to 1", issues.For("perPage")[0].Message)
		suite.Contains(issues.For("type")[0].Message, "received 'SHARED'")
	})
}

// TestGetTemplateByID tests single template lookups
func (suite *OperationsTestSuite) TestGetTemplateByID() {
	q, err := suite.validator.GetTemplateByID([]byte(`{"templateId": 12, "teamId": 4}`))
	suite.Require().NoError(err)
	suite.Equal(int64(12), q.TemplateID)
	suite.Equal(int64(4), *q.TeamID)

	_, err = suite.validator.GetTemplateByID([]byte(`{"templateId": 0}`))
	suite.Equal([]string{"templateId"}, paths(suite.issues(err)))
}

// TestUpdateTypedSignatureSettings tests the typed signature toggle
func (suite *OperationsTestSuite) TestUpdateTypedSignatureSettings() {
	req, err := suite.validator.UpdateTemplateTypedSignatureSettings([]byte(`{"templateId": 1, "typedSignatureEnabled": true}`))
	suite.Require().NoError(err)
	suite.True(req.TypedSignatureEnabled)

	_, err = suite.validator.UpdateTemplateTypedSignatureSettings([]byte(`{"templateId": 1, "typedSignatureEnabled": 1}`))
	issues := suite.issues(err)
	suite.Equal("Expected boolean, received number", issues[0].Message)
}

// TestUpdateTemplateSettingsPublicText tests the public title and description bounds
func (suite *OperationsTestSuite) TestUpdateTemplateSettingsPublicText() {
	testCases := []struct {
		name        string
		publicTitle string
		expectError bool
		message     string
	}{
		{name: "Exactly fifty characters", publicTitle: strings.Repeat("a", 50)},
		{name: "Fifty characters with padding", publicTitle: "  " + strings.Repeat("a", 50) + "  "},
		{name: "Fifty multi-byte characters", publicTitle: strings.Repeat("é", 50)},
		{name: "Fifty-one characters", publicTitle: strings.Repeat("a", 51), expectError: true, message: "String must contain at most 50 character(s)"},
		{name: "Blank", publicTitle: "   ", expectError: true, message: "String must contain at least 1 character(s)"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			payload, err := json.Marshal(map[string]any{
				"templateId": 1,
				"data":       map[string]any{"publicTitle": tc.publicTitle},
			})
			require.NoError(t, err)

			req, err := suite.validator.UpdateTemplateSettings(payload)
			if tc.expectError {
				require.Error(t, err)
				issues, _ := apperrors.AsValidationErrors(err)
				require.Len(t, issues, 1)
				assert.Equal(t, "data.publicTitle", issues[0].Field)
				assert.Equal(t, tc.message, issues[0].Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tc.publicTitle), *req.Data.PublicTitle)
		})
	}

	_, err := suite.validator.UpdateTemplateSettings([]byte(`{"templateId": 1, "data": {"publicDescription": "` + strings.Repeat("d", 257) + `"}}`))
	issues := suite.issues(err)
	suite.Equal("String must contain at most 256 character(s)", issues.For("data.publicDescription")[0].Message)
}

// TestUpdateTemplateSettingsRedirectURL tests redirect URL safety
func (suite *OperationsTestSuite) TestUpdateTemplateSettingsRedirectURL() {
	testCases := []struct {
		name        string
		redirect    string
		expectError bool
	}{
		{name: "Absent", redirect: ""},
		{name: "Empty", redirect: `,"redirectUrl":""`},
		{name: "HTTPS", redirect: `,"redirectUrl":"https://example.com"`},
		{name: "Uppercase scheme", redirect: `,"redirectUrl":"HTTP://example.com/done"`},
		{name: "Javascript", redirect: `,"redirectUrl":"javascript:alert(1)"`, expectError: true},
		{name: "Relative path", redirect: `,"redirectUrl":"/documents/done"`, expectError: true},
		{name: "Missing host", redirect: `,"redirectUrl":"https://"`, expectError: true},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			payload := `{"templateId":1,"data":{},"meta":{` + validMeta + tc.redirect + `}}`
			_, err := suite.validator.UpdateTemplateSettings([]byte(payload))
			if !tc.expectError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			issues, _ := apperrors.AsValidationErrors(err)
			require.Len(t, issues, 1)
			assert.Equal(t, "meta.redirectUrl", issues[0].Field)
			assert.Equal(t, validation.RedirectURLMessage, issues[0].Message)
		})
	}
}

// TestUpdateTemplateSettingsLanguage tests language defaults and the closed meta set
func (suite *OperationsTestSuite) TestUpdateTemplateSettingsLanguage() {
	suite.Run("defaults to en", func() {
		req, err := suite.validator.UpdateTemplateSettings([]byte(`{"templateId":1,"data":{}}`))
		suite.Require().NoError(err)
		suite.Equal("en", req.Data.Language)
		suite.Nil(req.Meta)
	})

	suite.Run("supported code passes through", func() {
		req, err := suite.validator.UpdateTemplateSettings([]byte(`{"templateId":1,"data":{"language":"fr"}}`))
		suite.Require().NoError(err)
		suite.Equal("fr", req.Data.Language)
	})

	suite.Run("data language accepts any string", func() {
		req, err := suite.validator.UpdateTemplateSettings([]byte(`{"templateId":1,"data":{"language":"pt-BR"}}`))
		suite.Require().NoError(err)
		suite.Equal("pt-BR", req.Data.Language)
	})

	suite.Run("meta language is a closed set", func() {
		_, err := suite.validator.UpdateTemplateSettings([]byte(`{"templateId":1,"data":{},"meta":{` + validMeta + `,"language":"pt"}}`))
		issues := suite.issues(err)
		suite.Require().Len(issues, 1)
		suite.Equal("meta.language", issues[0].Field)
		suite.Equal("Invalid enum value. Expected 'de' | 'en' | 'fr' | 'es', received 'pt'", issues[0].Message)
	})
}

// TestUpdateTemplateSettingsData tests the nullable and enum members of the data block
func (suite *OperationsTestSuite) TestUpdateTemplateSettingsData() {
	suite.Run("null clears auth and external id", func() {
		req, err := suite.validator.UpdateTemplateSettings([]byte(`{"templateId":1,"data":{"externalId":null,"globalAccessAuth":null,"globalActionAuth":"PASSKEY"}}`))
		suite.Require().NoError(err)
		suite.True(req.Data.ExternalID.IsNull())
		suite.True(req.Data.GlobalAccessAuth.IsNull())
		action, ok := req.Data.GlobalActionAuth.Get()
		suite.True(ok)
		suite.Equal(models.DocumentActionAuthPasskey, action)
	})

	suite.Run("absent nullable fields are unset", func() {
		req, err := suite.validator.UpdateTemplateSettings([]byte(`{"templateId":1,"data":{"title":"Lease"}}`))
		suite.Require().NoError(err)
		suite.False(req.Data.ExternalID.IsSet())
		suite.False(req.Data.GlobalAccessAuth.IsSet())
		suite.Equal("Lease", *req.Data.Title)
	})

	suite.Run("unknown auth values", func() {
		_, err := suite.validator.UpdateTemplateSettings([]byte(`{"templateId":1,"data":{"globalAccessAuth":"PASSWORD","globalActionAuth":"PIN","type":"SHARED"}}`))
		issues := suite.issues(err)
		suite.Equal("Invalid enum value. Expected 'ACCOUNT', received 'PASSWORD'", issues.For("data.globalAccessAuth")[0].Message)
		suite.Equal("Invalid enum value. Expected 'ACCOUNT' | 'PASSKEY' | 'TWO_FACTOR_AUTH', received 'PIN'", issues.For("data.globalActionAuth")[0].Message)
		suite.Equal("Invalid enum value. Expected 'PUBLIC' | 'PRIVATE', received 'SHARED'", issues.For("data.type")[0].Message)
	})

	suite.Run("data block is required", func() {
		_, err := suite.validator.UpdateTemplateSettings([]byte(`{"templateId":1}`))
		issues := suite.issues(err)
		suite.Equal([]string{"data"}, paths(issues))
	})

	suite.Run("email settings default to enabled", func() {
		req, err := suite.validator.UpdateTemplateSettings([]byte(`{"templateId":1,"data":{},"meta":{` + validMeta + `}}`))
		suite.Require().NoError(err)
		suite.Require().NotNil(req.Meta)
		suite.Equal(models.DefaultDocumentEmailSettings(), req.Meta.EmailSettings)
	})

	suite.Run("email settings keep explicit values", func() {
		req, err := suite.validator.UpdateTemplateSettings([]byte(`{"templateId":1,"data":{},"meta":{` + validMeta + `,"emailSettings":{"documentDeleted":false}}}`))
		suite.Require().NoError(err)
		expected := models.DefaultDocumentEmailSettings()
		expected.DocumentDeleted = false
		suite.Equal(expected, req.Meta.EmailSettings)
	})

	suite.Run("meta fields are required once meta is sent", func() {
		_, err := suite.validator.UpdateTemplateSettings([]byte(`{"templateId":1,"data":{},"meta":{}}`))
		issues := suite.issues(err)
		suite.ElementsMatch([]string{
			"meta.subject", "meta.message", "meta.timezone", "meta.dateFormat", "meta.distributionMethod",
		}, paths(issues))
	})
}

// TestCollectsAllIssues tests that validation never stops at the first problem
func (suite *OperationsTestSuite) TestCollectsAllIssues() {
	payload := `{
		"templateId": 0,
		"teamId": 0,
		"data": {"publicTitle": "` + strings.Repeat("x", 60) + `"},
		"meta": {"subject":"s","message":"m","timezone":"UTC","dateFormat":"d","distributionMethod":"FAX","redirectUrl":"ftp://files"}
	}`
	_, err := suite.validator.UpdateTemplateSettings([]byte(payload))
	issues := suite.issues(err)
	suite.ElementsMatch([]string{
		"templateId", "teamId", "data.publicTitle", "meta.distributionMethod", "meta.redirectUrl",
	}, paths(issues))
}

// TestRoundTrip tests that validated values survive re-encoding unchanged
func (suite *OperationsTestSuite) TestRoundTrip() {
	testCases := []struct {
		op      validation.Operation
		payload string
	}{
		{validation.OpCreateTemplate, `{"title":"  NDA ","teamId":3,"templateDocumentDataId":"d1"}`},
		{validation.OpCreateDocumentFromTemplate, `{"templateId":2,"recipients":[{"id":1,"email":"a@example.com"}],"distributeDocument":false}`},
		{validation.OpCreateDocumentFromDirectTemplate, `{"directRecipientEmail":"a@example.com","directTemplateToken":"t","signedFieldValues":[{"token":"t","fieldId":1,"value":" v ","authOptions":{"type":"PASSKEY","tokenReference":"r","authenticationResponse":{"id": "cred"}}}],"templateUpdatedAt":"2024-01-02T03:04:05.123Z"}`},
		{validation.OpUpdateTemplateSettings, `{"templateId":1,"data":{"externalId":null,"globalActionAuth":"ACCOUNT","publicTitle":" Hi "},"meta":{` + validMeta + `,"redirectUrl":"","emailSettings":{"recipientSigned":false}}}`},
		{validation.OpFindTemplates, `{"page":"3","type":"PRIVATE"}`},
		{validation.OpToggleTemplateDirectLink, `{"templateId":1,"enabled":true}`},
	}

	for _, tc := range testCases {
		suite.T().Run(string(tc.op), func(t *testing.T) {
			first, err := suite.validator.Validate(tc.op, []byte(tc.payload))
			require.NoError(t, err)

			encoded, err := json.Marshal(first)
			require.NoError(t, err)

			second, err := suite.validator.Validate(tc.op, encoded)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

// TestValidateDispatch tests the operation dispatcher
func (suite *OperationsTestSuite) TestValidateDispatch() {
	result, err := suite.validator.Validate(validation.OpDeleteTemplate, []byte(`{"templateId": 5}`))
	suite.Require().NoError(err)
	req, ok := result.(*validation.DeleteTemplateRequest)
	suite.Require().True(ok)
	suite.Equal(int64(5), req.TemplateID)

	_, err = suite.validator.Validate(validation.Operation("renameTemplate"), []byte(`{}`))
	suite.ErrorIs(err, apperrors.ErrUnknownOperation)

	op, err := validation.ParseOperation("moveTemplateToTeam")
	suite.NoError(err)
	suite.Equal(validation.OpMoveTemplateToTeam, op)

	_, err = validation.ParseOperation("")
	suite.ErrorIs(err, apperrors.ErrUnknownOperation)

	suite.Len(validation.Operations(), 14)
}

// TestConcurrentUse tests that one validator can serve many goroutines
func (suite *OperationsTestSuite) TestConcurrentUse() {
	done := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func() {
			_, err := suite.validator.CreateTemplate([]byte(`{"title":"t","templateDocumentDataId":"d"}`))
			done <- err
		}()
	}
	for i := 0; i < 20; i++ {
		suite.NoError(<-done)
	}
}

// TestOperationsTestSuite runs the test suite
func TestOperationsTestSuite(t *testing.T) {
	suite.Run(t, new(OperationsTestSuite))
}
