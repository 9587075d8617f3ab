package handlers

import (
	"net/http"
	"testing"

	"template-service-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// HealthHandlerTestSuite covers health checks without a database
type HealthHandlerTestSuite struct {
	suite.Suite
	httpSuite *testutils.HTTPTestSuite
}

func (suite *HealthHandlerTestSuite) SetupTest() {
	handler := NewHealthHandler(nil)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/health", handler.Health)
	suite.httpSuite.Router.GET("/health/ready", handler.Ready)
	suite.httpSuite.Router.GET("/health/live", handler.Live)
}

func (suite *HealthHandlerTestSuite) TestHealthWithoutDatabase() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var response HealthResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusServiceUnavailable, &response)
	assert.Equal(suite.T(), "unhealthy", response.Status)
	assert.Equal(suite.T(), Version, response.Version)
	assert.Equal(suite.T(), "error: no database connection", response.Services["database"])
}

func (suite *HealthHandlerTestSuite) TestReadyWithoutDatabase() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	var response ReadinessResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusServiceUnavailable, &response)
	assert.False(suite.T(), response.Ready)
	assert.Equal(suite.T(), "not ready: no database connection", response.Checks["database"])
	assert.Equal(suite.T(), "unknown", response.Checks["schema"])
}

func (suite *HealthHandlerTestSuite) TestLive() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
