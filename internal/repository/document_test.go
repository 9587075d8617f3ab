//go:build integration
// +build integration

package repository

import (
	"testing"

	"template-service-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DocumentRepositoryTestSuite tests the DocumentRepository
type DocumentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DocumentRepository
	templates     *TemplateRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *DocumentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewDocumentRepository(suite.baseTestSuite.DB)
	suite.templates = NewTemplateRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *DocumentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *DocumentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *DocumentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests storing a document with its recipients
func (suite *DocumentRepositoryTestSuite) TestCreateAndGetByID() {
	template := suite.factories.Template.Create(ownerID)
	suite.Require().NoError(suite.templates.Create(template))
	document := suite.factories.Document.Create(template)

	suite.Require().NoError(suite.repo.Create(document))
	suite.NotZero(document.ID)

	found, err := suite.repo.GetByID(document.ID)
	suite.NoError(err)
	suite.Equal(template.ID, *found.TemplateID)
	suite.Require().Len(found.Recipients, 2)
	suite.Equal(template.Recipients[0].Email, found.Recipients[0].Email)
	suite.Equal(template.Recipients[0].ID, *found.Recipients[0].TemplateRecipientID)
}

// TestGetByIDNotFound tests retrieving a missing document
func (suite *DocumentRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(12345)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDocumentRepositoryTestSuite runs the test suite
func TestDocumentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentRepositoryTestSuite))
}
