//go:build integration
// +build integration

package repository

import (
	"testing"

	"template-service-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DirectLinkRepositoryTestSuite tests the DirectLinkRepository
type DirectLinkRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DirectLinkRepository
	templates     *TemplateRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *DirectLinkRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewDirectLinkRepository(suite.baseTestSuite.DB)
	suite.templates = NewTemplateRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *DirectLinkRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *DirectLinkRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *DirectLinkRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestLifecycle tests creating, looking up, toggling and deleting a link
func (suite *DirectLinkRepositoryTestSuite) TestLifecycle() {
	template := suite.factories.Template.Create(ownerID)
	suite.Require().NoError(suite.templates.Create(template))
	link := suite.factories.DirectLink.Create(template)

	suite.Require().NoError(suite.repo.Create(link))
	suite.NotZero(link.ID)

	byToken, err := suite.repo.GetByToken(link.Token)
	suite.NoError(err)
	suite.Equal(template.ID, byToken.TemplateID)
	suite.True(byToken.Enabled)

	suite.NoError(suite.repo.SetEnabled(link.ID, false))
	byTemplate, err := suite.repo.GetByTemplateID(template.ID)
	suite.NoError(err)
	suite.False(byTemplate.Enabled)

	withLink, err := suite.templates.GetByID(template.ID, nil)
	suite.NoError(err)
	suite.Require().NotNil(withLink.DirectLink)
	suite.Equal(link.Token, withLink.DirectLink.Token)

	suite.NoError(suite.repo.Delete(link.ID))
	_, err = suite.repo.GetByToken(link.Token)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.repo.SetEnabled(link.ID, true), gorm.ErrRecordNotFound)
}

// TestOneLinkPerTemplate tests the unique template constraint
func (suite *DirectLinkRepositoryTestSuite) TestOneLinkPerTemplate() {
	template := suite.factories.Template.Create(ownerID)
	suite.Require().NoError(suite.templates.Create(template))

	suite.Require().NoError(suite.repo.Create(suite.factories.DirectLink.Create(template)))
	err := suite.repo.Create(suite.factories.DirectLink.Create(template))

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestDirectLinkRepositoryTestSuite runs the test suite
func TestDirectLinkRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DirectLinkRepositoryTestSuite))
}
