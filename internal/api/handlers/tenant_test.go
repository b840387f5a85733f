package handlers

import (
	"net/http"
	"testing"

	apperrors "tenant-calendar-backend/internal/errors"
	"tenant-calendar-backend/internal/mocks"
	"tenant-calendar-backend/internal/service"
	"tenant-calendar-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TenantHandlerTestSuite defines the test suite for TenantHandler
type TenantHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockTenantService *mocks.MockTenantServiceInterface
	handler           *TenantHandler
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TenantHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenantService = mocks.NewMockTenantServiceInterface(suite.ctrl)
	suite.handler = NewTenantHandler(suite.mockTenantService)

	suite.httpSuite = testutils.SetupHTTPTest()
	tenants := suite.httpSuite.Router.Group("/api/v1/tenants")
	{
		tenants.GET("", suite.handler.ListTenants)
		tenants.POST("", suite.handler.CreateTenant)
		tenants.GET("/:tenantId", suite.handler.GetTenant)
		tenants.GET("/:tenantId/stats", suite.handler.GetTenantStats)
		tenants.PUT("/:tenantId", suite.handler.UpdateTenant)
		tenants.DELETE("/:tenantId", suite.handler.DeleteTenant)
	}
}

// TearDownTest cleans up after each test
func (suite *TenantHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTenant tests creating a tenant
func (suite *TenantHandlerTestSuite) TestCreateTenant() {
	suite.mockTenantService.EXPECT().
		Create(&service.CreateTenantRequest{Name: "Acme", Slug: "acme", Country: "DE"}).
		Return(&service.TenantResponse{ID: uuid.New(), Name: "Acme", Slug: "acme", Country: "DE", IsActive: true}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tenants", map[string]interface{}{
		"name":    "Acme",
		"slug":    "acme",
		"country": "DE",
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	var response service.TenantResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "acme", response.Slug)
}

// TestCreateTenantDuplicateSlug tests the 409 for a taken slug
func (suite *TenantHandlerTestSuite) TestCreateTenantDuplicateSlug() {
	suite.mockTenantService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrTenantExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/tenants", map[string]interface{}{"name": "Acme", "slug": "acme"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

// TestListTenants tests listing tenants with default paging
func (suite *TenantHandlerTestSuite) TestListTenants() {
	suite.mockTenantService.EXPECT().
		GetAll(1, 20).
		Return(&service.TenantListResponse{Tenants: []service.TenantResponse{}, PageInfo: service.PageInfo{Page: 1, PageSize: 20}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tenants", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetAndUpdateTenant tests reading and updating a tenant
func (suite *TenantHandlerTestSuite) TestGetAndUpdateTenant() {
	id := uuid.New()
	suite.mockTenantService.EXPECT().
		GetByID(id).
		Return(&service.TenantResponse{ID: id, Name: "Acme"}, nil).
		Times(1)
	suite.mockTenantService.EXPECT().
		Update(id, gomock.Any()).
		Return(nil, apperrors.ErrTenantNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tenants/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeRequest("PUT", "/api/v1/tenants/"+id.String(), map[string]interface{}{"industry": "Retail"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

// TestDeleteTenantWithUsers tests the 409 while users remain
func (suite *TenantHandlerTestSuite) TestDeleteTenantWithUsers() {
	id := uuid.New()
	suite.mockTenantService.EXPECT().
		Delete(id).
		Return(apperrors.ErrTenantHasUsers).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/tenants/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "still has users")
}

// TestGetTenantStats tests the statistics of one organization
func (suite *TenantHandlerTestSuite) TestGetTenantStats() {
	id := uuid.New()
	suite.mockTenantService.EXPECT().
		GetStats(id).
		Return(&service.TenantStatsResponse{
			TotalUsers:         4,
			ActiveUsers:        3,
			OrganizationEvents: 10,
			Tenant:             service.TenantResponse{ID: id, Name: "Acme"},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tenants/"+id.String()+"/stats", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), float64(4), response["totalUsers"])
	assert.Equal(suite.T(), float64(3), response["activeUsers"])
	assert.Equal(suite.T(), "Acme", response["tenantInfo"].(map[string]interface{})["name"])
}

// TestGetTenantStatsNotFound tests the 404 for an unknown organization
func (suite *TenantHandlerTestSuite) TestGetTenantStatsNotFound() {
	id := uuid.New()
	suite.mockTenantService.EXPECT().
		GetStats(id).
		Return(nil, apperrors.ErrTenantNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tenants/"+id.String()+"/stats", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization")
}

// TestTenantHandlerTestSuite runs the test suite
func TestTenantHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}
