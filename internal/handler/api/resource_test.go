//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"activity-booking/internal/handler/api"
	resdto "activity-booking/internal/handler/dto/response"
	"activity-booking/internal/usecase/commands"
	"activity-booking/tests/common/builder"
	"activity-booking/tests/common/httptest"
	"activity-booking/tests/common/testutil"
	commandsmock "activity-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResourceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockResourceCommands
	handler      *api.ResourceHandler
}

func (s *ResourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockResourceCommands(s.mockCtrl)
	s.handler = api.NewResourceHandler(s.mockCommands)

	s.router.POST("/admin/resources", s.handler.Create)
	s.router.PATCH("/admin/resources/:id", s.handler.Update)
}

func (s *ResourceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResourceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}

func (s *ResourceHandlerTestSuite) TestCreate() {
	url := "/admin/resources"
	b := builder.NewResourceBuilder()
	reqBody := b.BuildCreateRequestDTO()

	testCases := []testCaseOrder{
		{name: "missing field: kind (required)", mutate: testutil.Field("kind", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: title (required)", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
		{name: "invalid value: capacity 0", mutate: testutil.Field("capacity", 0), expectCode: http.StatusBadRequest},
		{name: "invalid value: negative price", mutate: testutil.Field("full_price_cents", -1), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with Location", func() {
		r := b.BuildDomain()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToCommand()).Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(r.ID(), body.ID)
		s.Equal(b.DepositCents, body.DepositCents)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/admin/resources/" + r.ID().String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *ResourceHandlerTestSuite) TestUpdate() {
	r := builder.NewResourceBuilder().BuildDomain()
	url := "/admin/resources/" + r.ID().String()

	s.Run("success: partial update", func() {
		capacity := 8
		s.mockCommands.EXPECT().Update(gomock.Any(), r.ID(), commands.UpdateResourceRequest{Capacity: &capacity}).
			Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"capacity": 8}, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for an unknown resource", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"title": "Canyon"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "resource not found")
	})
}
