//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"care-booking/internal/domain/user"
	"care-booking/internal/handler/api"
	resdto "care-booking/internal/handler/dto/response"
	"care-booking/internal/handler/httperr"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/commands"
	"care-booking/internal/usecase/queries"
	"care-booking/tests/common/builder"
	"care-booking/tests/common/httptest"
	queriesmock "care-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuotaHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockQuotaQueries
	principal   user.Principal
}

func (s *QuotaHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockQuotaQueries(s.mockCtrl)
	s.principal = builder.Member(uuid.New())

	s.router.GET("/quota", stubAuth(&s.principal), api.NewQuotaHandler(s.mockQueries).Get)
}

func (s *QuotaHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuotaHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuotaHandlerTestSuite))
}

func (s *QuotaHandlerTestSuite) TestGet() {
	s.Run("success: returns balances and low flags", func() {
		view := &queries.QuotaView{
			RequesterID:       s.principal.ID(),
			CompanyRemaining:  1,
			PersonalRemaining: 5,
			CompanyLow:        true,
			LowThreshold:      2,
		}
		s.mockQueries.EXPECT().Get(gomock.Any(), s.principal).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quota", nil, "bearer-token")

		var body resdto.QuotaResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.QuotaResponse{
			RequesterID:       s.principal.ID(),
			CompanyRemaining:  1,
			PersonalRemaining: 5,
			CompanyLow:        true,
			PersonalLow:       false,
			LowThreshold:      2,
		}, body)
	})

	s.Run("error: 404 without a quota account", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errs.Mark(nil, commands.ErrNoQuotaAccount))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quota", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNoQuotaAccount)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quota", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
