//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/user"
	"care-booking/internal/handler/api"
	resdto "care-booking/internal/handler/dto/response"
	"care-booking/internal/handler/httperr"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/commands"
	"care-booking/internal/usecase/queries"
	"care-booking/tests/common/builder"
	"care-booking/tests/common/httptest"
	flowmock "care-booking/tests/mock/flow"
	queriesmock "care-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockFlow    *flowmock.MockService
	mockQueries *queriesmock.MockBookingQueries
	handler     *api.BookingHandler
	principal   user.Principal
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockFlow = flowmock.NewMockService(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockFlow, s.mockQueries)
	s.principal = builder.Member(uuid.New())

	bookings := s.router.Group("/bookings", stubAuth(&s.principal))
	bookings.GET("", s.handler.List)
	bookings.GET("/:id", s.handler.Get)
	bookings.POST("/:id/reschedule", s.handler.StartReschedule)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: returns the booking view", func() {
		view := builder.NewBookingBuilder().WithRequesterID(s.principal.ID()).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.principal, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("Ana Duarte", body.SpecialistName)
		s.Equal("2025-11-10", body.Date)
		s.Equal([]string{"anxiety"}, body.Topics)
	})

	s.Run("error: maps query errors", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{"not found", errs.Mark(errors.New("no rows"), commands.ErrBookingNotFound), http.StatusNotFound, httperr.CodeBookingNotFound},
			{"someone else's booking", queries.ErrForbidden, http.StatusForbidden, httperr.CodeForbidden},
			{"storage failure", errors.New("connection reset"), http.StatusInternalServerError, httperr.CodeInternal},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				id := uuid.New()
				s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, tc.wantStatus, tc.wantCode)
			})
		}
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/42", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: first page with next cursor", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().WithRequesterID(s.principal.ID()).BuildView(),
			builder.NewBookingBuilder().WithRequesterID(s.principal.ID()).BuildView(),
		}
		next := &queries.Cursor{After: queries.EncodeAfterCursor(time.Date(2025, time.November, 1, 8, 0, 0, 0, time.UTC), views[1].ID)}
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.principal, s.principal.ID(), &queries.Cursor{}, 2).
			Return(views, next, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=2", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Require().NotNil(body.NextCursor)
		s.Equal(next.After, *body.NextCursor)
	})

	s.Run("success: cursor is forwarded and last page has no cursor", func() {
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), gomock.Any(), s.principal.ID(), &queries.Cursor{After: "abc"}, 0).
			Return([]*queries.BookingView{}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=abc", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]any{}, body["items"])
		s.NotContains(body, "next_cursor")
	})

	s.Run("error: 400 on out of range limit", func() {
		for _, q := range []string{"limit=201", "limit=-1", "limit=ten"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?"+q, nil, "bearer-token")
			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest)
		}
	})

	s.Run("error: 400 on a malformed cursor", func() {
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Wrap(queries.ErrInvalidCursor, "decode"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=%25%25", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidCursor)
	})
}

// ================================================================================
// TestStartReschedule
// ================================================================================

func (s *BookingHandlerTestSuite) TestStartReschedule() {
	s.Run("success: returns 201 with a draft at date selection", func() {
		bookingID := uuid.New()
		draft := builder.NewDraftBuilder().AtStep(booking.StepDateTimeSelection).Rescheduling(bookingID).Build()
		s.mockFlow.EXPECT().StartReschedule(gomock.Any(), s.principal, bookingID).Return(draft, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/reschedule", nil, "bearer-token")

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(booking.StepDateTimeSelection.String(), body.Step)
		s.Require().NotNil(body.RescheduleOf)
		s.Equal(bookingID, *body.RescheduleOf)
	})

	s.Run("error: 409 for a cancelled booking", func() {
		bookingID := uuid.New()
		s.mockFlow.EXPECT().StartReschedule(gomock.Any(), gomock.Any(), bookingID).
			Return(nil, errs.Mark(errors.New("status cancelled"), commands.ErrNotReschedulable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/reschedule", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, httperr.CodeNotReschedulable)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+uuid.NewString()+"/reschedule", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
