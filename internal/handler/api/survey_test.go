//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	domsurvey "fablab-billing/internal/domain/survey"
	"fablab-billing/internal/domain/user"
	"fablab-billing/internal/handler/api"
	resdto "fablab-billing/internal/handler/dto/response"
	"fablab-billing/internal/pkg/errs"
	"fablab-billing/internal/usecase/commands"
	"fablab-billing/internal/usecase/queries"
	"fablab-billing/tests/common/httptest"
	"fablab-billing/tests/common/testutil"
	commandsmock "fablab-billing/tests/mock/commands"
	queriesmock "fablab-billing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SurveyHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockSurveyCommands
	mockQueries   *queriesmock.MockSurveyQueries
	actor         user.Actor
	reservationID uuid.UUID
	url           string
}

func (s *SurveyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSurveyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSurveyQueries(s.mockCtrl)
	handler := api.NewSurveyHandler(s.mockCommands, s.mockQueries)

	s.actor = newActor(user.RoleUser)
	s.reservationID = uuid.New()
	s.url = "/reservations/" + s.reservationID.String() + "/survey"
	auth := fakeAuth(&s.actor)

	s.router.POST("/reservations/:id/survey", auth, handler.Submit)
	s.router.GET("/reservations/:id/survey", auth, handler.Get)
}

func (s *SurveyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSurveyHandlerSuite(t *testing.T) {
	suite.Run(t, new(SurveyHandlerTestSuite))
}

func (s *SurveyHandlerTestSuite) TestSubmit() {
	reqBody := map[string]any{"rating": 5, "comment": "Great staff"}

	s.Run("success: returns 201 Created with location", func() {
		surveyID := uuid.New()
		s.mockCommands.EXPECT().Submit(gomock.Any(), commands.SubmitSurveyRequest{
			ReservationID: s.reservationID, Rating: 5, Comment: "Great staff",
		}, s.actor).Return(&commands.SubmitSurveyResult{SurveyID: surveyID}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url, reqBody, "bearer-token")

		var body resdto.SubmitSurveyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(surveyID.String(), body.SurveyID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api" + s.url})
	})

	s.Run("success: comment is optional", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.SubmitSurveyResult{SurveyID: uuid.New()}, nil)
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("comment", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request without a rating", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("rating", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "rating out of range", commandsError: errs.Mark(domsurvey.ErrInvalidRating, commands.ErrDomainValidation), expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Domain validation failed"},
			{name: "not the owner", commandsError: commands.ErrReservationAccess, expectedStatus: http.StatusForbidden, expectedMsg: "Access denied"},
			{name: "already submitted", commandsError: commands.ErrSurveyAlreadyExists, expectedStatus: http.StatusConflict, expectedMsg: "Survey already submitted"},
			{name: "unknown reservation", commandsError: commands.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Reservation not found"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *SurveyHandlerTestSuite) TestGet() {
	s.Run("success: returns the survey", func() {
		created := time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC)
		view := &queries.SurveyView{
			ID:            uuid.New(),
			ReservationID: s.reservationID,
			UserID:        s.actor.ID,
			Rating:        4,
			Comment:       "Good",
			CreatedAt:     created,
		}
		s.mockQueries.EXPECT().GetByReservation(gomock.Any(), s.reservationID, s.actor).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url, nil, "bearer-token")

		var body resdto.SurveyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal(s.reservationID.String(), body.ReservationID)
		s.Equal(4, body.Rating)
		s.Equal(created.Unix(), body.CreatedAt)
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "no survey yet", queriesError: queries.ErrSurveyNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Survey not found"},
			{name: "someone else's survey", queriesError: queries.ErrSurveyAccess, expectedStatus: http.StatusForbidden, expectedMsg: "Access denied"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByReservation(gomock.Any(), s.reservationID, gomock.Any()).Return(nil, tc.queriesError)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
