//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"client-scheduler/internal/handler/api"
	"client-scheduler/internal/pkg/errs"
	"client-scheduler/internal/usecase/commands"
	"client-scheduler/tests/common/builder"
	commandsmock "client-scheduler/tests/mock/commands"
	queriesmock "client-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	userID       uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.userID = uuid.New()

	handler := api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	// Stand-in for the auth middleware.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.userID)
	})
	s.router.POST("/appointments", handler.Create)
	s.router.PUT("/appointments/:id", handler.Update)
	s.router.DELETE("/appointments/:id", handler.Delete)
	s.router.GET("/appointments", handler.List)
	s.router.GET("/appointments/upcoming", handler.Upcoming)
	s.router.GET("/appointments/:id", handler.Get)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) doJSON(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AppointmentHandlerTestSuite) TestCreate() {
	reqBody := builder.NewAppointmentBuilder().BuildDTO()
	view := builder.NewAppointmentBuilder().BuildView()

	s.Run("success: returns 201 with the stored view", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		w := s.doJSON(http.MethodPost, "/appointments", reqBody)
		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), view.ID.String())
	})

	s.Run("missing field: returns 400 before the use case runs", func() {
		w := s.doJSON(http.MethodPost, "/appointments", map[string]any{"title": "only a title"})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	// The commands layer returns sentinels attached as marks on a detail
	// error, so the table reproduces that shape rather than bare sentinels.
	validationCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"unknown customer", errs.Mark(errs.New("customer vanished"), commands.ErrCustomerNotFound), http.StatusNotFound},
		{"blank field", errs.Mark(errs.New("title cannot be blank"), commands.ErrBlankField), http.StatusUnprocessableEntity},
		{"field too long", errs.Mark(errs.New("title cannot exceed 50 characters"), commands.ErrFieldTooLong), http.StatusUnprocessableEntity},
		{"start after end", errs.Mark(errs.New("start_after_end"), commands.ErrStartAfterEnd), http.StatusUnprocessableEntity},
		{"spans multiple days", errs.Mark(errs.New("spans_multiple_days"), commands.ErrSpansMultipleDays), http.StatusUnprocessableEntity},
		{"outside business hours", errs.Mark(errs.New("outside_business_hours"), commands.ErrOutsideBusinessHours), http.StatusUnprocessableEntity},
		{"overlapping appointment", errs.Mark(errs.New("conflicts with appointment"), commands.ErrAppointmentConflict), http.StatusConflict},
		{"database failure", errs.Mark(errs.New("insert failed"), commands.ErrDatabaseOperationFailed), http.StatusInternalServerError},
	}
	for _, tc := range validationCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
				Return(nil, tc.err).Times(1)

			w := s.doJSON(http.MethodPost, "/appointments", reqBody)
			s.Equal(tc.expectCode, w.Code)
		})
	}
}

func (s *AppointmentHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	reqBody := builder.NewAppointmentBuilder().BuildDTO()
	view := builder.NewAppointmentBuilder().WithID(id).BuildView()

	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(view, nil).Times(1)

		w := s.doJSON(http.MethodPut, "/appointments/"+id.String(), reqBody)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("unknown id: returns 404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrAppointmentNotFound).Times(1)

		w := s.doJSON(http.MethodPut, "/appointments/"+id.String(), reqBody)
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("malformed id: returns 400", func() {
		w := s.doJSON(http.MethodPut, "/appointments/not-a-uuid", reqBody)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		w := s.doJSON(http.MethodDelete, "/appointments/"+id.String(), nil)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("unknown id: returns 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(commands.ErrAppointmentNotFound).Times(1)

		w := s.doJSON(http.MethodDelete, "/appointments/"+id.String(), nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestList() {
	view := builder.NewAppointmentBuilder().BuildView()

	s.Run("lists everything without a filter", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(nil, nil).Times(1)

		w := s.doJSON(http.MethodGet, "/appointments", nil)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("filters by customer", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), view.CustomerID).
			Return(nil, nil).Times(1)

		w := s.doJSON(http.MethodGet, "/appointments?customer_id="+view.CustomerID.String(), nil)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("malformed customer filter: returns 400", func() {
		w := s.doJSON(http.MethodGet, "/appointments?customer_id=nope", nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestUpcoming() {
	s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, nil).Times(1)

	w := s.doJSON(http.MethodGet, "/appointments/upcoming", nil)
	s.Equal(http.StatusOK, w.Code)
}
