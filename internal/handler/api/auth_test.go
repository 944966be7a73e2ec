//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"client-scheduler/internal/handler/api"
	"client-scheduler/internal/pkg/config"
	"client-scheduler/internal/usecase/commands"
	"client-scheduler/tests/common/builder"
	commandsmock "client-scheduler/tests/mock/commands"
	queriesmock "client-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) postJSON(url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthHandlerTestSuite) TestLogin() {
	userBuilder := builder.NewUserBuilder()
	reqBody := userBuilder.BuildLoginDTO()
	returnUser := userBuilder.BuildReadModel()

	s.Run("success: returns 200 and sets token cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&commands.LoginResult{
				UserID:   returnUser.ID,
				Username: returnUser.Username,
				Role:     returnUser.Role,
				TokenPair: &commands.TokenPair{
					AccessToken:  "test-jwt-token",
					RefreshToken: "test-refresh-token",
				},
			}, nil).Times(1)

		w := s.postJSON("/auth/login", reqBody)
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), returnUser.Username)

		cookies := w.Result().Cookies()
		names := make([]string, 0, len(cookies))
		for _, c := range cookies {
			names = append(names, c.Name)
		}
		s.Contains(names, "access_token")
		s.Contains(names, "refresh_token")
	})

	s.Run("bad credentials: returns 401", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		w := s.postJSON("/auth/login", reqBody)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("unknown user gets the same answer as a bad password", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserNotFound).Times(1)

		w := s.postJSON("/auth/login", reqBody)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("inactive account: returns 403", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserInactive).Times(1)

		w := s.postJSON("/auth/login", reqBody)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("missing fields: returns 400 without calling the use case", func() {
		w := s.postJSON("/auth/login", map[string]any{"username": "only"})
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	w := s.postJSON("/auth/logout", struct{}{})
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("authenticated: returns the user view", func() {
		returnUser := builder.NewUserBuilder().BuildReadModel()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), returnUser.Username)
	})

	s.Run("no auth context: returns 401", func() {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
