//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"brewpoints/internal/handler/api"
	"brewpoints/internal/usecase"
	"brewpoints/internal/usecase/queries"
	usecasemock "brewpoints/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
	userID      uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase)
	s.userID = uuid.New()

	s.router.POST("/auth/signup", s.handler.SignUp)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
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

func (s *AuthHandlerTestSuite) doJSON(method, url string, body map[string]any, authed bool) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(method, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer test-token")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthHandlerTestSuite) userView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       s.userID,
		Email:    "buyer@example.com",
		FullName: "Test Buyer",
		Role:     "customer",
		IsActive: true,
	}
}

func (s *AuthHandlerTestSuite) TestSignUpSuccess() {
	s.mockUseCase.EXPECT().
		SignUp(gomock.Any(), gomock.Any(), "Test Buyer").
		Return("test-jwt-token", s.userView(), nil)

	w := s.doJSON(http.MethodPost, "/auth/signup", map[string]any{
		"email":     "buyer@example.com",
		"password":  "sup3r-secret",
		"full_name": "Test Buyer",
	}, false)

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), "test-jwt-token")
	s.Contains(w.Body.String(), "buyer@example.com")
}

func (s *AuthHandlerTestSuite) TestSignUpDuplicateEmail() {
	s.mockUseCase.EXPECT().
		SignUp(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", nil, usecase.ErrEmailTaken)

	w := s.doJSON(http.MethodPost, "/auth/signup", map[string]any{
		"email":     "buyer@example.com",
		"password":  "sup3r-secret",
		"full_name": "Test Buyer",
	}, false)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *AuthHandlerTestSuite) TestSignUpRejectsShortPassword() {
	w := s.doJSON(http.MethodPost, "/auth/signup", map[string]any{
		"email":     "buyer@example.com",
		"password":  "short",
		"full_name": "Test Buyer",
	}, false)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuthHandlerTestSuite) TestLoginSuccess() {
	s.mockUseCase.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return("test-jwt-token", s.userView(), nil)

	w := s.doJSON(http.MethodPost, "/auth/login", map[string]any{
		"email":    "buyer@example.com",
		"password": "sup3r-secret",
	}, false)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "test-jwt-token")
}

func (s *AuthHandlerTestSuite) TestLoginBadCredentials() {
	s.mockUseCase.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return("", nil, usecase.ErrInvalidCredentials)

	w := s.doJSON(http.MethodPost, "/auth/login", map[string]any{
		"email":    "buyer@example.com",
		"password": "wrong-password",
	}, false)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthHandlerTestSuite) TestLogout() {
	w := s.doJSON(http.MethodPost, "/auth/logout", map[string]any{}, true)

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.mockUseCase.EXPECT().
		GetCurrentUser(gomock.Any(), s.userID).
		Return(s.userView(), nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "buyer@example.com")
}

func (s *AuthHandlerTestSuite) TestMeWithoutToken() {
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}
