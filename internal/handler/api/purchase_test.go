//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"brewpoints/internal/handler/api"
	"brewpoints/internal/usecase/commands"
	"brewpoints/internal/usecase/queries"
	commandsmock "brewpoints/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
	handler      *api.PurchaseHandler
	userID       uuid.UUID
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockCommands)
	s.userID = uuid.New()

	s.router.POST("/purchases", func(c *gin.Context) {
		// Mock middleware behavior
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Purchase(c)
	})
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func (s *PurchaseHandlerTestSuite) post(body map[string]any, authed bool) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/purchases", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer test-token")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PurchaseHandlerTestSuite) TestPurchaseSuccess() {
	productID := uuid.New()
	orderID := uuid.New()

	s.mockCommands.EXPECT().
		Purchase(gomock.Any(), s.userID, productID).
		Return(&commands.PurchaseResult{
			Order: &queries.OrderView{
				ID:         orderID,
				UserID:     s.userID,
				TotalCents: 450,
				Status:     "completed",
			},
			NewPoints:     3,
			RewardGranted: false,
		}, nil)

	w := s.post(map[string]any{"product_id": productID.String()}, true)

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), orderID.String())
	s.Contains(w.Body.String(), `"new_points":3`)
}

func (s *PurchaseHandlerTestSuite) TestPurchaseRewardGranted() {
	productID := uuid.New()

	s.mockCommands.EXPECT().
		Purchase(gomock.Any(), s.userID, productID).
		Return(&commands.PurchaseResult{
			Order:         &queries.OrderView{ID: uuid.New(), UserID: s.userID},
			NewPoints:     0,
			RewardGranted: true,
		}, nil)

	w := s.post(map[string]any{"product_id": productID.String()}, true)

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), `"reward_granted":true`)
}

func (s *PurchaseHandlerTestSuite) TestPurchaseWithoutToken() {
	w := s.post(map[string]any{"product_id": uuid.New().String()}, false)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *PurchaseHandlerTestSuite) TestPurchaseMalformedBody() {
	w := s.post(map[string]any{"product_id": "not-a-uuid"}, true)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *PurchaseHandlerTestSuite) TestPurchaseErrorMapping() {
	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"product unavailable", commands.ErrProductUnavailable, http.StatusNotFound},
		{"invalid input", commands.ErrInvalidInput, http.StatusUnprocessableEntity},
		{"storage unavailable", commands.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{"ledger integrity", commands.ErrLedgerIntegrity, http.StatusInternalServerError},
		{"unauthenticated", commands.ErrUnauthenticated, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			productID := uuid.New()
			s.mockCommands.EXPECT().
				Purchase(gomock.Any(), s.userID, productID).
				Return(nil, tc.err)

			w := s.post(map[string]any{"product_id": productID.String()}, true)

			s.Equal(tc.expectCode, w.Code)
		})
	}
}
