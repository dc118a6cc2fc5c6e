//go:build e2e

package purchase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"brewpoints/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gin-gonic/gin"
)

type PurchaseE2ETestSuite struct {
	suite.Suite
	pool      *pgxpool.Pool
	router    *gin.Engine
	token     string
	productID uuid.UUID
}

func TestPurchaseE2ESuite(t *testing.T) {
	suite.Run(t, new(PurchaseE2ETestSuite))
}

func (s *PurchaseE2ETestSuite) SetupSuite() {
	s.pool, s.router, _ = e2e.SetupE2EEnvironment(s.T())

	s.productID = uuid.New()
	_, err := s.pool.Exec(context.Background(),
		`INSERT INTO products (id, name, description, price_cents, category, subcategory)
		 VALUES ($1, 'Espresso', 'Double shot', 450, 'Coffee', 'Dark - Brazil')`,
		s.productID)
	require.NoError(s.T(), err)

	s.token = s.signUp("buyer@example.com")
}

func (s *PurchaseE2ETestSuite) signUp(email string) string {
	body := map[string]any{
		"email":     email,
		"password":  "sup3r-secret",
		"full_name": "Test Buyer",
	}
	w := s.doJSON(http.MethodPost, "/api/auth/signup", body, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.AccessToken)
	return resp.AccessToken
}

func (s *PurchaseE2ETestSuite) doJSON(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type purchaseResp struct {
	NewPoints     int32 `json:"new_points"`
	RewardGranted bool  `json:"reward_granted"`
	Order         struct {
		ID         uuid.UUID `json:"id"`
		TotalCents int64     `json:"total_cents"`
		Status     string    `json:"status"`
	} `json:"order"`
}

type ledgerResp struct {
	Points          int32 `json:"points"`
	TotalEarned     int32 `json:"total_earned"`
	RewardsRedeemed int32 `json:"rewards_redeemed"`
	PointsToReward  int32 `json:"points_to_reward"`
}

func (s *PurchaseE2ETestSuite) TestFullRewardCycle() {
	body := map[string]any{"product_id": s.productID.String()}

	for i := 1; i <= 10; i++ {
		w := s.doJSON(http.MethodPost, "/api/purchases", body, s.token)
		s.Require().Equal(http.StatusCreated, w.Code, fmt.Sprintf("purchase %d: %s", i, w.Body.String()))

		var resp purchaseResp
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("completed", resp.Order.Status)
		s.Equal(int64(450), resp.Order.TotalCents)

		if i < 10 {
			s.Equal(int32(i), resp.NewPoints, "purchase %d", i)
			s.False(resp.RewardGranted, "purchase %d", i)
		} else {
			s.Equal(int32(0), resp.NewPoints, "the tenth purchase wraps to zero")
			s.True(resp.RewardGranted, "the tenth purchase grants the reward")
		}
	}

	w := s.doJSON(http.MethodGet, "/api/loyalty", nil, s.token)
	s.Require().Equal(http.StatusOK, w.Code)

	var got ledgerResp
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))

	want := ledgerResp{
		Points:          0,
		TotalEarned:     10,
		RewardsRedeemed: 1,
		PointsToReward:  10,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Errorf("ledger mismatch (-want +got):\n%s", diff)
	}

	w = s.doJSON(http.MethodGet, "/api/orders", nil, s.token)
	s.Require().Equal(http.StatusOK, w.Code)

	var orders []json.RawMessage
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &orders))
	s.Len(orders, 10)
}

func (s *PurchaseE2ETestSuite) TestOrderKeepsPriceCapturedAtPurchase() {
	productID := uuid.New()
	_, err := s.pool.Exec(context.Background(),
		`INSERT INTO products (id, name, price_cents, category)
		 VALUES ($1, 'Pour Over', 450, 'Coffee')`,
		productID)
	s.Require().NoError(err)

	token := s.signUp("stable@example.com")
	body := map[string]any{"product_id": productID.String()}

	w := s.doJSON(http.MethodPost, "/api/purchases", body, token)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	// The catalog price moves after the sale; the historical order must keep
	// the price captured at purchase time.
	_, err = s.pool.Exec(context.Background(),
		`UPDATE products SET price_cents = 500 WHERE id = $1`, productID)
	s.Require().NoError(err)

	w = s.doJSON(http.MethodGet, "/api/orders", nil, token)
	s.Require().Equal(http.StatusOK, w.Code)

	var orders []struct {
		TotalCents int64 `json:"total_cents"`
		Items      []struct {
			UnitPriceCents int64 `json:"unit_price_cents"`
		} `json:"items"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &orders))
	s.Require().Len(orders, 1)
	s.Equal(int64(450), orders[0].TotalCents)
	s.Require().Len(orders[0].Items, 1)
	s.Equal(int64(450), orders[0].Items[0].UnitPriceCents)

	// A purchase made after the change pays the new price.
	w = s.doJSON(http.MethodPost, "/api/purchases", body, token)
	s.Require().Equal(http.StatusCreated, w.Code)

	var resp purchaseResp
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(500), resp.Order.TotalCents)
}

func (s *PurchaseE2ETestSuite) TestUnknownProductRejected() {
	body := map[string]any{"product_id": uuid.New().String()}
	w := s.doJSON(http.MethodPost, "/api/purchases", body, s.token)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *PurchaseE2ETestSuite) TestPurchaseRequiresToken() {
	body := map[string]any{"product_id": s.productID.String()}
	w := s.doJSON(http.MethodPost, "/api/purchases", body, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *PurchaseE2ETestSuite) TestFreshCustomerGetsZeroedLedger() {
	token := s.signUp("fresh@example.com")

	w := s.doJSON(http.MethodGet, "/api/loyalty", nil, token)
	s.Require().Equal(http.StatusOK, w.Code)

	var got ledgerResp
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal(int32(0), got.Points)
	s.Equal(int32(10), got.PointsToReward)
}
