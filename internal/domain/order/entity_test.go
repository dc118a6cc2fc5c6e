//go:build unit

package order_test

import (
	"testing"

	"brewpoints/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	productID := uuid.New()

	testCases := []struct {
		name      string
		quantity  int32
		price     int64
		expectErr error
	}{
		{name: "valid", quantity: 1, price: 450},
		{name: "zero quantity", quantity: 0, price: 450, expectErr: order.ErrInvalidQty},
		{name: "negative quantity", quantity: -1, price: 450, expectErr: order.ErrInvalidQty},
		{name: "zero price", quantity: 1, price: 0, expectErr: order.ErrInvalidPrice},
		{name: "negative price", quantity: 1, price: -100, expectErr: order.ErrInvalidPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, err := order.NewLine(productID, tc.quantity, tc.price)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, productID, line.ProductID())
			assert.Equal(t, tc.price, line.UnitPriceCents())
		})
	}
}

func TestNewOrder(t *testing.T) {
	userID := uuid.New()

	t.Run("empty lines rejected", func(t *testing.T) {
		_, err := order.NewOrder(userID, nil)
		assert.ErrorIs(t, err, order.ErrNoLines)
	})

	t.Run("total is sum of line subtotals", func(t *testing.T) {
		l1, err := order.NewLine(uuid.New(), 2, 450)
		require.NoError(t, err)
		l2, err := order.NewLine(uuid.New(), 1, 300)
		require.NoError(t, err)

		o, err := order.NewOrder(userID, []order.Line{l1, l2})
		require.NoError(t, err)

		assert.Equal(t, int64(1200), o.TotalCents())
		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.Equal(t, userID, o.UserID())
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("single line purchase", func(t *testing.T) {
		line, err := order.NewLine(uuid.New(), 1, 450)
		require.NoError(t, err)

		o, err := order.NewOrder(userID, []order.Line{line})
		require.NoError(t, err)
		assert.Equal(t, int64(450), o.TotalCents())
	})
}
