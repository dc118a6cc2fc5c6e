//go:build unit

package product_test

import (
	"testing"

	"brewpoints/internal/domain/product"

	"github.com/stretchr/testify/assert"
)

func TestParseSubcategory(t *testing.T) {
	testCases := []struct {
		name         string
		subcategory  string
		expectRoast  string
		expectOrigin string
	}{
		{name: "roast and origin", subcategory: "Dark Roast - Ethiopia", expectRoast: "Dark Roast", expectOrigin: "Ethiopia"},
		{name: "roast only", subcategory: "Medium Roast", expectRoast: "Medium Roast", expectOrigin: ""},
		{name: "extra whitespace", subcategory: " Light Roast -  Colombia ", expectRoast: "Light Roast", expectOrigin: "Colombia"},
		{name: "empty", subcategory: "", expectRoast: "", expectOrigin: ""},
		{name: "hyphen without spaces stays whole", subcategory: "Single-Origin", expectRoast: "Single-Origin", expectOrigin: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parts := product.ParseSubcategory(tc.subcategory)
			assert.Equal(t, tc.expectRoast, parts.Roast)
			assert.Equal(t, tc.expectOrigin, parts.Origin)
		})
	}
}
