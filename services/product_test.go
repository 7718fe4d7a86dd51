package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTotalQuantitySumsAcrossWarehouses(t *testing.T) {
	db := openTestDB(t)
	seedProduct(t, db, "p1", 100, nil, 0)
	seedStock(t, db, "wh-a", "p1", 3)
	seedStock(t, db, "wh-b", "p1", 4)

	qty, err := GetTotalQuantity(db, "p1")
	require.NoError(t, err)
	assert.Equal(t, 7, qty)
}

func TestGetTotalQuantityMissingProductIsZero(t *testing.T) {
	db := openTestDB(t)

	qty, err := GetTotalQuantity(db, "ghost")
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestIsOutOfStock(t *testing.T) {
	db := openTestDB(t)
	seedProduct(t, db, "stocked", 100, nil, 2)
	seedProduct(t, db, "empty", 100, nil, 0)

	out, err := IsOutOfStock(db, "stocked")
	require.NoError(t, err)
	assert.False(t, out)

	out, err = IsOutOfStock(db, "empty")
	require.NoError(t, err)
	assert.True(t, out)
}

func TestGetProductBasicNotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := GetProductBasic(db, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchProductsPagination(t *testing.T) {
	db := openTestDB(t)
	for i := 0; i < 25; i++ {
		seedProduct(t, db, productID(i), 100, nil, 0)
	}

	page1, totalPages, err := SearchProducts(db, "Product", 1, "")
	require.NoError(t, err)
	assert.Len(t, page1, 20)
	assert.Equal(t, 2, totalPages)

	page2, _, err := SearchProducts(db, "Product", 2, "")
	require.NoError(t, err)
	assert.Len(t, page2, 5)

	none, totalPages, err := SearchProducts(db, "no-such-name", 1, "")
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Equal(t, 0, totalPages)
}

func TestListProductsPriceBandUsesEffectivePrice(t *testing.T) {
	db := openTestDB(t)
	sale := 90.0
	seedProduct(t, db, "cheap", 50, nil, 0)
	seedProduct(t, db, "onsale", 150, &sale, 0)
	seedProduct(t, db, "pricey", 300, nil, 0)

	products, _, err := ListProducts(db, 1, "", "price", "80-200")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "onsale", products[0].ID)

	// A malformed band is ignored rather than erroring.
	products, _, err = ListProducts(db, 1, "", "price", "not-a-band")
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestParsePriceBand(t *testing.T) {
	min, max, ok := parsePriceBand("10-99.5")
	require.True(t, ok)
	assert.Equal(t, 10.0, min)
	assert.Equal(t, 99.5, max)

	for _, band := range []string{"", "100", "abc-def", "200-100"} {
		_, _, ok := parsePriceBand(band)
		assert.False(t, ok, band)
	}
}

func TestGetSimilarProductsExcludesSelf(t *testing.T) {
	db := openTestDB(t)
	for _, id := range []string{"a", "b", "c"} {
		p := seedProduct(t, db, id, 100, nil, 0)
		require.NoError(t, db.Model(&p).Update("category_id", "cat-1").Error)
	}

	similar, err := GetSimilarProducts(db, "cat-1", "a", 10)
	require.NoError(t, err)
	require.Len(t, similar, 2)
	for _, p := range similar {
		assert.NotEqual(t, "a", p.ID)
	}
}

func productID(i int) string {
	return string(rune('a'+i/10)) + string(rune('0'+i%10))
}
