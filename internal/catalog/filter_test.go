package catalog

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("category", "meilleures-ventes")
	values.Set("search", "veste")
	values.Set("colors", "Noir,Blanc")
	values.Set("sizes", "M, L")
	values.Set("price", "20-150")
	values.Set("sort", "price-desc")

	f := FilterFromQuery(values)

	assert.Equal(t, CategoryBestSellers, f.Category)
	assert.Equal(t, "veste", f.Search)
	assert.Equal(t, []string{"Noir", "Blanc"}, f.Colors)
	assert.Equal(t, []string{"M", "L"}, f.Sizes)
	assert.Equal(t, 20.0, f.MinPrice)
	assert.Equal(t, 150.0, f.MaxPrice)
	assert.Equal(t, SortPriceDesc, f.Sort)
}

func TestFilterFromQuery_Defaults(t *testing.T) {
	f := FilterFromQuery(url.Values{})

	assert.Equal(t, CategoryAll, f.Category)
	assert.Empty(t, f.Search)
	assert.Empty(t, f.Colors)
	assert.Empty(t, f.Sizes)
	assert.Equal(t, 0.0, f.MinPrice)
	assert.Equal(t, math.MaxFloat64, f.MaxPrice)
	assert.Equal(t, SortNameAsc, f.Sort)
}

func TestFilterFromQuery_InvalidPriceIsIgnored(t *testing.T) {
	tests := []string{"abc", "10", "50-10", "10-xyz"}
	for _, raw := range tests {
		values := url.Values{}
		values.Set("price", raw)
		f := FilterFromQuery(values)
		assert.Equal(t, 0.0, f.MinPrice, "price %q", raw)
		assert.Equal(t, math.MaxFloat64, f.MaxPrice, "price %q", raw)
	}
}

func TestFilterQueryRoundTrip(t *testing.T) {
	f := NewFilter("homme")
	f.Search = "veste"
	f.Colors = []string{"Noir"}
	f.Sizes = []string{"M", "L"}
	f.MinPrice = 10
	f.MaxPrice = 90
	f.Sort = SortPriceAsc

	parsed := FilterFromQuery(f.Query())
	assert.Equal(t, f, parsed)
}

func TestFilterQuery_OmitsDefaults(t *testing.T) {
	values := NewFilter(CategoryAll).Query()
	assert.Empty(t, values)
}
