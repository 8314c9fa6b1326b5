package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Category tokens with special selection semantics.
const (
	CategoryAll         = "all"
	CategoryCollections = "collections"
	CategoryNew         = "nouveautes"
	CategoryBestSellers = "meilleures-ventes"
)

// Sort keys.
const (
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// DefaultPageSize is how many products a page of results holds.
const DefaultPageSize = 6

// Filter describes the browse criteria for a category view. The zero value
// selects everything and sorts by name ascending.
type Filter struct {
	Category string
	Search   string
	MinPrice float64
	MaxPrice float64
	Colors   []string
	Sizes    []string
	Sort     string
}

// NewFilter returns a filter for the given category token with an unbounded
// price range.
func NewFilter(category string) Filter {
	return Filter{
		Category: category,
		MaxPrice: math.MaxFloat64,
		Sort:     SortNameAsc,
	}
}

// FilterFromQuery reconstructs a filter from URL query parameters, the same
// shape the storefront writes into the address bar: search, colors and
// sizes as comma-separated lists, price as "min-max", sort and category as
// plain values.
func FilterFromQuery(values url.Values) Filter {
	f := NewFilter(values.Get("category"))
	if f.Category == "" {
		f.Category = CategoryAll
	}
	f.Search = values.Get("search")
	if sort := values.Get("sort"); sort != "" {
		f.Sort = sort
	}
	if colors := values.Get("colors"); colors != "" {
		f.Colors = splitList(colors)
	}
	if sizes := values.Get("sizes"); sizes != "" {
		f.Sizes = splitList(sizes)
	}
	if price := values.Get("price"); price != "" {
		if min, max, ok := parsePriceRange(price); ok {
			f.MinPrice = min
			f.MaxPrice = max
		}
	}
	return f
}

// Query renders the filter back into URL query parameters, omitting values
// that match the defaults.
func (f Filter) Query() url.Values {
	values := url.Values{}
	if f.Category != "" && f.Category != CategoryAll {
		values.Set("category", f.Category)
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	if f.Sort != "" && f.Sort != SortNameAsc {
		values.Set("sort", f.Sort)
	}
	if len(f.Colors) > 0 {
		values.Set("colors", strings.Join(f.Colors, ","))
	}
	if len(f.Sizes) > 0 {
		values.Set("sizes", strings.Join(f.Sizes, ","))
	}
	if f.MaxPrice != math.MaxFloat64 {
		values.Set("price", strconv.FormatFloat(f.MinPrice, 'f', -1, 64)+"-"+strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	return values
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}

func parsePriceRange(v string) (min, max float64, ok bool) {
	parts := strings.SplitN(v, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, false
	}
	max, err = strconv.ParseFloat(parts[1], 64)
	if err != nil || max < min {
		return 0, 0, false
	}
	return min, max, true
}
