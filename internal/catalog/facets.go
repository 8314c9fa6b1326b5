package catalog

import (
	"math"
	"sort"

	"boutique-storefront/internal/models"
)

// Facets lists the selectable filter values for the current context. Each
// facet is computed from the constrained subset rather than the full
// catalog so the UI never offers a value that would yield zero results:
// colors honor the price range and size selection, sizes honor the price
// range and color selection.
type Facets struct {
	Colors []string
	Sizes  []string
}

// AvailableFacets computes the facets for a product list under a filter.
// The list is expected to already be category- and search-filtered (the
// output of Apply with no color/size/price constraints, or any superset).
func AvailableFacets(products []models.Product, f Filter) Facets {
	colors := make(map[string]struct{})
	sizes := make(map[string]struct{})

	for _, p := range products {
		if p.Price < f.MinPrice || p.Price > f.MaxPrice {
			continue
		}
		if len(f.Sizes) == 0 || intersects(p.Sizes, f.Sizes) {
			for _, c := range p.Colors {
				colors[c] = struct{}{}
			}
		}
		if len(f.Colors) == 0 || intersects(p.Colors, f.Colors) {
			for _, s := range p.Sizes {
				sizes[s] = struct{}{}
			}
		}
	}

	return Facets{
		Colors: sortedKeys(colors),
		Sizes:  sortedKeys(sizes),
	}
}

// FacetsFor computes the facets for a browse view over the full catalog:
// the catalog is first narrowed to the filter's category and search term,
// then AvailableFacets applies the price and cross-facet constraints.
func FacetsFor(products []models.Product, f Filter) Facets {
	scope := Filter{
		Category: f.Category,
		Search:   f.Search,
		MaxPrice: math.MaxFloat64,
	}
	return AvailableFacets(Apply(products, scope), f)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
