package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"boutique-storefront/internal/models"
)

// Apply produces the filtered, sorted product view for a filter. Predicates
// are AND-combined; the cheap ones (category, price, color, size) run before
// the substring search. The sort is stable so ties keep insertion order.
func Apply(products []models.Product, f Filter) []models.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var result []models.Product
	for _, p := range products {
		if !matchesCategory(p, f.Category) {
			continue
		}
		if p.Price < f.MinPrice || p.Price > f.MaxPrice {
			continue
		}
		if len(f.Colors) > 0 && !intersects(p.Colors, f.Colors) {
			continue
		}
		if len(f.Sizes) > 0 && !intersects(p.Sizes, f.Sizes) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		result = append(result, p)
	}

	sortProducts(result, f.Sort)
	return result
}

// matchesCategory applies the category token semantics: "all" bypasses the
// filter, "collections" selects the unisex category, "nouveautes" selects
// categories tagged new, "meilleures-ventes" selects featured products, and
// any other token requires an exact category match.
func matchesCategory(p models.Product, category string) bool {
	switch category {
	case "", CategoryAll:
		return true
	case CategoryCollections:
		return p.CategoryID == "unisexe"
	case CategoryNew:
		return strings.Contains(p.CategoryID, "new")
	case CategoryBestSellers:
		return p.IsFeatured
	default:
		return p.CategoryID == category
	}
}

// matchesSearch checks the lower-cased term against name, description and
// every color label.
func matchesSearch(p models.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, color := range p.Colors {
		if strings.Contains(strings.ToLower(color), term) {
			return true
		}
	}
	return false
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func sortProducts(products []models.Product, key string) {
	switch key {
	case SortNameAsc, "":
		c := collate.New(language.French)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortNameDesc:
		c := collate.New(language.French)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[j].Name, products[i].Name) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price < products[i].Price
		})
	}
}

// Paginate slices the first visible items of an already filtered and sorted
// result. "Show more" raises visible by the page size; no recomputation
// happens here.
func Paginate(products []models.Product, visible int) []models.Product {
	if visible < 0 {
		visible = 0
	}
	if visible > len(products) {
		visible = len(products)
	}
	return products[:visible]
}

// PriceBounds returns the highest product price, with a floor of 200 to
// keep the price slider usable on small catalogs.
func PriceBounds(products []models.Product) float64 {
	max := 200.0
	for _, p := range products {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

// EmptyStateMessage returns the contextual message shown when a category
// view has no results.
func EmptyStateMessage(category string) string {
	switch category {
	case CategoryNew:
		return "Aucune nouveauté pour le moment"
	case CategoryBestSellers:
		return "Aucun best-seller pour le moment"
	default:
		return "Aucun produit trouvé"
	}
}
