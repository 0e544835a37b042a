package shop

import "strconv"

// ProductQuery carries the raw query parameters of GET /products. Empty
// strings mean "not supplied".
type ProductQuery struct {
	Name     string
	MaxPrice string
}

// FilterProducts narrows products by exact name match and inclusive price
// ceiling, preserving insertion order. With no criteria the full slice comes
// back untouched. A non-numeric MaxPrice matches nothing.
func FilterProducts(products []Product, q ProductQuery) []Product {
	byName := q.Name != ""
	byPrice := q.MaxPrice != ""

	if !byName && !byPrice {
		return products
	}

	var (
		maxPrice float64
		priceErr error
	)
	if byPrice {
		maxPrice, priceErr = strconv.ParseFloat(q.MaxPrice, 64)
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if byName && p.Name != q.Name {
			continue
		}
		if byPrice && (priceErr != nil || p.Price > maxPrice) {
			continue
		}
		out = append(out, p)
	}
	return out
}
