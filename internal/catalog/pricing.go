package catalog

import "github.com/mudit2208/mehta-masala-storefront/internal/domain"

// UnitPrice resolves the price of the variant with the exact weight.
// No matching variant is not an error: the product's flat price is used
// if present, otherwise 0.
func UnitPrice(p *domain.Product, weight int) float64 {
	for _, v := range p.Variants {
		if v.Weight == weight {
			return v.Price
		}
	}
	return p.Price
}

// StartingPrice is the minimum variant price, shown as the "from" price.
func StartingPrice(p *domain.Product) float64 {
	if len(p.Variants) == 0 {
		return p.Price
	}
	min := p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price < min {
			min = v.Price
		}
	}
	return min
}

// Weights lists the variant weights in declaration order, with a single
// default size when the product has no variants.
func Weights(p *domain.Product) []int {
	if len(p.Variants) == 0 {
		return []int{100}
	}
	weights := make([]int, len(p.Variants))
	for i, v := range p.Variants {
		weights[i] = v.Weight
	}
	return weights
}
