package catalog

import "github.com/mudit2208/mehta-masala-storefront/internal/domain"

// FallbackProducts is the embedded list used when the catalog source is
// unreachable. Returned as a fresh slice so callers cannot mutate it.
func FallbackProducts() []domain.Product {
	return []domain.Product{
		{
			Slug:        "red-chilli",
			Name:        "Red Chilli Powder",
			Description: "100% pure red chilli powder",
			Image:       "assets/images/red-chilli.webp",
			Variants: []domain.Variant{
				{Weight: 100, Price: 40},
				{Weight: 250, Price: 100},
				{Weight: 500, Price: 200},
				{Weight: 1000, Price: 400},
			},
		},
		{
			Slug:        "turmeric",
			Name:        "Turmeric Powder",
			Description: "Pure haldi powder",
			Image:       "assets/images/turmeric.webp",
			Variants: []domain.Variant{
				{Weight: 100, Price: 38},
				{Weight: 250, Price: 95},
				{Weight: 500, Price: 190},
				{Weight: 1000, Price: 380},
			},
		},
		{
			Slug:        "dhaniya",
			Name:        "Coriander Powder",
			Description: "Fresh & aromatic coriander powder",
			Image:       "assets/images/coriander.webp",
			Variants: []domain.Variant{
				{Weight: 100, Price: 12},
				{Weight: 250, Price: 30},
				{Weight: 500, Price: 60},
				{Weight: 1000, Price: 120},
			},
		},
		{
			Slug:        "jeeravan",
			Name:        "Jeeravan Masala",
			Description: "Special Mehta Masala recipe",
			Image:       "assets/images/jeeravan.webp",
			Variants: []domain.Variant{
				{Weight: 100, Price: 42},
				{Weight: 250, Price: 105},
				{Weight: 500, Price: 210},
				{Weight: 1000, Price: 420},
			},
		},
	}
}
