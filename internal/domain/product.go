package domain

// Variant is one purchasable size of a product: a pack weight in grams
// with its own price.
type Variant struct {
	Weight int     `json:"weight"`
	Price  float64 `json:"price"`
}

type Product struct {
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Price       float64   `json:"price,omitempty"` // flat price, used only when variants are absent
	Variants    []Variant `json:"variants"`
}
