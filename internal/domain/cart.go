package domain

// CartItem is one cart line. A line is identified by (Slug, Weight);
// the same product in a different pack size is a separate line.
// Price is the unit price resolved at the time of the last add.
type CartItem struct {
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Weight   int     `json:"weight"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities, used for the cart badge.
func (c *Cart) ItemCount() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Find returns the index of the line matching (slug, weight), or -1.
func (c *Cart) Find(slug string, weight int) int {
	for i, it := range c.Items {
		if it.Slug == slug && it.Weight == weight {
			return i
		}
	}
	return -1
}
