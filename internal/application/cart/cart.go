package cart

// Cart is the per-session product -> quantity mapping, owned by the session
// layer and mutated only through these methods. Quantities are always >= 1;
// entries never persist beyond the session lifetime.
type Cart struct {
	items map[string]int
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{items: map[string]int{}}
}

// FromMap rebuilds a cart from its session representation, dropping any
// entry that violates the quantity >= 1 invariant.
func FromMap(m map[string]int) *Cart {
	c := New()
	for id, qty := range m {
		if id == "" || qty < 1 {
			continue
		}
		c.items[id] = qty
	}
	return c
}

// Add increments the entry for productID, inserting it at quantity 1.
func (c *Cart) Add(productID string) {
	c.items[productID]++
}

// Quantity returns the quantity for productID, zero when absent.
func (c *Cart) Quantity(productID string) int {
	return c.items[productID]
}

// Items returns a copy of the mapping for session storage or iteration.
func (c *Cart) Items() map[string]int {
	out := make(map[string]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}

// Len is the number of distinct products.
func (c *Cart) Len() int {
	return len(c.items)
}

// Units is the sum of all quantities.
func (c *Cart) Units() int {
	total := 0
	for _, qty := range c.items {
		total += qty
	}
	return total
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear drops every entry.
func (c *Cart) Clear() {
	c.items = map[string]int{}
}
