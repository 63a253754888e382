// Package cart holds the customer's in-progress selection and keeps it
// synchronized to durable per-session storage: the whole item list is
// written out as one JSON value after every mutation.
package cart

import "github.com/alfat81/fto/internal/order"

// Cart is the in-memory item list. Mutations are synchronous; persistence
// is the Manager's concern.
type Cart struct {
	items []order.CartItem
}

func New(items []order.CartItem) *Cart {
	c := &Cart{}
	c.items = append(c.items, items...)
	return c
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy, so callers cannot mutate the cart behind its back.
func (c *Cart) Items() []order.CartItem {
	out := make([]order.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Add puts an item into the cart. A repeated id increments the existing
// line's quantity instead of appending a duplicate; a new id is appended
// with quantity 1.
func (c *Cart) Add(item order.CartItem) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity = c.items[i].Qty() + 1
			return
		}
	}
	item.Quantity = 1
	c.items = append(c.items, item)
}

// RemoveByID removes the line with the given id. Returns false when no such
// line exists.
func (c *Cart) RemoveByID(id string) bool {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAt removes the line at the given position. Out-of-range indices are
// a no-op returning false.
func (c *Cart) RemoveAt(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return true
}

// ChangeQuantity adjusts a line's quantity by delta, clamped at 1: a
// decrease that would drop below one unit leaves the line unchanged.
// Returns false when the id is unknown.
func (c *Cart) ChangeQuantity(id string, delta int) bool {
	for i := range c.items {
		if c.items[i].ID == id {
			next := c.items[i].Qty() + delta
			if next < 1 {
				next = c.items[i].Qty()
			}
			c.items[i].Quantity = next
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.items = nil
}

// Total recomputes the sum of price*quantity on every call; it is never
// cached across mutations.
func (c *Cart) Total() int64 {
	var sum int64
	for _, it := range c.items {
		sum += it.Subtotal()
	}
	return sum
}
