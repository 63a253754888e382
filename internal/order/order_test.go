package order

import (
	"regexp"
	"testing"
	"time"
)

var orderIDPattern = regexp.MustCompile(`^ORD-[A-F0-9]+-\d+$`)

func TestNewID(t *testing.T) {
	now := time.Now()

	id := NewID(now)
	if !orderIDPattern.MatchString(id) {
		t.Fatalf("NewID produced %q, want match for %s", id, orderIDPattern)
	}

	// Two submissions of the same payload get two distinct ids: the id is
	// for humans, not for deduplication.
	if NewID(now) == NewID(now) {
		t.Error("consecutive ids should differ")
	}
}

func TestCartItemQty(t *testing.T) {
	if got := (CartItem{}).Qty(); got != 1 {
		t.Errorf("absent quantity counts as 1, got %d", got)
	}
	if got := (CartItem{Quantity: 3}).Qty(); got != 3 {
		t.Errorf("Qty = %d, want 3", got)
	}
}

func TestComputedTotal(t *testing.T) {
	o := Order{
		Items: []CartItem{
			{ID: "p1", Name: "Стул", Price: 1500, Quantity: 2},
			{ID: "p2", Name: "Стол", Price: 4000},
		},
	}
	if got := o.ComputedTotal(); got != 7000 {
		t.Errorf("ComputedTotal = %d, want 7000", got)
	}
}
