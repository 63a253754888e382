package order

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// CartItem is one line of the customer's selection, keyed by product id.
// Prices are whole rubles.
type CartItem struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price" validate:"min=0"`
	Quantity int    `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Image    string `json:"image,omitempty"`
}

// Qty returns the effective quantity; an absent quantity counts as 1.
func (i CartItem) Qty() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Qty())
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Comment string `json:"comment,omitempty"`
}

// Order is built fresh for every submission attempt and lives only for the
// duration of the request; the relayed chat message is the system of record.
type Order struct {
	Items    []CartItem `json:"items" validate:"omitempty,dive"`
	Customer Customer   `json:"customer"`
	Total    int64      `json:"total"`
	Date     time.Time  `json:"date,omitempty"`
}

// ComputedTotal is the sum of price*quantity over all items. The submitted
// Total field is client-supplied and is not replaced by this value.
func (o Order) ComputedTotal() int64 {
	var sum int64
	for _, it := range o.Items {
		sum += it.Subtotal()
	}
	return sum
}

// NewID mints a display order identifier of the form ORD-<HEX>-<unix>.
// It is for humans reading the chat, not a dedup or idempotency key.
func NewID(now time.Time) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively impossible; fall back to the
		// clock so an order is never lost over a cosmetic token.
		return fmt.Sprintf("ORD-%X-%d", now.UnixNano()&0xFFFFFFFF, now.Unix())
	}
	return fmt.Sprintf("ORD-%s-%d", strings.ToUpper(hex.EncodeToString(buf)), now.Unix())
}
