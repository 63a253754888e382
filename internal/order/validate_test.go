package order

import "testing"

func validOrder() Order {
	return Order{
		Items:    []CartItem{{ID: "p1", Name: "Стул", Price: 1500, Quantity: 2}},
		Customer: Customer{Name: "Иван", Phone: "+79601786738"},
		Total:    3000,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Order)
		wantMsg string
	}{
		{
			name:   "valid order passes",
			mutate: func(o *Order) {},
		},
		{
			name:    "empty items",
			mutate:  func(o *Order) { o.Items = nil },
			wantMsg: MsgMissingItems,
		},
		{
			name: "blank customer",
			mutate: func(o *Order) {
				o.Customer = Customer{Name: "", Phone: ""}
			},
			wantMsg: MsgMissingCustomerData,
		},
		{
			name:    "whitespace name",
			mutate:  func(o *Order) { o.Customer.Name = "   " },
			wantMsg: MsgMissingCustomerData,
		},
		{
			name:    "zero total",
			mutate:  func(o *Order) { o.Total = 0 },
			wantMsg: MsgInvalidTotal,
		},
		{
			name:    "negative total",
			mutate:  func(o *Order) { o.Total = -100 },
			wantMsg: MsgInvalidTotal,
		},
		{
			name:    "item without id",
			mutate:  func(o *Order) { o.Items[0].ID = "" },
			wantMsg: MsgInvalidItems,
		},
		{
			name:    "negative price",
			mutate:  func(o *Order) { o.Items[0].Price = -1 },
			wantMsg: MsgInvalidItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOrder()
			tt.mutate(&o)

			err := Validate(&o)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("Validate returned %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate returned nil, want error")
			}
			if err.Code != CodeValidation {
				t.Errorf("code = %s, want %s", err.Code, CodeValidation)
			}
			if err.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateOrderOfChecks(t *testing.T) {
	// Everything is wrong at once; the items check wins.
	o := Order{}
	err := Validate(&o)
	if err == nil || err.Message != MsgMissingItems {
		t.Fatalf("got %v, want %q first", err, MsgMissingItems)
	}
}
