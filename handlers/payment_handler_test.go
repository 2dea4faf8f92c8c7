// handlers/payment_handler_test.go
package handlers

import "testing"

func TestAmountInCents(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		price float64
		want  int64
	}{
		{"whole dollars", 10, 1000},
		{"tier price with float dust", 19.99, 1999},
		{"single cent", 0.01, 1},
		{"large amount", 1234.56, 123456},
		{"another truncation-prone price", 29.99, 2999},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := amountInCents(tt.price); got != tt.want {
				t.Errorf("amountInCents(%v): got %d, want %d", tt.price, got, tt.want)
			}
		})
	}
}
