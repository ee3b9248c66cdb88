package entity

import "testing"

func TestIsOrderStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{OrderStatusPending, true},
		{OrderStatusConfirmed, true},
		{OrderStatusPreparing, true},
		{OrderStatusReady, true},
		{OrderStatusOutForDelivery, true},
		{OrderStatusDelivered, true},
		{OrderStatusCancelled, true},
		{"shipped", false},
		{"", false},
		{"PENDING", false},
	}
	for _, tt := range tests {
		if got := IsOrderStatus(tt.status); got != tt.want {
			t.Errorf("IsOrderStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCanCancel(t *testing.T) {
	cancellable := map[string]bool{
		OrderStatusPending:        true,
		OrderStatusConfirmed:      true,
		OrderStatusPreparing:      true,
		OrderStatusReady:          false,
		OrderStatusOutForDelivery: false,
		OrderStatusDelivered:      false,
		OrderStatusCancelled:      false,
	}
	for status, want := range cancellable {
		o := Order{Status: status}
		if got := o.CanCancel(); got != want {
			t.Errorf("CanCancel(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestIsTerminalOrderStatus(t *testing.T) {
	for _, s := range []string{OrderStatusDelivered, OrderStatusCancelled} {
		if !IsTerminalOrderStatus(s) {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []string{OrderStatusPending, OrderStatusReady, OrderStatusOutForDelivery} {
		if IsTerminalOrderStatus(s) {
			t.Errorf("%s should not be terminal", s)
		}
	}
}
