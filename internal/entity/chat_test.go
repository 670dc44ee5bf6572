package entity

import (
	"encoding/json"
	"testing"
)

func TestParseChatContext(t *testing.T) {
	tests := []struct {
		in   string
		want ChatContext
	}{
		{in: "none", want: ContextNone},
		{in: "product_search", want: ContextProductSearch},
		{in: "repair_booking", want: ContextRepairBooking},
		{in: "garbage", want: ContextNone},
		{in: "", want: ContextNone},
	}

	for _, tt := range tests {
		if got := ParseChatContext(tt.in); got != tt.want {
			t.Fatalf("ParseChatContext(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestChatContextJSON(t *testing.T) {
	data, err := json.Marshal(ContextRepairBooking)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"repair_booking"` {
		t.Fatalf("marshaled context = %s", data)
	}

	var ctx ChatContext
	if err := json.Unmarshal([]byte(`"product_search"`), &ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx != ContextProductSearch {
		t.Fatalf("unmarshaled context = %v, want product search", ctx)
	}

	// an unknown name in a stored snapshot degrades to none
	if err := json.Unmarshal([]byte(`"weird"`), &ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx != ContextNone {
		t.Fatalf("unknown context = %v, want none", ctx)
	}
}
