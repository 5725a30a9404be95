package models

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want string
	}{
		{"zero", 0, "$0"},
		{"under a thousand", 950, "$950"},
		{"thousands", 95000, "$95,000"},
		{"hundreds of thousands", 950000, "$950,000"},
		{"millions", 2850000, "$2,850,000"},
		{"exact thousand", 1000, "$1,000"},
		{"negative", -12500, "-$12,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPrice(tt.in); got != tt.want {
				t.Errorf("FormatPrice(%d) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatSqft(t *testing.T) {
	if got := FormatSqft(2600); got != "2,600 sqft" {
		t.Errorf("FormatSqft(2600) = %q", got)
	}
	if got := FormatSqft(800); got != "800 sqft" {
		t.Errorf("FormatSqft(800) = %q", got)
	}
}

func TestValidPropertyType(t *testing.T) {
	for _, pt := range PropertyTypes {
		if !ValidPropertyType(string(pt)) {
			t.Errorf("ValidPropertyType(%q) = false", pt)
		}
	}
	for _, s := range []string{"", "castle", "House", "HOUSE"} {
		if ValidPropertyType(s) {
			t.Errorf("ValidPropertyType(%q) = true", s)
		}
	}
}

func TestNewChatTurn(t *testing.T) {
	turn := NewChatTurn(ChatRoleUser, "hello")
	if turn.Role != ChatRoleUser {
		t.Errorf("Role = %q", turn.Role)
	}
	if turn.Content != "hello" {
		t.Errorf("Content = %q", turn.Content)
	}
	if len(turn.ID) != 8 {
		t.Errorf("ID length = %d, want 8", len(turn.ID))
	}
	if turn.SentAt.IsZero() {
		t.Error("SentAt should be set")
	}
}
