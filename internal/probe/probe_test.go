package probe

import "testing"

func TestExactPattern(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"zoom.us", `^zoom\.us$`},
		{"Lark Helper (Iron)", `^Lark Helper \(Iron\)$`},
		{"TencentMeeting", `^TencentMeeting$`},
		{"Microsoft Teams", `^Microsoft Teams$`},
	}
	for _, tt := range tests {
		if got := exactPattern(tt.name); got != tt.want {
			t.Errorf("exactPattern(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
