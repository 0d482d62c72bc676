package expr

import (
	"encoding/json"
	"testing"
	"time"
)

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"empty string", "", false},
		{"string", "x", true},
		{"zero int", 0, false},
		{"int", 7, true},
		{"negative int", -1, true},
		{"zero float", 0.0, false},
		{"float", 0.5, true},
		{"zero int32", int32(0), false},
		{"uint", uint(2), true},
		{"empty slice", []any{}, false},
		{"slice", []any{1}, true},
		{"empty string slice", []string{}, false},
		{"empty map", map[string]any{}, false},
		{"map", map[string]any{"k": 1}, true},
		{"zero json number", json.Number("0"), false},
		{"json number", json.Number("3"), true},
		{"struct", struct{ X int }{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTruthy(tt.in); got != tt.want {
				t.Errorf("IsTruthy(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{"int", 5, 5, true},
		{"int64", int64(-3), -3, true},
		{"int16", int16(9), 9, true},
		{"uint8", uint8(255), 255, true},
		{"float64", 1.5, 1.5, true},
		{"float32", float32(2), 2, true},
		{"true", true, 1, true},
		{"false", false, 0, true},
		{"numeric string", "42", 42, true},
		{"float string", "3.14", 3.14, true},
		{"padded string", "  7 ", 7, true},
		{"json number", json.Number("12"), 12, true},
		{"word string", "abc", 0, false},
		{"empty string", "", 0, false},
		{"nil", nil, 0, false},
		{"slice", []int{1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ToFloat64(%v) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ToFloat64(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "x", "x"},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
		{"whole float", float64(2), "2"},
		{"bool", true, "true"},
		{"stringer", 3 * time.Second, "3s"},
		{"slice", []string{"a", "b"}, "[a b]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.in); got != tt.want {
				t.Errorf("ToString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
