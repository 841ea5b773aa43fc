package helpers

import (
	"strings"
	"testing"
)

func TestTraverse(t *testing.T) {
	tests := []struct {
		Title         string
		Run           func() (any, error)
		Expected      any
		ExpectedError string
	}{
		{
			Title: "slice: OK",
			Run: func() (any, error) {
				return TraverseWithError([]int{1, 2, 3}, []any{1}, 0)
			},
			Expected: 2,
		},
		{
			Title: "slice: invalid key",
			Run: func() (any, error) {
				return TraverseWithError([]int{1, 2, 3}, []any{"x"}, 0)
			},
			Expected:      0,
			ExpectedError: "expected int key",
		},
		{
			Title: "slice: out of range",
			Run: func() (any, error) {
				return TraverseWithError([]int{1, 2, 3}, []any{4}, 5)
			},
			Expected:      5,
			ExpectedError: "index 4 out of range 2",
		},
		{
			Title: "map: OK",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{"a": 1}, []any{"a"}, 1)
			},
			Expected: 1,
		},
		{
			Title: "map: key not found",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{"a": 1}, []any{"b"}, 2)
			},
			Expected:      2,
			ExpectedError: "key b not found",
		},
		{
			Title: "map: invalid result type",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{"a": 1}, []any{"a"}, "?")
			},
			Expected:      "?",
			ExpectedError: "could not type assert final value int into string",
		},
		{
			Title: "deep: OK",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{
					"error": map[string]any{
						"details": []any{
							0,
							map[string]any{
								"message": "boom",
							},
						},
					},
				}, []any{"error", "details", 1, "message"}, "")
			},
			Expected: "boom",
		},
		{
			Title: "deep: traverse error",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{"a": []any{nil}}, []any{"a", 0, "b"}, 4)
			},
			Expected:      4,
			ExpectedError: "cannot traverse object of type <nil>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			res, err := tt.Run()
			if tt.ExpectedError == "" && err != nil {
				t.Fatalf("no error expected, but got one: %v", err)
			}
			if tt.ExpectedError != "" {
				if err == nil {
					t.Fatalf("expected '%s' in error, but got no error", tt.ExpectedError)
				} else if !strings.Contains(err.Error(), tt.ExpectedError) {
					t.Fatalf("expected '%s' in error, but got: %v", tt.ExpectedError, err)
				}
			}
			if res != tt.Expected {
				t.Fatalf("expected %v (%T), got %v (%T)", tt.Expected, tt.Expected, res, res)
			}
		})
	}
}

func TestSafeFloat(t *testing.T) {
	tests := []struct {
		Title    string
		Value    any
		Fallback float64
		Expected float64
	}{
		{"float64", 59.9, 0, 59.9},
		{"int", 60, 0, 60},
		{"numeric string", "59.90", 0, 59.9},
		{"numeric string with spaces", " 8.99 ", 0, 8.99},
		{"non-numeric string", "abc", 0, 0},
		{"nil", nil, 0, 0},
		{"bool", true, 1.5, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			if res := SafeFloat(tt.Value, tt.Fallback); res != tt.Expected {
				t.Fatalf("expected %v, got %v", tt.Expected, res)
			}
		})
	}
}

func TestSafeInt(t *testing.T) {
	tests := []struct {
		Title    string
		Value    any
		Fallback int
		Expected int
	}{
		{"float64 from JSON", float64(3), 1, 3},
		{"int", 2, 1, 2},
		{"numeric string", " 4 ", 1, 4},
		{"fractional string", "4.5", 1, 1},
		{"nil", nil, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			if res := SafeInt(tt.Value, tt.Fallback); res != tt.Expected {
				t.Fatalf("expected %v, got %v", tt.Expected, res)
			}
		})
	}
}

func TestCompareStrings(t *testing.T) {
	tests := []struct {
		Title    string
		S1       string
		S2       string
		Expected bool
	}{
		{"identical", "Cancelado", "Cancelado", true},
		{"case-insensitive", "CANCELADO", "cancelado", true},
		{"accent-insensitive", "gravação", "GRAVACAO", true},
		{"different", "Cancelado", "Confirmado", false},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			res, err := CompareStrings(tt.S1, tt.S2)
			if err != nil {
				t.Fatalf("no error expected, but got one: %v", err)
			}
			if res != tt.Expected {
				t.Fatalf("expected %v comparing %q and %q", tt.Expected, tt.S1, tt.S2)
			}
		})
	}
}

func TestStringInSlice(t *testing.T) {
	statuses := []string{"CANCELLED", "Cancelado", "IN_CANCEL"}

	found, err := StringInSlice("cancelado", statuses)
	if err != nil {
		t.Fatalf("no error expected, but got one: %v", err)
	}
	if !found {
		t.Fatalf("expected 'cancelado' to match ignoring case")
	}

	found, err = StringInSlice("READY_TO_SHIP", statuses)
	if err != nil {
		t.Fatalf("no error expected, but got one: %v", err)
	}
	if found {
		t.Fatalf("did not expect 'READY_TO_SHIP' to match")
	}
}
