package ident

import (
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"north", "North"},
		{"North", "North"},
		{"NORTH", "North"},
		{"north_west", "NorthWest"},
		{"NORTH_WEST", "NorthWest"},
		{"north-west", "NorthWest"},
		{"northWest", "NorthWest"},

		// Acronyms
		{"XMLParser", "XmlParser"},
		{"getHTTPResponse", "GetHttpResponse"},
		{"OrderID", "OrderId"},
		{"A", "A"},

		// Non-identifier characters
		{"application/json", "ApplicationJson"},
		{"text plain", "TextPlain"},
		{"v1.0", "V10"},

		// Leading digits
		{"1.0", "_10"},
		{"2020-01-01", "_20200101"},

		// Edge cases
		{"", "_"},
		{"---", "_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Sanitize(tt.input)
			if result != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"customer-name", []string{"customer", "name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"north2South", []string{"north2", "South"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenize(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("tokenize(%q) = %v, want %v", tt.input, result, tt.expected)
			}

			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("tokenize(%q)[%d] = %q, want %q", tt.input, i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSnake(t *testing.T) {
	tests := map[string]string{
		"Direction":    "direction",
		"HTTPStatus":   "http_status",
		"HttpStatus":   "http_status",
		"orderID":      "order_id",
		"content-type": "content_type",
		"":             "",
	}

	for input, expected := range tests {
		if result := Snake(input); result != expected {
			t.Errorf("Snake(%q) = %q, want %q", input, result, expected)
		}
	}
}
