package ident

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"entity", "entity"},
		{"Entity", "entity"},
		{"ENTITY", "entity"},
		{"target_entity", "targetentity"},

		// CamelCase variations
		{"playerEntity", "playerentity"},
		{"PlayerEntity", "playerentity"},
		{"XMLParser", "xmlparser"},

		// Edge cases
		{"", ""},
		{"a", "a"},
		{"A", "a"},

		// Mixed separators
		{"player_entity-ID", "playerentityid"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"GameEvent", "game_event"},
		{"PlayerEvent", "player_event"},
		{"UiNotification", "ui_notification"},
		{"XMLMessage", "xml_message"},
		{"getHTTPResponse", "get_http_response"},
		{"X", "x"},
		{"", ""},
		{"already_snake", "already_snake"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Snake(tt.input)
			if result != tt.expected {
				t.Errorf("Snake(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestExport(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"entity", "Entity"},
		{"player_id", "PlayerId"},
		{"attackPower", "AttackPower"},
		{"score", "Score"},
		{"reason", "Reason"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Export(tt.input)
			if result != tt.expected {
				t.Errorf("Export(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
