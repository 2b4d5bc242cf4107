package llm

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := canonicalModel(tt.input, geminiAliases)
		if got != tt.expected {
			t.Errorf("canonicalModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "A personality portrait",
		"properties": map[string]any{
			"headline": map[string]any{"type": "string"},
			"tone":     map[string]any{"type": "string", "enum": []any{"warm", "neutral"}},
			"indexes":  map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
		},
		"required": []any{"headline"},
	}

	schema := geminiSchema(def)
	if schema.Type != genai.TypeObject {
		t.Fatalf("type = %v, want object", schema.Type)
	}
	if schema.Description != "A personality portrait" {
		t.Fatalf("description = %q", schema.Description)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("properties = %d, want 3", len(schema.Properties))
	}
	if schema.Properties["headline"].Type != genai.TypeString {
		t.Error("headline should be a string")
	}
	if got := schema.Properties["tone"].Enum; len(got) != 2 {
		t.Errorf("tone enum = %v, want 2 values", got)
	}
	if schema.Properties["indexes"].Items == nil || schema.Properties["indexes"].Items.Type != genai.TypeInteger {
		t.Error("indexes items should be integers")
	}
	if len(schema.Required) != 1 || schema.Required[0] != "headline" {
		t.Errorf("required = %v, want [headline]", schema.Required)
	}
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}
