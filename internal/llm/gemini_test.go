package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"has_protein": map[string]any{"type": "boolean"},
			"has_plants":  map[string]any{"type": "boolean"},
			"suggestion":  map[string]any{"type": "string"},
			"kind":        map[string]any{"type": "string", "enum": []any{"perfect", "meh", "oops"}},
			"items": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"has_protein", "has_plants"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 5 {
		t.Fatalf("expected 5 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["has_protein"].Type != "BOOLEAN" {
		t.Fatalf("expected BOOLEAN for has_protein, got %s", schema.Properties["has_protein"].Type)
	}
	if schema.Properties["suggestion"].Type != "STRING" {
		t.Fatalf("expected STRING for suggestion, got %s", schema.Properties["suggestion"].Type)
	}
	if len(schema.Properties["kind"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["kind"].Enum))
	}
	if schema.Properties["items"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for items, got %s", schema.Properties["items"].Type)
	}
	if schema.Properties["items"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for items elements, got %s", schema.Properties["items"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiContents_ImageInlineData(t *testing.T) {
	contents := buildGeminiContents([]Message{{
		Role:    RoleUser,
		Content: "what's on this plate?",
		Image:   &Image{MediaType: "image/jpeg", Data: []byte{0xff, 0xd8}},
	}})
	if len(contents) != 1 {
		t.Fatalf("expected 1 content, got %d", len(contents))
	}
	if contents[0].Role != "user" {
		t.Fatalf("expected user role, got %q", contents[0].Role)
	}
	parts := contents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if parts[0].InlineData == nil || parts[0].InlineData.MIMEType != "image/jpeg" {
		t.Fatal("expected inline image data first")
	}
	if parts[1].Text != "what's on this plate?" {
		t.Fatalf("expected text part second, got %q", parts[1].Text)
	}
}
