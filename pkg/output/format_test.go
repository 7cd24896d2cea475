package output

import (
	"strings"
	"testing"
)

func TestJSONIndent(t *testing.T) {
	rendered, err := JSON(4)(map[string]any{"name": "kitchen"})
	if err != nil {
		t.Fatalf("JSON formatter failed: %v", err)
	}

	if !strings.Contains(rendered, "    \"name\": \"kitchen\"") {
		t.Errorf("Expected 4-space indent, got:\n%s", rendered)
	}
	if !strings.HasSuffix(rendered, "\n") {
		t.Error("Expected trailing newline")
	}
}

func TestJSONDefaultIndent(t *testing.T) {
	rendered, err := JSON(0)(map[string]any{"a": 1})
	if err != nil {
		t.Fatalf("JSON formatter failed: %v", err)
	}

	if !strings.Contains(rendered, "  \"a\": 1") {
		t.Errorf("Expected default 2-space indent, got:\n%s", rendered)
	}
}

func TestYAMLIndent(t *testing.T) {
	rendered, err := YAML(4)(map[string]any{
		"coordinates": map[string]any{"latitude": 59.3},
	})
	if err != nil {
		t.Fatalf("YAML formatter failed: %v", err)
	}

	if !strings.Contains(rendered, "coordinates:\n    latitude:") {
		t.Errorf("Expected 4-space nested indent, got:\n%s", rendered)
	}
}

func TestJSONUnencodableValue(t *testing.T) {
	if _, err := JSON(2)(func() {}); err == nil {
		t.Error("Expected error for unencodable value")
	}
}
