package domain

import (
	"testing"

	m "github.com/mouse-blink/touchall/internal/model"
)

func TestParseDirective_IgnoreAll(t *testing.T) {
	sup, ok := parseDirective("# pydantic-touchall: ignore")
	if !ok {
		t.Fatalf("expected directive to be parsed")
	}

	if sup.Kind != m.SuppressAll {
		t.Fatalf("expected SuppressAll, got %v", sup.Kind)
	}
}

func TestParseDirective_ShortAlias(t *testing.T) {
	sup, ok := parseDirective("# touchall: ignore")
	if !ok || sup.Kind != m.SuppressAll {
		t.Fatalf("expected the short alias to parse as SuppressAll")
	}
}

func TestParseDirective_IgnoreFields(t *testing.T) {
	sup, ok := parseDirective("# touchall: ignore-field age, address ")
	if !ok {
		t.Fatalf("expected directive to be parsed")
	}

	if sup.Kind != m.SuppressFields {
		t.Fatalf("expected SuppressFields, got %v", sup.Kind)
	}

	if len(sup.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %v", sup.Fields)
	}

	if !sup.Suppressed("age") || !sup.Suppressed("address") {
		t.Fatalf("expected age and address suppressed")
	}

	if sup.Suppressed("name") {
		t.Fatalf("name must not be suppressed")
	}
}

func TestParseDirective_MalformedEntriesSkipped(t *testing.T) {
	sup, ok := parseDirective("# touchall: ignore-field age,, ,address")
	if !ok {
		t.Fatalf("expected best-effort parse to succeed")
	}

	if len(sup.Fields) != 2 {
		t.Fatalf("expected empty entries to be dropped, got %v", sup.Fields)
	}
}

func TestParseDirective_Unrecognized(t *testing.T) {
	for _, text := range []string{
		"# a plain comment",
		"# touchall: something-else",
		"# touchall ignore",
		"# other-tool: ignore",
	} {
		if _, ok := parseDirective(text); ok {
			t.Errorf("expected %q to be rejected", text)
		}
	}
}

func TestSuppressionIndex_OwnLineWinsOverPreceding(t *testing.T) {
	const src = `class User(BaseModel):
    name: str

# touchall: ignore-field name
user = User()  # touchall: ignore
`

	root, content := parseSource(t, src)
	idx := buildSuppressionIndex(root, content)

	sup := idx.resolve(5)
	if sup.Kind != m.SuppressAll {
		t.Fatalf("expected the call line's directive to win, got %v", sup.Kind)
	}
}

func TestSuppressionIndex_PrecedingLineFallback(t *testing.T) {
	const src = `class User(BaseModel):
    name: str

# touchall: ignore
user = User()
`

	root, content := parseSource(t, src)
	idx := buildSuppressionIndex(root, content)

	if sup := idx.resolve(5); sup.Kind != m.SuppressAll {
		t.Fatalf("expected the preceding line's directive, got %v", sup.Kind)
	}

	if sup := idx.resolve(2); sup.Kind != m.SuppressNone {
		t.Fatalf("expected no suppression away from the directive, got %v", sup.Kind)
	}
}
