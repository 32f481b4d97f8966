package ai

import (
	"testing"

	"sitegen_ai_server/internal/spec"
)

const sampleSpecJSON = `{
  "project": {"name": "Bakery", "archetype": "restaurant"},
  "designTokens": {
    "colors": {"primary": "#C62828", "background": "#FFFFFF", "foreground": "#111111"},
    "font": {"heading": "Inter", "body": "Inter"},
    "radius": "12px",
    "spacingScale": "normal",
    "typeScale": "md"
  },
  "pages": [
    {"route": "/", "seo": {"title": "Home", "description": "Landing"}, "sections": [
      {"type": "Hero", "props": {"headline": "Fresh Bread"}},
      {"type": "ContactForm", "props": {}}
    ]}
  ]
}`

func TestParseSpecResponsePlainJSON(t *testing.T) {
	ws, err := ParseSpecResponse(sampleSpecJSON)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ws.Project.Name != "Bakery" {
		t.Fatalf("unexpected project name %q", ws.Project.Name)
	}
	if ws.Pages[0].Sections[0].Type != spec.SectionHero {
		t.Fatalf("unexpected first section %q", ws.Pages[0].Sections[0].Type)
	}
}

func TestParseSpecResponseStripsCodeFences(t *testing.T) {
	ws, err := ParseSpecResponse("```json\n" + sampleSpecJSON + "\n```")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(ws.Pages) == 0 {
		t.Fatal("expected pages after fence stripping")
	}
}

func TestParseSpecResponseUnwrapsEnvelope(t *testing.T) {
	ws, err := ParseSpecResponse(`{"spec": ` + sampleSpecJSON + `}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ws.Project.Name != "Bakery" {
		t.Fatalf("expected wrapped spec to be unwrapped, got %+v", ws.Project)
	}
}

func TestParseSpecResponseInvalidJSON(t *testing.T) {
	_, err := ParseSpecResponse("sorry, I cannot do that")
	svcErr, ok := err.(*ExternalServiceError)
	if !ok {
		t.Fatalf("expected *ExternalServiceError, got %v", err)
	}
	if svcErr.Kind != KindBadPayload {
		t.Fatalf("expected bad_payload kind, got %q", svcErr.Kind)
	}
}

func TestParseSpecResponseValidationFailure(t *testing.T) {
	// Routes must start with a slash; normalization cannot repair this.
	raw := `{"pages": [{"route": "about", "sections": [{"type": "Hero"}]}]}`

	_, err := ParseSpecResponse(raw)
	if _, ok := err.(*spec.ValidationError); !ok {
		t.Fatalf("expected *spec.ValidationError, got %v", err)
	}
}

func TestParseSpecResponseNormalizes(t *testing.T) {
	// Pages given by name with bare-string sections, no tokens at all.
	raw := `{"pages": [{"name": "Home", "sections": ["Hero"]}]}`

	ws, err := ParseSpecResponse(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ws.Pages[0].Route != "/" {
		t.Fatalf("expected derived route, got %q", ws.Pages[0].Route)
	}
	if ws.DesignTokens.SpacingScale == "" {
		t.Fatal("expected token defaults to be filled")
	}
}
