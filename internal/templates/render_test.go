package templates

import (
	"strings"
	"testing"

	"sitegen_ai_server/internal/spec"
)

func testTokens() spec.DesignTokens {
	return spec.DefaultTokens()
}

func TestRenderSectionIsDeterministic(t *testing.T) {
	sec := spec.Section{
		Type:  spec.SectionHero,
		Props: map[string]any{"headline": "Welcome", "sub": "To the test"},
	}

	first, err := RenderSection("Hero", sec, testTokens())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	second, err := RenderSection("Hero", sec, testTokens())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if first != second {
		t.Fatal("expected identical output for identical input")
	}
}

func TestRenderSectionEveryKnownType(t *testing.T) {
	for _, st := range spec.KnownSectionTypes {
		src, err := RenderSection(string(st), spec.Section{Type: st, Props: map[string]any{}}, testTokens())
		if err != nil {
			t.Fatalf("render %s failed: %v", st, err)
		}
		if !strings.Contains(src, "export default function "+string(st)) {
			t.Fatalf("render %s: missing component export, got:\n%s", st, src)
		}
	}
}

func TestRenderSectionUnknownTypeFallsBack(t *testing.T) {
	sec := spec.Section{Type: "Carousel", Props: map[string]any{}}

	src, err := RenderSection("Carousel", sec, testTokens())
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if !strings.Contains(src, "Carousel Section") {
		t.Fatalf("expected generic block for unknown type, got:\n%s", src)
	}
}

func TestRenderSectionUsesHeadlineProp(t *testing.T) {
	sec := spec.Section{
		Type:  spec.SectionHero,
		Props: map[string]any{"headline": "Fresh Bread Daily"},
	}

	src, err := RenderSection("Hero", sec, testTokens())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(src, "Fresh Bread Daily") {
		t.Fatalf("expected headline prop in output, got:\n%s", src)
	}
}

func TestRenderSectionEscapesMarkup(t *testing.T) {
	sec := spec.Section{
		Type:  spec.SectionHero,
		Props: map[string]any{"headline": "<script>alert(1)</script>"},
	}

	src, err := RenderSection("Hero", sec, testTokens())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(src, "<script>") {
		t.Fatal("expected markup in props to be escaped")
	}
}

func TestRenderSectionRejectsNonScalarProp(t *testing.T) {
	sec := spec.Section{
		Type:  spec.SectionHero,
		Props: map[string]any{"headline": map[string]any{"text": "nested"}},
	}

	_, err := RenderSection("Hero", sec, testTokens())
	renderErr, ok := err.(*RenderError)
	if !ok {
		t.Fatalf("expected *RenderError, got %v", err)
	}
	if !strings.Contains(renderErr.Detail, "headline") {
		t.Fatalf("expected error to name the prop, got %q", renderErr.Detail)
	}
}

func TestProductGridCountProp(t *testing.T) {
	cases := []struct {
		name  string
		count any
		want  string
	}{
		{"number", float64(4), "length: 4"},
		{"numeric string", "9", "length: 9"},
		{"word", "six", "length: 6"},
		{"negative", float64(-2), "length: 6"},
		{"braces", "6 }); alert(1); ({", "length: 6"},
	}
	for _, tc := range cases {
		sec := spec.Section{Type: spec.SectionProductGrid, Props: map[string]any{"count": tc.count}}
		src, err := RenderSection("ProductGrid", sec, testTokens())
		if err != nil {
			t.Fatalf("%s: render failed: %v", tc.name, err)
		}
		if !strings.Contains(src, tc.want) {
			t.Fatalf("%s: expected %q in output, got:\n%s", tc.name, tc.want, src)
		}
	}
}

func TestSpacingScaleChangesPadding(t *testing.T) {
	tight := testTokens()
	tight.SpacingScale = "tight"
	roomy := testTokens()
	roomy.SpacingScale = "roomy"
	sec := spec.Section{Type: spec.SectionFAQ, Props: map[string]any{}}

	tightSrc, _ := RenderSection("FAQ", sec, tight)
	roomySrc, _ := RenderSection("FAQ", sec, roomy)

	if !strings.Contains(tightSrc, "py-12") {
		t.Fatal("expected tight spacing to use py-12")
	}
	if !strings.Contains(roomySrc, "py-28") {
		t.Fatal("expected roomy spacing to use py-28")
	}
}

func TestTypeScaleChangesHeadingSize(t *testing.T) {
	lg := testTokens()
	lg.TypeScale = "lg"
	sec := spec.Section{Type: spec.SectionCTA, Props: map[string]any{}}

	src, err := RenderSection("CTA", sec, lg)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(src, "text-5xl") {
		t.Fatalf("expected lg type scale heading, got:\n%s", src)
	}
}

func TestFeatureGridUsesItemsProp(t *testing.T) {
	sec := spec.Section{
		Type:  spec.SectionFeatureGrid,
		Props: map[string]any{"items": []any{"Speedy", "Reliable"}},
	}

	src, err := RenderSection("FeatureGrid", sec, testTokens())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(src, "Speedy") || !strings.Contains(src, "Reliable") {
		t.Fatalf("expected items in output, got:\n%s", src)
	}
}

func TestTailwindConfigCarriesTokens(t *testing.T) {
	tokens := testTokens()
	tokens.Colors.Primary = "#6D28D9"
	tokens.Font.Heading = "Merriweather"
	tokens.Radius = "4px"

	cfg := TailwindConfig(tokens)
	for _, want := range []string{"#6D28D9", "Merriweather", "4px"} {
		if !strings.Contains(cfg, want) {
			t.Fatalf("expected %q in tailwind config:\n%s", want, cfg)
		}
	}
}

func TestNPMName(t *testing.T) {
	cases := map[string]string{
		"My Cool Site!": "my-cool-site",
		"---":           "website",
		"Acme":          "acme",
	}
	for in, want := range cases {
		if got := NPMName(in); got != want {
			t.Fatalf("NPMName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderHeaderLinksPages(t *testing.T) {
	links := []NavLink{{Label: "Home", Href: "/"}, {Label: "About", Href: "/about"}}

	src := RenderHeader("Header", "Acme", links, testTokens())
	if !strings.Contains(src, `<Link to="/about"`) {
		t.Fatalf("expected nav link to /about, got:\n%s", src)
	}
	if !strings.Contains(src, "Acme") {
		t.Fatal("expected site name in header")
	}
}
