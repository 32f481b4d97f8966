// Package templates maps section types onto fixed JSX source templates.
// Rendering is pure: the same section and tokens always produce the same
// bytes. Unknown section types get a generic content block instead of an
// error so a page always renders something.
package templates

import (
	"fmt"
	"strconv"

	"sitegen_ai_server/internal/spec"
)

// RenderError reports a section whose props had a shape the template could
// not embed. Any RenderError aborts the whole generation.
type RenderError struct {
	Section string
	Detail  string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %s", e.Section, e.Detail)
}

// RenderSection produces the JSX source for one section component. name is
// the exported component name the generator chose for this section.
func RenderSection(name string, sec spec.Section, tokens spec.DesignTokens) (string, error) {
	switch sec.Type {
	case spec.SectionHero:
		return renderHero(name, sec, tokens)
	case spec.SectionFeatureGrid:
		return renderFeatureGrid(name, sec, tokens)
	case spec.SectionProductGrid:
		return renderProductGrid(name, sec, tokens)
	case spec.SectionTestimonials:
		return renderTestimonials(name, tokens), nil
	case spec.SectionPricing:
		return renderPricing(name, sec, tokens)
	case spec.SectionFAQ:
		return renderFAQ(name, tokens), nil
	case spec.SectionContactForm:
		return renderContactForm(name, tokens), nil
	case spec.SectionRichText:
		return renderRichText(name, sec, tokens)
	case spec.SectionCTA:
		return renderCTA(name, sec, tokens)
	default:
		// Defined fallback arm: a generic block, never a failure.
		return renderGeneric(name, sec, tokens), nil
	}
}

// stringProp pulls a scalar prop as text. A present but non-scalar value is
// the one shape templates refuse to embed.
func stringProp(sec spec.Section, key, fallback string) (string, error) {
	v, ok := sec.Props[key]
	if !ok || v == nil {
		return fallback, nil
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return fallback, nil
		}
		return t, nil
	case float64:
		return fmt.Sprintf("%g", t), nil
	case bool:
		return fmt.Sprintf("%t", t), nil
	default:
		return "", &RenderError{
			Section: string(sec.Type),
			Detail:  fmt.Sprintf("prop %q has unsupported shape %T", key, v),
		}
	}
}

// intProp pulls a count-like prop. Values that are not whole numbers fall
// back rather than flowing into generated source as raw text.
func intProp(sec spec.Section, key string, fallback int) (int, error) {
	s, err := stringProp(sec, key, strconv.Itoa(fallback))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback, nil
	}
	return n, nil
}

// stringListProp pulls a list-of-strings prop, tolerating scalar entries.
func stringListProp(sec spec.Section, key string, fallback []string) ([]string, error) {
	v, ok := sec.Props[key]
	if !ok || v == nil {
		return fallback, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, &RenderError{
			Section: string(sec.Type),
			Detail:  fmt.Sprintf("prop %q is not a list", key),
		}
	}
	if len(raw) == 0 {
		return fallback, nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			// Cards/objects inside lists carry more than we template; keep
			// the fallback copy rather than guessing at their fields.
			return fallback, nil
		}
		out = append(out, s)
	}
	return out, nil
}

// sectionPadding maps the spacing scale onto the vertical padding class used
// by every section template.
func sectionPadding(tokens spec.DesignTokens) string {
	switch tokens.SpacingScale {
	case "tight":
		return "py-12"
	case "roomy":
		return "py-28"
	default:
		return "py-20"
	}
}

// headingClass maps the type scale onto the section heading size.
func headingClass(tokens spec.DesignTokens) string {
	switch tokens.TypeScale {
	case "sm":
		return "text-3xl"
	case "lg":
		return "text-5xl"
	default:
		return "text-4xl"
	}
}

// heroHeadingClass is one step larger than the regular headings.
func heroHeadingClass(tokens spec.DesignTokens) string {
	switch tokens.TypeScale {
	case "sm":
		return "text-4xl"
	case "lg":
		return "text-6xl"
	default:
		return "text-5xl"
	}
}
