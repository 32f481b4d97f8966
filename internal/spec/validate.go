package spec

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports the first field of an AI-produced spec that failed
// validation, so the HTTP layer can name it in the response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid spec: field %q %s", e.Field, e.Reason)
}

var validate = validator.New()

// Validate checks a normalized spec against the schema. It returns a
// *ValidationError naming the offending field when a required field is
// missing or an enum value is unrecognized. No side effects.
func Validate(ws *WebsiteSpec) error {
	if err := validate.Struct(ws); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok || len(verrs) == 0 {
			return &ValidationError{Field: "spec", Reason: err.Error()}
		}
		fe := verrs[0]
		return &ValidationError{
			Field:  fieldName(fe),
			Reason: reasonFor(fe),
		}
	}

	// Duplicate routes would collide in the generated router.
	seen := map[string]bool{}
	for i, p := range ws.Pages {
		if seen[p.Route] {
			return &ValidationError{
				Field:  fmt.Sprintf("pages[%d].route", i),
				Reason: fmt.Sprintf("duplicates route %q", p.Route),
			}
		}
		seen[p.Route] = true
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	// Namespace looks like "WebsiteSpec.Pages[0].Route"; drop the root and
	// lower-case the leaf segments to match the JSON wire names.
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	case "startswith":
		return fmt.Sprintf("must start with %q", fe.Param())
	case "hexcolor":
		return fmt.Sprintf("must be a hex color, got %q", fe.Value())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
