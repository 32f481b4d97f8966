package spec

// SectionType names one visual block of a page. The template library has a
// fixed renderer for each of these and a generic fallback for anything else.
type SectionType string

const (
	SectionHero         SectionType = "Hero"
	SectionFeatureGrid  SectionType = "FeatureGrid"
	SectionProductGrid  SectionType = "ProductGrid"
	SectionTestimonials SectionType = "Testimonials"
	SectionPricing      SectionType = "Pricing"
	SectionFAQ          SectionType = "FAQ"
	SectionContactForm  SectionType = "ContactForm"
	SectionRichText     SectionType = "RichText"
	SectionCTA          SectionType = "CTA"
)

// KnownSectionTypes lists every section type with a dedicated template,
// in the order they are documented to the LLM.
var KnownSectionTypes = []SectionType{
	SectionHero,
	SectionFeatureGrid,
	SectionProductGrid,
	SectionTestimonials,
	SectionPricing,
	SectionFAQ,
	SectionContactForm,
	SectionRichText,
	SectionCTA,
}

// Archetypes the prompt instruction asks the model to infer.
var Archetypes = []string{"portfolio", "company", "e-commerce", "saas", "restaurant", "clinic", "blog"}

// Colors is the palette threaded through every generated template.
type Colors struct {
	Primary    string `json:"primary" validate:"required,hexcolor"`
	Background string `json:"background" validate:"required,hexcolor"`
	Foreground string `json:"foreground" validate:"required,hexcolor"`
}

// Font holds the heading and body font family names.
type Font struct {
	Heading string `json:"heading" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

// DesignTokens is the small set of style parameters applied to all templates.
type DesignTokens struct {
	Colors       Colors `json:"colors"`
	Font         Font   `json:"font"`
	Radius       string `json:"radius" validate:"required"`
	SpacingScale string `json:"spacingScale" validate:"required,oneof=tight normal roomy"`
	TypeScale    string `json:"typeScale" validate:"required,oneof=sm md lg"`
}

// Project identifies the site being scaffolded.
type Project struct {
	Name      string `json:"name" validate:"required"`
	Archetype string `json:"archetype" validate:"omitempty,oneof=portfolio company e-commerce saas restaurant clinic blog"`
}

// SEO carries per-page title/description metadata.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Section is one content block of a page. Props are free-form and
// interpreted per section type by the template library.
type Section struct {
	ID    string         `json:"id"`
	Type  SectionType    `json:"type" validate:"required"`
	Props map[string]any `json:"props"`
}

// Page is one routed page of the site, with its sections in render order.
// Name is accepted on input because models often return it instead of a
// route; Normalize derives the route from it.
type Page struct {
	Name     string    `json:"name,omitempty"`
	Route    string    `json:"route" validate:"required,startswith=/"`
	SEO      *SEO      `json:"seo,omitempty"`
	Sections []Section `json:"sections" validate:"dive"`
}

// WebsiteSpec is the validated description of the desired site. It is built
// per request from the LLM reply and discarded after the response.
type WebsiteSpec struct {
	Project      Project      `json:"project"`
	DesignTokens DesignTokens `json:"designTokens"`
	Pages        []Page       `json:"pages" validate:"required,min=1,dive"`
}

// DefaultTokens returns the token set used when the model omits some or all
// design tokens.
func DefaultTokens() DesignTokens {
	return DesignTokens{
		Colors: Colors{
			Primary:    "#0F766E",
			Background: "#FFFFFF",
			Foreground: "#111111",
		},
		Font: Font{
			Heading: "Inter",
			Body:    "Inter",
		},
		Radius:       "12px",
		SpacingScale: "normal",
		TypeScale:    "md",
	}
}
