package spec

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// sectionAliases maps type names the model likes to invent onto the types the
// template library actually ships.
var sectionAliases = map[string]SectionType{
	"ProjectGrid":      SectionProductGrid,
	"FeaturedProjects": SectionProductGrid,
	"Features":         SectionFeatureGrid,
	"CallToAction":     SectionCTA,
	"Contact":          SectionContactForm,
}

// UnmarshalJSON accepts either a full section object or a bare string type
// name; models return both shapes. Bare strings with an unrecognized type are
// coerced to RichText so the page still carries content.
func (s *Section) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		t := SectionType(name)
		if alias, ok := sectionAliases[name]; ok {
			t = alias
		} else if !IsKnownSectionType(t) {
			t = SectionRichText
		}
		*s = Section{Type: t}
		return nil
	}

	type sectionJSON Section // avoid recursing into this method
	var obj sectionJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if alias, ok := sectionAliases[string(obj.Type)]; ok {
		obj.Type = alias
	}
	*s = Section(obj)
	return nil
}

// IsKnownSectionType reports whether t has a dedicated template.
func IsKnownSectionType(t SectionType) bool {
	for _, known := range KnownSectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Normalize fills the gaps models leave in an otherwise usable spec: routes
// derived from page names, default SEO, missing section IDs and props, token
// defaults, and the common pages every archetype is expected to have.
// It mutates the spec in place and is called before Validate.
func Normalize(ws *WebsiteSpec) {
	if ws.Project.Name == "" {
		ws.Project.Name = "Generated Website"
	}
	if ws.Project.Archetype == "" {
		ws.Project.Archetype = "company"
	}

	normalizeTokens(&ws.DesignTokens)

	for i := range ws.Pages {
		normalizePage(&ws.Pages[i])
	}

	ensureCorePages(ws)
}

func normalizeTokens(t *DesignTokens) {
	def := DefaultTokens()
	if t.Colors.Primary == "" {
		t.Colors.Primary = def.Colors.Primary
	}
	if t.Colors.Background == "" {
		t.Colors.Background = def.Colors.Background
	}
	if t.Colors.Foreground == "" {
		t.Colors.Foreground = def.Colors.Foreground
	}
	if t.Font.Heading == "" {
		t.Font.Heading = def.Font.Heading
	}
	if t.Font.Body == "" {
		t.Font.Body = def.Font.Body
	}
	if t.Radius == "" {
		t.Radius = def.Radius
	}
	if t.SpacingScale == "" {
		t.SpacingScale = def.SpacingScale
	}
	if t.TypeScale == "" {
		t.TypeScale = def.TypeScale
	}
}

func normalizePage(p *Page) {
	if p.Route == "" && p.Name != "" {
		p.Route = RouteFromName(p.Name)
	}
	if p.SEO == nil && p.Name != "" {
		p.SEO = &SEO{Title: p.Name, Description: p.Name + " page"}
	}
	for i := range p.Sections {
		if p.Sections[i].ID == "" {
			p.Sections[i].ID = uuid.NewString()
		}
		if p.Sections[i].Props == nil {
			p.Sections[i].Props = map[string]any{}
		}
	}
}

// RouteFromName converts a page name like "About Us" to "/about-us".
// "Home" (any case) maps to the root route.
func RouteFromName(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" || slug == "home" {
		return "/"
	}
	return "/" + slug
}

// corePages lists the routes every generated site carries, in nav order,
// with the page synthesized when the model left the route out.
var corePages = []Page{
	{
		Route:    "/",
		SEO:      &SEO{Title: "Home", Description: "Landing"},
		Sections: []Section{{Type: SectionHero}},
	},
	{
		Route: "/about",
		SEO:   &SEO{Title: "About", Description: "About page"},
		Sections: []Section{{
			Type:  SectionHero,
			Props: map[string]any{"headline": "About Us", "sub": "Learn more"},
		}},
	},
	{
		Route: "/services",
		SEO:   &SEO{Title: "Services", Description: "Services page"},
		Sections: []Section{{
			Type:  SectionHero,
			Props: map[string]any{"headline": "Our Services"},
		}},
	},
	{
		Route:    "/contact",
		SEO:      &SEO{Title: "Contact", Description: "Contact page"},
		Sections: []Section{{Type: SectionContactForm}},
	},
}

// ensureCorePages fills in the common routes the generated router and header
// navigation assume. A missing contact page is only synthesized when no page
// carries a contact form already.
func ensureCorePages(ws *WebsiteSpec) {
	hasRoute := map[string]bool{}
	hasContactForm := false
	for _, p := range ws.Pages {
		hasRoute[p.Route] = true
		for _, s := range p.Sections {
			if s.Type == SectionContactForm {
				hasContactForm = true
			}
		}
	}

	for _, core := range corePages {
		if hasRoute[core.Route] {
			continue
		}
		if core.Route == "/contact" && hasContactForm {
			continue
		}
		page := core
		page.Sections = make([]Section, len(core.Sections))
		for i, s := range core.Sections {
			s.ID = uuid.NewString()
			props := map[string]any{}
			for k, v := range s.Props {
				props[k] = v
			}
			s.Props = props
			page.Sections[i] = s
		}
		if page.Route == "/" {
			ws.Pages = append([]Page{page}, ws.Pages...)
		} else {
			ws.Pages = append(ws.Pages, page)
		}
	}
}
