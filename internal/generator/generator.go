// Package generator renders a validated website spec into the full
// scaffolded file tree: boilerplate, shared layout, one component per
// section, and one page file per page. Output is deterministic for a given
// spec, and any render failure aborts the whole generation.
package generator

import (
	"fmt"
	"regexp"
	"strings"

	"sitegen_ai_server/internal/spec"
	"sitegen_ai_server/internal/templates"
	"sitegen_ai_server/internal/types"
	"sitegen_ai_server/internal/utils"
)

var routeSplitRe = regexp.MustCompile(`[^0-9a-zA-Z]+`)

// RouteToPascalCase converts a route like "/about-us/team" to "AboutUsTeam".
// The root route becomes "Home".
func RouteToPascalCase(route string) string {
	trimmed := strings.Trim(route, "/")
	if trimmed == "" {
		return "Home"
	}
	parts := routeSplitRe.Split(trimmed, -1)
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(strings.ToLower(p[1:]))
	}
	if b.Len() == 0 {
		return "Home"
	}
	return b.String()
}

// Generate renders the complete project file tree for a validated spec.
func Generate(ws *spec.WebsiteSpec) ([]types.GeneratedFile, error) {
	if len(ws.Pages) == 0 {
		return nil, &templates.RenderError{Section: "pages", Detail: "spec has no pages"}
	}

	tokens := ws.DesignTokens
	siteName := ws.Project.Name

	var files []types.GeneratedFile
	add := func(filename, content string) {
		files = append(files, types.GeneratedFile{
			Filename: filename,
			Type:     utils.DetermineFileType(filename),
			Content:  content,
		})
	}

	// Fixed boilerplate, parameterized only by project name and tokens.
	add("package.json", templates.PackageJSON(siteName))
	add("vite.config.js", templates.ViteConfig())
	add("tailwind.config.js", templates.TailwindConfig(tokens))
	add("postcss.config.js", templates.PostcssConfig())
	add("index.html", templates.IndexHTML(siteName))
	add("README.md", templates.Readme(siteName))
	add("src/main.jsx", templates.MainJSX())
	add("src/index.css", templates.IndexCSS(tokens))

	pageNames := make([]string, len(ws.Pages))
	seenNames := map[string]int{}
	routes := make([]templates.AppRoute, len(ws.Pages))
	links := make([]templates.NavLink, len(ws.Pages))
	for i, p := range ws.Pages {
		name := RouteToPascalCase(p.Route)
		if prev, dup := seenNames[name]; dup {
			return nil, &templates.RenderError{
				Section: name,
				Detail:  fmt.Sprintf("routes %q and %q map to the same page component", ws.Pages[prev].Route, p.Route),
			}
		}
		seenNames[name] = i
		pageNames[i] = name
		routes[i] = templates.AppRoute{Path: p.Route, Component: name + "Page"}
		links[i] = templates.NavLink{Label: navLabel(p, name), Href: p.Route}
	}

	add("src/App.jsx", templates.AppJSX(routes))
	add("src/components/Header.jsx", templates.RenderHeader("Header", siteName, links, tokens))
	add("src/components/Footer.jsx", templates.RenderFooter("Footer", siteName, tokens))

	for i, p := range ws.Pages {
		pageFile, err := renderPage(p, pageNames[i], tokens, add)
		if err != nil {
			return nil, err
		}
		add("src/pages/"+pageNames[i]+"Page.jsx", pageFile)
	}

	return files, nil
}

// renderPage emits one component file per distinct section of the page and
// returns the page source importing them between the shared Header/Footer.
func renderPage(p spec.Page, pageName string, tokens spec.DesignTokens, add func(string, string)) (string, error) {
	imports := []string{
		"import Header from '../components/Header';",
		"import Footer from '../components/Footer';",
	}
	jsx := []string{"      <Header />"}
	rendered := map[string]bool{}

	for _, sec := range p.Sections {
		comp := componentName(pageName, sec.Type)
		if !rendered[comp] {
			src, err := templates.RenderSection(comp, sec, tokens)
			if err != nil {
				return "", err
			}
			add("src/components/"+comp+".jsx", src)
			imports = append(imports, fmt.Sprintf("import %s from '../components/%s';", comp, comp))
			rendered[comp] = true
		}
		jsx = append(jsx, fmt.Sprintf("      <%s />", comp))
	}
	jsx = append(jsx, "      <Footer />")

	return fmt.Sprintf(`import React from 'react';
%s

export default function %sPage() {
  return (
    <div className="min-h-screen">
%s
    </div>
  );
}
`, strings.Join(imports, "\n"), pageName, strings.Join(jsx, "\n")), nil
}

// componentName keeps bare type names on the home page and prefixes the page
// name elsewhere, so components from different pages never collide. Unknown
// type names are pascal-cased into valid identifiers.
func componentName(pageName string, t spec.SectionType) string {
	base := pascalIdent(string(t))
	if pageName == "Home" {
		return base
	}
	return pageName + base
}

func pascalIdent(s string) string {
	parts := routeSplitRe.Split(s, -1)
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	if b.Len() == 0 {
		return "Content"
	}
	out := b.String()
	if out[0] >= '0' && out[0] <= '9' {
		out = "Section" + out
	}
	return out
}

func navLabel(p spec.Page, pageName string) string {
	if p.SEO != nil && p.SEO.Title != "" {
		return p.SEO.Title
	}
	return pageName
}
