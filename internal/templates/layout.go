package templates

import (
	"fmt"
	"strings"

	"sitegen_ai_server/internal/spec"
)

// NavLink is one entry of the generated header navigation.
type NavLink struct {
	Label string
	Href  string
}

// RenderHeader produces the site header with one nav link per page.
func RenderHeader(name, siteName string, links []NavLink, tokens spec.DesignTokens) string {
	entries := make([]string, len(links))
	for i, l := range links {
		entries[i] = fmt.Sprintf("          <Link to=%q className=\"font-body text-foreground hover:text-primary transition\">%s</Link>",
			l.Href, jsxEscape(l.Label))
	}

	return fmt.Sprintf(`import React from 'react';
import { Link } from 'react-router-dom';

export default function %s() {
  return (
    <header className="bg-background border-b border-gray-200">
      <div className="max-w-6xl mx-auto px-4 py-4 flex items-center justify-between">
        <Link to="/" className="text-xl font-bold font-heading text-primary">%s</Link>
        <nav className="flex gap-6">
%s
        </nav>
      </div>
    </header>
  );
}
`, name, jsxEscape(siteName), strings.Join(entries, "\n"))
}

// RenderFooter produces the site footer.
func RenderFooter(name, siteName string, tokens spec.DesignTokens) string {
	return fmt.Sprintf(`import React from 'react';
import { Link } from 'react-router-dom';

export default function %s() {
  return (
    <footer className="bg-foreground text-white">
      <div className="max-w-6xl mx-auto px-4 %s flex items-center justify-between">
        <span className="font-body">%s</span>
        <Link to="/contact" className="font-body hover:text-primary transition">Contact</Link>
      </div>
    </footer>
  );
}
`, name, footerPadding(tokens), jsxEscape(siteName))
}

func footerPadding(tokens spec.DesignTokens) string {
	if tokens.SpacingScale == "roomy" {
		return "py-12"
	}
	return "py-8"
}
