package templates

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"sitegen_ai_server/internal/spec"
)

var npmNameRe = regexp.MustCompile(`[^a-z0-9\-]+`)

// NPMName sanitizes a project name into a valid npm package name.
func NPMName(projectName string) string {
	name := npmNameRe.ReplaceAllString(strings.ToLower(projectName), "-")
	name = strings.Trim(name, "-")
	if name == "" {
		return "website"
	}
	return name
}

// PackageJSON renders the npm manifest for the scaffolded project.
func PackageJSON(projectName string) string {
	manifest := map[string]any{
		"name":    NPMName(projectName),
		"private": true,
		"version": "0.0.0",
		"type":    "module",
		"scripts": map[string]string{
			"dev":     "vite",
			"build":   "vite build",
			"preview": "vite preview",
		},
		"dependencies": map[string]string{
			"react":            "^18.2.0",
			"react-dom":        "^18.2.0",
			"react-router-dom": "^6.8.0",
		},
		"devDependencies": map[string]string{
			"@vitejs/plugin-react": "^4.0.3",
			"autoprefixer":         "^10.4.14",
			"postcss":              "^8.4.24",
			"tailwindcss":          "^3.3.0",
			"vite":                 "^4.4.5",
		},
	}
	// Keys marshal in sorted order, so the manifest is byte-stable.
	out, _ := json.MarshalIndent(manifest, "", "  ")
	return string(out) + "\n"
}

// ViteConfig renders the fixed Vite build config.
func ViteConfig() string {
	return `import { defineConfig } from 'vite'
import react from '@vitejs/plugin-react'

export default defineConfig({
  plugins: [react()],
})
`
}

// TailwindConfig renders the Tailwind theme extended with the design tokens.
func TailwindConfig(tokens spec.DesignTokens) string {
	return fmt.Sprintf(`/** @type {import('tailwindcss').Config} */
export default {
  content: [
    "./index.html",
    "./src/**/*.{js,ts,jsx,tsx}",
  ],
  theme: {
    extend: {
      colors: {
        primary: '%s',
        background: '%s',
        foreground: '%s',
      },
      fontFamily: {
        heading: ['%s', 'sans-serif'],
        body: ['%s', 'sans-serif'],
      },
      borderRadius: {
        DEFAULT: '%s',
      },
    },
  },
  plugins: [],
}
`, tokens.Colors.Primary, tokens.Colors.Background, tokens.Colors.Foreground,
		tokens.Font.Heading, tokens.Font.Body, tokens.Radius)
}

// PostcssConfig renders the fixed PostCSS config.
func PostcssConfig() string {
	return `export default {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
}
`
}

// IndexHTML renders the Vite entry document.
func IndexHTML(projectName string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>%s</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.jsx"></script>
  </body>
</html>
`, htmlEscape(projectName))
}

// MainJSX renders the React root module.
func MainJSX() string {
	return `import React from 'react'
import ReactDOM from 'react-dom/client'
import App from './App.jsx'
import './index.css'

ReactDOM.createRoot(document.getElementById('root')).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>,
)
`
}

// IndexCSS renders the global style sheet with the token fonts loaded.
func IndexCSS(tokens spec.DesignTokens) string {
	return fmt.Sprintf(`@tailwind base;
@tailwind components;
@tailwind utilities;

body {
  margin: 0;
  font-family: '%s', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
  -webkit-font-smoothing: antialiased;
  -moz-osx-font-smoothing: grayscale;
}
`, tokens.Font.Body)
}

// AppRoute is one route entry of the generated router.
type AppRoute struct {
	Path      string
	Component string // page component name, e.g. "HomePage"
}

// AppJSX renders the router component wiring one route per page.
func AppJSX(routes []AppRoute) string {
	imports := make([]string, len(routes))
	elements := make([]string, len(routes))
	for i, r := range routes {
		imports[i] = fmt.Sprintf("import %s from './pages/%s';", r.Component, r.Component)
		elements[i] = fmt.Sprintf("        <Route path=%q element={<%s />} />", r.Path, r.Component)
	}

	return fmt.Sprintf(`import React from 'react';
import { BrowserRouter as Router, Routes, Route } from 'react-router-dom';
%s

function App() {
  return (
    <Router>
      <Routes>
%s
      </Routes>
    </Router>
  );
}

export default App;
`, strings.Join(imports, "\n"), strings.Join(elements, "\n"))
}

// Readme renders the project README.
func Readme(projectName string) string {
	return fmt.Sprintf(`# %s

A website built with React, Vite, and Tailwind CSS.

## Getting Started

1. Install dependencies:

   `+"```bash"+`
   npm install
   `+"```"+`

2. Start the dev server:

   `+"```bash"+`
   npm run dev
   `+"```"+`

3. Build for production:

   `+"```bash"+`
   npm run build
   `+"```"+`
`, projectName)
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
