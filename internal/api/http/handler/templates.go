package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

const layoutTemplate = "layout.html"

// TemplateCache holds every page parsed together with the shared layout.
type TemplateCache struct {
	pages map[string]*template.Template
}

// NewTemplateCache parses each page under dir of fsys with the layout.
func NewTemplateCache(fsys fs.FS, dir string) (*TemplateCache, error) {
	funcs := template.FuncMap{
		"price": func(v float64) string {
			return fmt.Sprintf("$%.2f", v)
		},
	}

	files, err := fs.Glob(fsys, path.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	tc := &TemplateCache{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		name := path.Base(file)
		if name == layoutTemplate {
			continue
		}
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(fsys, path.Join(dir, layoutTemplate), file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tc.pages[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return tc, nil
}

// Render executes page into w with the given status. The page is rendered
// into a buffer first so that a template error never produces half a page.
func (tc *TemplateCache) Render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := tc.pages[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
