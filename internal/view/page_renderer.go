/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package view

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"time"
)

// PageRenderer renders web pages through a set of templates
type PageRenderer struct {
	templates map[string]*template.Template
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") },
	"add":  func(a, b int) int { return a + b },
	"sub":  func(a, b int) int { return a - b },
}

// Fragments shared by every page: the outer layout and the post listing.
var sharedTemplates = map[string]bool{
	"layout.html":    true,
	"post_list.html": true,
}

// NewPageRenderer parses every page template under dir, each combined with
// the shared fragments, and keys it by its file name.
func NewPageRenderer(dir string) (*PageRenderer, error) {
	shared := make([]string, 0, len(sharedTemplates))
	for name := range sharedTemplates {
		shared = append(shared, filepath.Join(dir, name))
	}

	pages, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template)
	for _, page := range pages {
		name := filepath.Base(page)
		if sharedTemplates[name] {
			continue
		}
		t, err := template.New(name).Funcs(funcs).ParseFiles(append(shared, page)...)
		if err != nil {
			return nil, err
		}
		templates[name] = t
	}
	return &PageRenderer{templates: templates}, nil
}

// RenderTemplate renders the template with name "name"
// It returns an error if the corresponding template is not present
func (pr *PageRenderer) RenderTemplate(wr io.Writer, name string, data any) error {
	if t, ok := pr.templates[name]; ok {
		return t.ExecuteTemplate(wr, "layout", data)
	}
	return fmt.Errorf("template is missing{%s}", name)
}
