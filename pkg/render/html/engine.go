package html

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

const templateExt = ".tmpl"

// engine is a cached pongo2 template set bound to a single fs.FS.
type engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

func newEngine(files fs.FS) (*engine, error) {
	if files == nil {
		return nil, errors.New("html: templates fs is nil")
	}
	return &engine{
		set:       pongo2.NewSet("fieldset-html", pongo2.NewFSLoader(files)),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

func (e *engine) execute(name string, data pongo2.Context) (string, error) {
	path := name
	if !strings.HasSuffix(path, templateExt) {
		path += templateExt
	}
	tmpl, err := e.template(path)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(data, &buf); err != nil {
		return "", fmt.Errorf("html: execute template %q: %w", path, err)
	}
	return buf.String(), nil
}

func (e *engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("html: load template %q: %w", path, err)
	}
	e.templates[path] = tmpl
	return tmpl, nil
}
