package html

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-fieldset/pkg/controls"
	"github.com/goliatone/go-fieldset/pkg/fieldset"
)

// ErrUnsupported is returned for tree elements the renderer has no template for.
var ErrUnsupported = errors.New("html: unsupported element")

// Option configures the renderer.
type Option func(*config)

type config struct {
	templates fs.FS
	policy    *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle. The bundle must
// provide fieldset, input, textarea, checkbox, select and button templates.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templates = os.DirFS(path)
	}
}

// WithDescriptionPolicy overrides the sanitiser applied to rendered
// descriptions. The default is bluemonday's UGC policy.
func WithDescriptionPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer turns a built tree into markup.
type Renderer struct {
	engine *engine
	policy *bluemonday.Policy
}

// New constructs a renderer using the embedded templates unless overridden.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templates: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engine, err := newEngine(cfg.templates)
	if err != nil {
		return nil, err
	}
	if cfg.policy == nil {
		cfg.policy = bluemonday.UGCPolicy()
	}
	return &Renderer{engine: engine, policy: cfg.policy}, nil
}

// Render returns the markup for root, which is usually a *fieldset.Fieldset
// but may be any supported control.
func (r *Renderer) Render(root any) (string, error) {
	return r.render(root)
}

// RenderTo writes the markup for root to w.
func (r *Renderer) RenderTo(w io.Writer, root any) error {
	out, err := r.render(root)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func (r *Renderer) render(node any) (string, error) {
	switch el := node.(type) {
	case *fieldset.Fieldset:
		return r.renderFieldset(el)
	case *controls.Input:
		name := "input"
		if el.Kind() == controls.KindTextArea {
			name = "textarea"
		}
		return r.engine.execute(name, pongo2.Context{
			"kind":        string(el.Kind()),
			"name":        el.Name(),
			"label":       el.Label(),
			"description": renderDescription(el.Description(), r.policy),
			"value":       el.Text(),
			"placeholder": el.Placeholder(),
			"required":    el.Required(),
			"readonly":    el.ReadOnly(),
			"disabled":    el.Disabled(),
		})
	case *controls.Checkbox:
		return r.engine.execute("checkbox", pongo2.Context{
			"name":        el.Name(),
			"label":       el.Label(),
			"description": renderDescription(el.Description(), r.policy),
			"checked":     el.Checked(),
			"required":    el.Required(),
			"readonly":    el.ReadOnly(),
			"disabled":    el.Disabled(),
		})
	case *controls.Select:
		return r.engine.execute("select", pongo2.Context{
			"name":        el.Name(),
			"label":       el.Label(),
			"description": renderDescription(el.Description(), r.policy),
			"choices":     choices(el),
			"required":    el.Required(),
			"disabled":    el.Disabled(),
		})
	case *controls.Button:
		return r.engine.execute("button", pongo2.Context{
			"kind":     string(el.Kind()),
			"name":     el.Name(),
			"label":    el.Label(),
			"disabled": el.Disabled(),
		})
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupported, node)
	}
}

func (r *Renderer) renderFieldset(set *fieldset.Fieldset) (string, error) {
	var children strings.Builder
	for child := range set.Children().All() {
		out, err := r.render(child)
		if err != nil {
			return "", err
		}
		children.WriteString(out)
	}

	attrs := set.Attributes()
	names := attrs.Names()
	list := make([]map[string]any, 0, len(names))
	for _, name := range names {
		value, _ := attrs.Get(name)
		list = append(list, map[string]any{
			"name":  name,
			"value": value,
			"bare":  presence[name] && value == "",
		})
	}

	return r.engine.execute("fieldset", pongo2.Context{
		"attrs":    list,
		"children": children.String(),
	})
}

// presence lists attributes whose meaning is carried by presence alone.
var presence = map[string]bool{
	fieldset.AttrUnwind:   true,
	fieldset.AttrRequired: true,
	fieldset.AttrReadOnly: true,
	fieldset.AttrDisabled: true,
	fieldset.AttrEmpty:    true,
	fieldset.AttrInvalid:  true,
}

func choices(sel *controls.Select) []map[string]any {
	selected := sel.SelectedIndex()
	out := make([]map[string]any, 0, len(sel.Choices()))
	for i, choice := range sel.Choices() {
		label := choice.Label
		if label == "" {
			label = choice.Value
		}
		out = append(out, map[string]any{
			"value":    choice.Value,
			"label":    label,
			"selected": i == selected,
		})
	}
	return out
}
