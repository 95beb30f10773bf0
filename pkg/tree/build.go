package tree

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-fieldset/pkg/controls"
	"github.com/goliatone/go-fieldset/pkg/fieldset"
)

// ErrUnknownKind is returned when a node kind has no builder.
var ErrUnknownKind = errors.New("tree: unknown node kind")

// BuildOption customises Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	reflector func(path string) fieldset.Reflector
}

// WithReflector installs a reflector on every fieldset built. The factory
// receives the dotted path of the fieldset within the tree ("" for the root).
func WithReflector(factory func(path string) fieldset.Reflector) BuildOption {
	return func(cfg *buildConfig) {
		if factory != nil {
			cfg.reflector = factory
		}
	}
}

// BuildFieldset builds node and requires the root to be a fieldset.
func BuildFieldset(node Node, options ...BuildOption) (*fieldset.Fieldset, error) {
	if node.Kind != KindFieldset {
		return nil, fmt.Errorf("tree: root must be a %s, got %q", KindFieldset, node.Kind)
	}
	el, err := Build(node, options...)
	if err != nil {
		return nil, err
	}
	return el.(*fieldset.Fieldset), nil
}

// Build constructs the element described by node. Node values are written
// after the whole subtree exists, and states are applied top-down through
// the normal propagation path.
func Build(node Node, options ...BuildOption) (any, error) {
	cfg := &buildConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg.build(node, "")
}

func (cfg *buildConfig) build(node Node, parent string) (any, error) {
	switch node.Kind {
	case KindFieldset:
		return cfg.buildFieldset(node, parent)
	case KindInput, KindTextArea:
		kind := controls.Kind(node.Type)
		if node.Kind == KindTextArea {
			kind = controls.KindTextArea
		}
		in := controls.NewInput(node.Name, append(controlOptions(node), controls.WithKind(kind))...)
		if node.Value != nil {
			in.SetValue(node.Value)
		}
		return in, nil
	case KindSelect:
		sel := controls.NewSelect(node.Name, append(controlOptions(node), controls.WithChoices(node.Options...))...)
		if node.Value != nil {
			sel.SetValue(node.Value)
		}
		return sel, nil
	case KindCheckbox:
		cb := controls.NewCheckbox(node.Name, controlOptions(node)...)
		if node.Value != nil {
			cb.SetValue(node.Value)
		}
		return cb, nil
	case KindButton:
		return controls.NewButton(node.Name,
			controls.WithLabel(node.Label),
			controls.WithDisabled(node.Disabled),
			controls.WithKind(controls.Kind(node.Type)),
		), nil
	default:
		return nil, fmt.Errorf("%w %q (name %q)", ErrUnknownKind, node.Kind, node.Name)
	}
}

func (cfg *buildConfig) buildFieldset(node Node, parent string) (*fieldset.Fieldset, error) {
	path := joinPath(parent, node.Name)

	var opts []fieldset.Option
	if cfg.reflector != nil {
		opts = append(opts, fieldset.WithReflector(cfg.reflector(path)))
	}
	for i, childNode := range node.Children {
		child, err := cfg.build(childNode, path)
		if err != nil {
			return nil, fmt.Errorf("tree: %s child %d: %w", describe(node), i, err)
		}
		opts = append(opts, fieldset.WithChildren(child))
	}
	if node.Name != "" {
		opts = append(opts, fieldset.WithName(node.Name))
	}
	if node.Type != "" {
		opts = append(opts, fieldset.WithType(node.Type))
	}
	if node.Orientation != "" {
		opts = append(opts, fieldset.WithOrientation(node.Orientation))
	}
	if node.Unwind {
		opts = append(opts, fieldset.WithUnwind(true))
	}
	// Only true states propagate so children keep their own flags otherwise.
	if node.Required {
		opts = append(opts, fieldset.WithRequired(true))
	}
	if node.ReadOnly {
		opts = append(opts, fieldset.WithReadOnly(true))
	}
	if node.Disabled {
		opts = append(opts, fieldset.WithDisabled(true))
	}

	fs := fieldset.New(opts...)
	if node.Value != nil {
		fs.SetValue(node.Value)
	}
	fs.HandleChange()
	return fs, nil
}

func controlOptions(node Node) []controls.Option {
	opts := []controls.Option{
		controls.WithLabel(node.Label),
		controls.WithDescription(node.Description),
		controls.WithPlaceholder(node.Placeholder),
		controls.WithRequired(node.Required),
		controls.WithDisabled(node.Disabled),
		controls.WithReadOnly(node.ReadOnly),
		controls.WithRules(node.Validations...),
	}
	if node.Default != nil {
		opts = append(opts, controls.WithDefault(node.Default))
	}
	if node.Sanitize {
		opts = append(opts, controls.WithSanitizer(controls.StrictSanitizer()))
	}
	return opts
}

func describe(node Node) string {
	if node.Name == "" {
		return node.Kind
	}
	return fmt.Sprintf("%s %q", node.Kind, node.Name)
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}
