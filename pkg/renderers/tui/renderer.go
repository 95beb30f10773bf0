package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/goliatone/go-fieldset/pkg/controls"
	"github.com/goliatone/go-fieldset/pkg/fieldset"
)

// Renderer fills a fieldset tree from terminal prompts and serialises the
// aggregated value.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
	maxAttempts       int
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unknown output format %q", r.outputFormat)
	}
	return r, nil
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Fill prompts for every editable control in document order. Disabled and
// read-only elements are skipped, nested fieldsets are recursed into and
// buttons are ignored. Answers are applied through the controls' Change
// method so the owning fieldsets recompute their state as usual.
func (r *Renderer) Fill(ctx context.Context, root *fieldset.Fieldset) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if root == nil {
		return ErrNilRoot
	}
	return r.fill(ctx, root)
}

// Render fills root and serialises its value.
func (r *Renderer) Render(ctx context.Context, root *fieldset.Fieldset) ([]byte, error) {
	if err := r.Fill(ctx, root); err != nil {
		return nil, err
	}

	values := root.Values()
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(values)
}

func (r *Renderer) fill(ctx context.Context, set *fieldset.Fieldset) error {
	for child := range set.Children().All() {
		if skip(child) {
			continue
		}
		var err error
		switch el := child.(type) {
		case *fieldset.Fieldset:
			err = r.fill(ctx, el)
		case *controls.Input:
			err = r.promptInput(ctx, el)
		case *controls.Checkbox:
			err = r.promptCheckbox(ctx, el)
		case *controls.Select:
			err = r.promptSelect(ctx, el)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func skip(child any) bool {
	if d, ok := child.(fieldset.Disabler); ok && d.Disabled() {
		return true
	}
	if ro, ok := child.(fieldset.ReadOnlier); ok && ro.ReadOnly() {
		return true
	}
	return false
}

func (r *Renderer) promptInput(ctx context.Context, in *controls.Input) error {
	if in.Kind() == controls.KindHidden {
		return nil
	}
	label := in.Label()
	for attempt := 1; ; attempt++ {
		var (
			response string
			err      error
		)
		switch in.Kind() {
		case controls.KindPassword:
			response, err = r.driver.Password(ctx, InputConfig{
				Message:   label,
				Help:      in.Placeholder(),
				Validator: in.ValidateText,
			})
		case controls.KindTextArea:
			response, err = r.driver.TextArea(ctx, TextAreaConfig{
				Message: label,
				Default: in.Text(),
				Help:    in.Placeholder(),
			})
		default:
			response, err = r.driver.Input(ctx, InputConfig{
				Message:   label,
				Default:   in.Text(),
				Help:      in.Placeholder(),
				Validator: in.ValidateText,
			})
		}
		if err != nil {
			return err
		}

		if err := in.ValidateText(response); err != nil {
			if retryErr := r.retry(ctx, in.Name(), err, attempt); retryErr != nil {
				return retryErr
			}
			continue
		}
		in.Change(response)
		return nil
	}
}

func (r *Renderer) promptCheckbox(ctx context.Context, cb *controls.Checkbox) error {
	for attempt := 1; ; attempt++ {
		resp, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: cb.Label(),
			Default: cb.Checked(),
		})
		if err != nil {
			return err
		}
		cb.Change(resp)
		if err := cb.Validate(); err != nil {
			if retryErr := r.retry(ctx, cb.Name(), err, attempt); retryErr != nil {
				return retryErr
			}
			continue
		}
		return nil
	}
}

func (r *Renderer) promptSelect(ctx context.Context, sel *controls.Select) error {
	choices := sel.Choices()
	if len(choices) == 0 {
		return nil
	}
	labels := make([]string, len(choices))
	for i, choice := range choices {
		labels[i] = choice.Label
		if labels[i] == "" {
			labels[i] = choice.Value
		}
	}
	defaultIdx := sel.SelectedIndex()
	if defaultIdx < 0 {
		defaultIdx = 0
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      sel.Label(),
		Options:      labels,
		DefaultIndex: defaultIdx,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(choices) {
		return fmt.Errorf("tui: %s: selection %d out of range", sel.Name(), idx)
	}
	sel.Change(choices[idx].Value)
	return nil
}

// retry reports a rejected answer and decides whether another attempt is
// allowed.
func (r *Renderer) retry(ctx context.Context, name string, cause error, attempt int) error {
	if r.maxAttempts > 0 && attempt >= r.maxAttempts {
		return fmt.Errorf("tui: %s: %w", name, cause)
	}
	msg := fmt.Sprintf("%sInvalid %s: %v", r.theme.ErrorPrefix, name, cause)
	return r.driver.Info(ctx, msg)
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		return json.Marshal(values)
	}
}

func flattenForm(values map[string]any) string {
	flattened := url.Values{}
	flatten("", values, flattened)
	return flattened.Encode()
}

func flatten(prefix string, value any, out url.Values) {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			next := key
			if prefix != "" {
				next = prefix + "." + key
			}
			flatten(next, val, out)
		}
	case []any:
		for _, val := range v {
			out.Add(prefix+"[]", fmt.Sprint(val))
		}
	default:
		out.Set(prefix, fmt.Sprint(v))
	}
}

func prettyPrint(values map[string]any) string {
	var b strings.Builder
	writePretty(&b, "", values)
	return b.String()
}

func writePretty(b *strings.Builder, prefix string, value any) {
	switch v := value.(type) {
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(v)) {
			next := key
			if prefix != "" {
				next = prefix + "." + key
			}
			writePretty(b, next, v[key])
		}
	case []any:
		for idx, val := range v {
			writePretty(b, fmt.Sprintf("%s[%d]", prefix, idx), val)
		}
	default:
		if prefix != "" {
			fmt.Fprintf(b, "%s=%v\n", prefix, v)
		}
	}
}
