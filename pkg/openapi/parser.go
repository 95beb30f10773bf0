package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldset/pkg/model"
)

// ErrOperationNotFound is returned when an operation id is not defined.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// ParserOptions toggles parsing behaviour.
type ParserOptions struct {
	// SkipValidation disables kin-openapi document validation.
	SkipValidation bool
	// AllowExternalRefs lets the loader follow $refs outside the document.
	AllowExternalRefs bool
}

// ParserOption mutates ParserOptions.
type ParserOption func(*ParserOptions)

// WithoutValidation skips document validation.
func WithoutValidation() ParserOption {
	return func(opts *ParserOptions) {
		opts.SkipValidation = true
	}
}

// WithExternalRefs allows resolving references to other documents.
func WithExternalRefs(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowExternalRefs = enabled
	}
}

// Spec is a parsed, validated OpenAPI document.
type Spec struct {
	location   string
	doc        *openapi3.T
	operations map[string]operationEntry
}

type operationEntry struct {
	ref OperationRef
	op  *openapi3.Operation
}

// OperationRef summarises an operation available for form generation.
type OperationRef struct {
	ID      string `json:"id"`
	Method  string `json:"method"`
	Path    string `json:"path"`
	Summary string `json:"summary,omitempty"`
}

// Parse loads doc with kin-openapi and indexes its operations by id.
// Operations without an operationId are keyed as "<method>:<path>".
func Parse(ctx context.Context, doc Document, options ...ParserOption) (*Spec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := ParserOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.AllowExternalRefs,
	}
	parsed, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}
	if !cfg.SkipValidation {
		if err := parsed.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	spec := &Spec{
		location:   doc.Location(),
		doc:        parsed,
		operations: make(map[string]operationEntry),
	}
	if parsed.Paths != nil {
		for path, item := range parsed.Paths.Map() {
			if item == nil {
				continue
			}
			for method, op := range item.Operations() {
				spec.index(method, path, op)
			}
		}
	}
	return spec, nil
}

func (s *Spec) index(method, path string, op *openapi3.Operation) {
	if op == nil {
		return
	}
	method = strings.ToUpper(method)
	id := op.OperationID
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}
	s.operations[id] = operationEntry{
		ref: OperationRef{ID: id, Method: method, Path: path, Summary: op.Summary},
		op:  op,
	}
}

// Location reports where the document was loaded from.
func (s *Spec) Location() string {
	return s.location
}

// Operations lists indexed operations sorted by id.
func (s *Spec) Operations() []OperationRef {
	refs := make([]OperationRef, 0, len(s.operations))
	for _, entry := range s.operations {
		refs = append(refs, entry.ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	return refs
}

// FormFromOperation converts the request body of operationID into a form
// model. Operations without a request body yield a form without fields.
func (s *Spec) FormFromOperation(operationID string) (model.FormModel, error) {
	entry, ok := s.operations[operationID]
	if !ok {
		return model.FormModel{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	form := model.FormModel{
		OperationID: entry.ref.ID,
		Endpoint:    entry.ref.Path,
		Method:      entry.ref.Method,
		Summary:     entry.op.Summary,
		Description: entry.op.Description,
	}

	schema := requestSchema(entry.op.RequestBody)
	if schema == nil {
		return form, nil
	}
	if ext := fieldsetExtension(schema.Extensions); ext.orientation != "" {
		form.Metadata = map[string]string{"orientation": ext.orientation}
	}
	form.Fields = fieldsFromSchema(schema)
	return form, nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if mt := content[key]; mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}
