package openapi_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldset/pkg/model"
	"github.com/goliatone/go-fieldset/pkg/openapi"
	"github.com/goliatone/go-fieldset/pkg/tree"
)

const accountsYAML = `
openapi: 3.0.3
info:
  title: Accounts
  version: "1.0.0"
paths:
  /accounts:
    post:
      operationId: createAccount
      summary: Create account
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/Account'
      responses:
        "201":
          description: created
  /ping:
    get:
      responses:
        "200":
          description: ok
components:
  schemas:
    Address:
      type: object
      properties:
        street:
          type: string
        city:
          type: string
          x-fieldset:
            readOnly: true
    Account:
      type: object
      x-fieldset:
        orientation: row
      allOf:
        - $ref: '#/components/schemas/Address'
      required: [email]
      properties:
        email:
          type: string
          format: email
          maxLength: 64
        age:
          type: integer
          minimum: 18
          maximum: 130
          exclusiveMaximum: true
        plan:
          type: string
          enum: [free, pro]
        newsletter:
          type: boolean
          default: false
`

func loadSpec(t *testing.T) *openapi.Spec {
	t.Helper()
	ctx := context.Background()
	loader := openapi.NewLoader(openapi.WithFileSystem(fstest.MapFS{
		"specs/accounts.yaml": {Data: []byte(accountsYAML)},
	}))
	doc, err := loader.Load(ctx, openapi.SourceFromFS("specs/accounts.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	spec, err := openapi.Parse(ctx, doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return spec
}

func TestParse_Operations(t *testing.T) {
	spec := loadSpec(t)

	want := []openapi.OperationRef{
		{ID: "createAccount", Method: "POST", Path: "/accounts", Summary: "Create account"},
		{ID: "get:/ping", Method: "GET", Path: "/ping"},
	}
	if diff := cmp.Diff(want, spec.Operations()); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
	if spec.Location() != "specs/accounts.yaml" {
		t.Fatalf("unexpected location %q", spec.Location())
	}
}

func TestFormFromOperation(t *testing.T) {
	spec := loadSpec(t)

	form, err := spec.FormFromOperation("createAccount")
	if err != nil {
		t.Fatalf("form: %v", err)
	}

	exclusiveMax := model.ValidationRule{
		Kind:   model.ValidationRuleMax,
		Params: map[string]string{"value": "130", "exclusive": "true"},
	}
	want := model.FormModel{
		OperationID: "createAccount",
		Endpoint:    "/accounts",
		Method:      "POST",
		Summary:     "Create account",
		Metadata:    map[string]string{"orientation": "row"},
		Fields: []model.Field{
			{
				Name:   "address",
				Type:   model.FieldTypeObject,
				Unwind: true,
				Nested: []model.Field{
					{Name: "city", Type: model.FieldTypeString, ReadOnly: true},
					{Name: "street", Type: model.FieldTypeString},
				},
			},
			{
				Name:        "age",
				Type:        model.FieldTypeInteger,
				Validations: []model.ValidationRule{model.Min(18), exclusiveMax},
			},
			{
				Name:        "email",
				Type:        model.FieldTypeString,
				Format:      "email",
				Required:    true,
				Validations: []model.ValidationRule{model.MaxLength(64)},
			},
			{Name: "newsletter", Type: model.FieldTypeBoolean, Default: false},
			{Name: "plan", Type: model.FieldTypeString, Enum: []any{"free", "pro"}},
		},
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestFormFromOperation_NoBody(t *testing.T) {
	spec := loadSpec(t)

	form, err := spec.FormFromOperation("get:/ping")
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if len(form.Fields) != 0 {
		t.Fatalf("expected no fields, got %d", len(form.Fields))
	}
}

func TestFormFromOperation_Unknown(t *testing.T) {
	spec := loadSpec(t)

	_, err := spec.FormFromOperation("deleteAccount")
	if !errors.Is(err, openapi.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
}

func TestFormFromOperation_BuildsUnwindFieldset(t *testing.T) {
	spec := loadSpec(t)
	form, err := spec.FormFromOperation("createAccount")
	if err != nil {
		t.Fatalf("form: %v", err)
	}

	root, err := tree.BuildFieldset(tree.FromModel(form))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if root.Orientation() != "row" {
		t.Fatalf("expected row orientation, got %q", root.Orientation())
	}

	root.SetValue(map[string]any{"email": "ada@example.com", "street": "Main St"})

	want := map[string]any{"email": "ada@example.com", "street": "Main St"}
	if diff := cmp.Diff(want, root.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

const nodesYAML = `
openapi: 3.0.3
info:
  title: Nodes
  version: "1.0.0"
paths:
  /nodes:
    post:
      operationId: createNode
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/Node'
      responses:
        "201":
          description: created
components:
  schemas:
    Node:
      type: object
      required: [name]
      properties:
        name:
          type: string
        parent:
          $ref: '#/components/schemas/Node'
        children:
          type: array
          items:
            $ref: '#/components/schemas/Node'
`

func TestFormFromOperation_SelfReference(t *testing.T) {
	doc := openapi.MustNewDocument(openapi.SourceFromFS("nodes.yaml"), []byte(nodesYAML))
	spec, err := openapi.Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	form, err := spec.FormFromOperation("createNode")
	if err != nil {
		t.Fatalf("form: %v", err)
	}

	want := []model.Field{
		{
			Name:  "children",
			Type:  model.FieldTypeArray,
			Items: &model.Field{Name: "children", Type: model.FieldTypeObject},
		},
		{Name: "name", Type: model.FieldTypeString, Required: true},
		{Name: "parent", Type: model.FieldTypeObject},
	}
	if diff := cmp.Diff(want, form.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	root, err := tree.BuildFieldset(tree.FromModel(form))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	root.SetValue(map[string]any{"name": "leaf"})
	if diff := cmp.Diff(map[string]any{"name": "leaf"}, root.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := openapi.Parse(ctx, openapi.Document{}); err == nil {
		t.Fatalf("expected error for empty document")
	}

	doc := openapi.MustNewDocument(openapi.SourceFromFS("bad.yaml"), []byte("openapi: 3.0.3\ninfo: {}\npaths: {}\n"))
	if _, err := openapi.Parse(ctx, doc); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := openapi.Parse(ctx, doc, openapi.WithoutValidation()); err != nil {
		t.Fatalf("expected validation to be skipped, got %v", err)
	}
}

func TestParseSource(t *testing.T) {
	src, err := openapi.ParseSource("https://example.com/openapi.yaml")
	if err != nil {
		t.Fatalf("parse source: %v", err)
	}
	if src.Kind() != openapi.SourceKindURL {
		t.Fatalf("expected url source, got %v", src.Kind())
	}

	loader := openapi.NewLoader()
	if _, err := loader.Load(context.Background(), src); err == nil {
		t.Fatalf("expected http to be disabled by default")
	}
}

const lintYAML = `
openapi: 3.0.3
info:
  title: Lint
  version: "1.0.0"
paths:
  /things:
    post:
      operationId: createThing
      requestBody:
        content:
          application/json:
            schema:
              type: object
              x-fieldset:
                orientation: diagonal
              properties:
                name:
                  type: string
                  x-fieldset:
                    unwind: true
                    colour: red
                size:
                  type: integer
                  x-fieldset:
                    readOnly: "maybe"
                    label: 3
      responses:
        "200":
          description: ok
`

func TestLint(t *testing.T) {
	doc := openapi.MustNewDocument(openapi.SourceFromFS("lint.yaml"), []byte(lintYAML))
	spec, err := openapi.Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var got []string
	for _, v := range spec.Lint() {
		got = append(got, v.String())
	}
	want := []string{
		`operation > createThing > requestBody -> orientation "diagonal" is not one of column, row`,
		`operation > createThing > requestBody > properties.name -> unsupported key "colour"`,
		`operation > createThing > requestBody > properties.name -> unwind applies to object schemas only`,
		`operation > createThing > requestBody > properties.size -> "label" must be a string, found float64`,
		`operation > createThing > requestBody > properties.size -> "readOnly" must be a boolean, found string`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}

	if violations := loadSpec(t).Lint(); len(violations) != 0 {
		t.Fatalf("expected clean document, got %v", violations)
	}
}
