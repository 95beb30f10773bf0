package openapi

import (
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldset/pkg/model"
)

// ExtensionKey is the schema extension carrying fieldset overrides.
const ExtensionKey = "x-fieldset"

// fieldsFromSchema lists allOf members first, as unwind object fields, then
// the schema's own properties sorted by name. A schema already being
// converted further up the path becomes a leaf without nested fields.
func fieldsFromSchema(schema *openapi3.Schema) []model.Field {
	c := &converter{active: make(map[*openapi3.Schema]bool)}
	return c.fields(schema)
}

type converter struct {
	active map[*openapi3.Schema]bool
}

func (c *converter) fields(schema *openapi3.Schema) []model.Field {
	if schema == nil || c.active[schema] {
		return nil
	}
	c.active[schema] = true
	defer delete(c.active, schema)
	return c.members(schema)
}

func (c *converter) members(schema *openapi3.Schema) []model.Field {
	var fields []model.Field
	for i, member := range schema.AllOf {
		if member == nil || member.Value == nil || !isObjectSchema(member.Value) {
			continue
		}
		part := model.Field{
			Name:   partName(member.Ref, i),
			Type:   model.FieldTypeObject,
			Unwind: true,
			Nested: c.fields(member.Value),
		}
		applyExtension(&part, member.Value.Extensions)
		fields = append(fields, part)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fields = append(fields, c.field(name, schema.Properties[name], required[name]))
	}
	return fields
}

func (c *converter) field(name string, ref *openapi3.SchemaRef, required bool) model.Field {
	field := model.Field{
		Name:     name,
		Type:     model.FieldTypeString,
		Required: required,
	}
	if ref == nil || ref.Value == nil {
		return field
	}
	src := ref.Value
	cyclic := c.active[src]
	if !cyclic {
		c.active[src] = true
		defer delete(c.active, src)
	}

	field.Format = src.Format
	field.Label = src.Title
	field.Description = src.Description
	field.Default = src.Default
	field.ReadOnly = src.ReadOnly
	if len(src.Enum) > 0 {
		field.Enum = append([]any(nil), src.Enum...)
	}

	switch {
	case isObjectSchema(src):
		field.Type = model.FieldTypeObject
		if !cyclic {
			field.Nested = c.members(src)
		}
	default:
		if typ := firstSchemaType(src.Type); typ != "" {
			field.Type = model.FieldType(typ)
		}
	}
	if field.Type == model.FieldTypeArray && src.Items != nil && !cyclic {
		item := c.field(name, src.Items, false)
		field.Items = &item
	}

	field.Validations = validationsFromSchema(src)
	applyExtension(&field, src.Extensions)
	return field
}

func validationsFromSchema(src *openapi3.Schema) []model.ValidationRule {
	var rules []model.ValidationRule
	if src.Min != nil {
		rules = append(rules, boundRule(model.ValidationRuleMin, *src.Min, src.ExclusiveMin))
	}
	if src.Max != nil {
		rules = append(rules, boundRule(model.ValidationRuleMax, *src.Max, src.ExclusiveMax))
	}
	if src.MinLength > 0 {
		rules = append(rules, model.MinLength(int(src.MinLength)))
	}
	if src.MaxLength != nil {
		rules = append(rules, model.MaxLength(int(*src.MaxLength)))
	}
	if src.Pattern != "" {
		rules = append(rules, model.Pattern(src.Pattern))
	}
	return rules
}

func boundRule(kind string, value float64, exclusive bool) model.ValidationRule {
	rule := model.ValidationRule{
		Kind:   kind,
		Params: map[string]string{"value": strconv.FormatFloat(value, 'f', -1, 64)},
	}
	if exclusive {
		rule.Params["exclusive"] = "true"
	}
	return rule
}

func isObjectSchema(src *openapi3.Schema) bool {
	if src == nil {
		return false
	}
	return firstSchemaType(src.Type) == "object" || len(src.Properties) > 0 || len(src.AllOf) > 0
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, value := range types.Slice() {
		if value != "null" {
			return value
		}
	}
	return ""
}

func partName(ref string, index int) string {
	if ref != "" {
		base := path.Base(ref)
		if base != "" && base != "." && base != "/" {
			return strings.ToLower(base[:1]) + base[1:]
		}
	}
	return fmt.Sprintf("part%d", index+1)
}

type extension struct {
	unwind      *bool
	readOnly    *bool
	disabled    *bool
	orientation string
	label       string
	placeholder string
	input       string
}

func fieldsetExtension(raw map[string]any) extension {
	var ext extension
	values := extensionMap(raw[ExtensionKey])
	if len(values) == 0 {
		return ext
	}
	ext.unwind = boolPtr(values["unwind"])
	ext.readOnly = boolPtr(values["readOnly"])
	ext.disabled = boolPtr(values["disabled"])
	ext.orientation, _ = values["orientation"].(string)
	ext.label, _ = values["label"].(string)
	ext.placeholder, _ = values["placeholder"].(string)
	ext.input, _ = values["input"].(string)
	return ext
}

func applyExtension(field *model.Field, raw map[string]any) {
	ext := fieldsetExtension(raw)
	if ext.unwind != nil {
		field.Unwind = *ext.unwind && field.Type == model.FieldTypeObject
	}
	if ext.readOnly != nil {
		field.ReadOnly = *ext.readOnly
	}
	if ext.disabled != nil {
		field.Disabled = *ext.disabled
	}
	if ext.orientation != "" {
		field.Orientation = ext.orientation
	}
	if ext.label != "" {
		field.Label = ext.label
	}
	if ext.placeholder != "" || ext.input != "" {
		if field.UIHints == nil {
			field.UIHints = make(map[string]string, 2)
		}
		if ext.placeholder != "" {
			field.UIHints["placeholder"] = ext.placeholder
		}
		if ext.input != "" {
			field.UIHints["input"] = ext.input
		}
	}
}

func extensionMap(value any) map[string]any {
	switch typed := value.(type) {
	case map[string]any:
		return typed
	case json.RawMessage:
		var out map[string]any
		if err := json.Unmarshal(typed, &out); err != nil {
			return nil
		}
		return out
	default:
		return nil
	}
}

func boolPtr(value any) *bool {
	switch typed := value.(type) {
	case bool:
		return &typed
	case string:
		parsed, err := strconv.ParseBool(typed)
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}
