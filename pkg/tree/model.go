package tree

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-fieldset/pkg/controls"
	"github.com/goliatone/go-fieldset/pkg/model"
)

// FromModel converts a form model into a fieldset node named after the
// operation. Field order is preserved.
func FromModel(form model.FormModel) Node {
	root := Node{
		Kind:  KindFieldset,
		Type:  "form",
		Label: form.Summary,
	}
	if form.Metadata != nil {
		root.Orientation = form.Metadata["orientation"]
	}
	for _, field := range form.Fields {
		root.Children = append(root.Children, FromField(field))
	}
	return root
}

// FromField converts a single model field. Objects become fieldsets, enums
// become selects, booleans become checkboxes and every other type becomes an
// input whose kind follows the field format.
func FromField(field model.Field) Node {
	node := Node{
		Name:        field.Name,
		Label:       field.Label,
		Description: field.Description,
		Required:    field.Required,
		Disabled:    field.Disabled,
		ReadOnly:    field.ReadOnly,
		Default:     field.Default,
		Validations: field.Validations,
	}
	if node.Label == "" {
		node.Label = model.DefaultLabeler(field.Name)
	}
	if field.UIHints != nil {
		node.Placeholder = field.UIHints["placeholder"]
	}

	switch {
	case field.Type == model.FieldTypeObject:
		node.Kind = KindFieldset
		node.Type = string(model.FieldTypeObject)
		node.Unwind = field.Unwind
		node.Orientation = field.Orientation
		for _, nested := range field.Nested {
			node.Children = append(node.Children, FromField(nested))
		}
		// Object constraints are not enforced; members carry their own.
		node.Validations = nil
		node.Default = nil
	case len(field.Enum) > 0:
		node.Kind = KindSelect
		for _, value := range field.Enum {
			text := fmt.Sprint(value)
			node.Options = append(node.Options, controls.Choice{Value: text, Label: model.DefaultLabeler(text)})
		}
	case field.Type == model.FieldTypeBoolean:
		node.Kind = KindCheckbox
	case field.Type == model.FieldTypeInteger || field.Type == model.FieldTypeNumber:
		node.Kind = KindInput
		node.Type = string(controls.KindNumber)
	default:
		node.Kind = KindInput
		node.Type = string(inputKind(field))
	}
	return node
}

func inputKind(field model.Field) controls.Kind {
	if hint := strings.TrimSpace(field.UIHints["input"]); hint != "" {
		return controls.Kind(hint)
	}
	switch strings.ToLower(field.Format) {
	case "email":
		return controls.KindEmail
	case "password":
		return controls.KindPassword
	case "textarea":
		return controls.KindTextArea
	}
	if field.Type == model.FieldTypeArray {
		return controls.Kind(model.FieldTypeArray)
	}
	return controls.KindText
}
