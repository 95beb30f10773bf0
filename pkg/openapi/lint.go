package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Violation reports a malformed x-fieldset extension.
type Violation struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

func (v Violation) String() string {
	return v.Location + " -> " + v.Message
}

var extensionKinds = map[string]string{
	"unwind":      "bool",
	"readOnly":    "bool",
	"disabled":    "bool",
	"orientation": "string",
	"label":       "string",
	"placeholder": "string",
	"input":       "string",
}

// Orientations lists the accepted orientation hints.
var Orientations = []string{"column", "row"}

// Lint checks every x-fieldset extension reachable from operation request
// bodies. Violations are sorted by location.
func (s *Spec) Lint() []Violation {
	var out []Violation
	seen := make(map[*openapi3.Schema]bool)
	for _, ref := range s.Operations() {
		entry := s.operations[ref.ID]
		schema := requestSchema(entry.op.RequestBody)
		if schema == nil {
			continue
		}
		out = append(out, lintSchema([]string{"operation", ref.ID, "requestBody"}, schema, seen)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Location == out[j].Location {
			return out[i].Message < out[j].Message
		}
		return out[i].Location < out[j].Location
	})
	return out
}

func lintSchema(path []string, schema *openapi3.Schema, seen map[*openapi3.Schema]bool) []Violation {
	if schema == nil || seen[schema] {
		return nil
	}
	seen[schema] = true

	var out []Violation
	if raw, ok := schema.Extensions[ExtensionKey]; ok {
		out = append(out, lintExtension(path, raw, isObjectSchema(schema))...)
	}
	for i, member := range schema.AllOf {
		if member != nil {
			out = append(out, lintSchema(appendPath(path, fmt.Sprintf("allOf[%d]", i)), member.Value, seen)...)
		}
	}
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if prop := schema.Properties[name]; prop != nil {
			out = append(out, lintSchema(appendPath(path, "properties."+name), prop.Value, seen)...)
		}
	}
	if schema.Items != nil {
		out = append(out, lintSchema(appendPath(path, "items"), schema.Items.Value, seen)...)
	}
	return out
}

func lintExtension(path []string, raw any, object bool) []Violation {
	location := strings.Join(path, " > ")
	values := extensionMap(raw)
	if values == nil {
		return []Violation{{Location: location, Message: fmt.Sprintf("%s must be an object, found %T", ExtensionKey, raw)}}
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out []Violation
	for _, key := range keys {
		value := values[key]
		kind, known := extensionKinds[key]
		switch {
		case !known:
			out = append(out, Violation{Location: location, Message: fmt.Sprintf("unsupported key %q", key)})
		case kind == "bool" && boolPtr(value) == nil:
			out = append(out, Violation{Location: location, Message: fmt.Sprintf("%q must be a boolean, found %T", key, value)})
		case kind == "string":
			text, ok := value.(string)
			if !ok {
				out = append(out, Violation{Location: location, Message: fmt.Sprintf("%q must be a string, found %T", key, value)})
			} else if key == "orientation" && !validOrientation(text) {
				out = append(out, Violation{Location: location, Message: fmt.Sprintf("orientation %q is not one of %s", text, strings.Join(Orientations, ", "))})
			}
		}
	}
	if unwind := boolPtr(values["unwind"]); unwind != nil && *unwind && !object {
		out = append(out, Violation{Location: location, Message: "unwind applies to object schemas only"})
	}
	return out
}

func validOrientation(value string) bool {
	for _, candidate := range Orientations {
		if value == candidate {
			return true
		}
	}
	return false
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}
