// Package tree constructs fieldset element trees from declarative
// descriptions. A Node tree can be written by hand, parsed from YAML or JSON,
// or derived from a model.FormModel, and Build turns it into a
// *fieldset.Fieldset populated with controls.
package tree
