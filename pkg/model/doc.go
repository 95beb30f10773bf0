// Package model defines the neutral form description that builders turn into
// fieldset trees. A FormModel lists Fields; object fields nest further Fields
// and become nested fieldsets, optionally marked Unwind so their values merge
// flat into the parent record. Validation rules use canonical identifiers
// (min/max, minLength/maxLength, pattern) with string parameters, matching
// the shape OpenAPI constraints arrive in, and CompileRules turns them into
// checks controls can run on every keystroke.
package model
