// Package html serialises a built fieldset tree into markup. Fieldsets render
// as <swe-fieldset> elements carrying every reflected attribute, controls as
// their native counterparts. Templates are pongo2 files embedded in the
// package and can be replaced with WithTemplatesFS.
package html
