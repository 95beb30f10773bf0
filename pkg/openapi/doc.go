// Package openapi loads OpenAPI 3 documents and converts an operation's
// request body into a model.FormModel ready for tree.FromModel. Documents are
// read from files, fs.FS entries or (opt-in) HTTP, parsed and validated with
// kin-openapi, and composed schemas (allOf) become unwind fieldsets so the
// assembled record reads back flat, exactly like the request body it models.
package openapi
