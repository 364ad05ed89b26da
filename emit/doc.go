// Package emit renders generation results as head YAML files and a JSON
// manifest of unresolved targets.
//
// Files are written through a temporary sibling and renamed into place, so a
// failed run never leaves a truncated file behind. Output depends only on the
// result, which keeps repeated runs byte-identical.
package emit
