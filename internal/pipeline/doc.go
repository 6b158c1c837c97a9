// Package pipeline implements the Markdown-to-HTML stages of a page build.
//
// The stages are independent of quiz processing and run in this order:
//   - Front matter split and line normalization
//   - Markdown preprocessing (blank line compression)
//   - Markdown to HTML conversion via Goldmark
//   - Relative .md link rewriting to the built .html pages
//   - Document wrapping and CSS injection
//
// Quiz markup is expanded by the caller between front matter handling and
// Markdown conversion, so rendered quiz fragments reach Goldmark as raw
// HTML blocks.
package pipeline
