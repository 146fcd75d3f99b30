// Package template defines the template-engine seam used to produce markup
// for derived UI such as tag pills and item headings.
package template
