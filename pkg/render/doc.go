// Package render produces the markup for derived survey UI. Tag containers
// are rebuilt from their values on every mutation, so rendering has to be a
// pure function of the value list; the pongo2 engine autoescapes every value.
package render
