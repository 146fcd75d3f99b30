// Package form is the survey state engine. A Form owns the agency section,
// the ordered list of dataset items, the shared reference data, and the
// pending confirmation callback. Items are built from a default-state
// template and bound to toggle rules, tag widgets, section and coverage
// controllers; validation and serialization sweep them in document order.
//
// A Form is driven from a single goroutine. Only Init and ConfirmOK reach the
// network, and both take a context.
package form
