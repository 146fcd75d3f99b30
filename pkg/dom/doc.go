// Package dom is a small in-memory document model used by the survey engine.
// Controls, blocks, and listeners mirror the browser concepts the form relies
// on (value, checked, disabled, required, hidden, error decoration, focus) so
// behaviours can be bound, driven, and asserted without a browser. Programmatic
// setters never dispatch events; user gestures (Type, Choose, Check, Click,
// DoubleClick) mutate state and dispatch synchronously.
package dom
