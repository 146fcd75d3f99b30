// Package remote talks to the survey endpoint: a single URL that answers
// reference-data lookups on GET (?action=getReferenceData) and accepts
// submissions as a text/plain JSON POST.
package remote
