// Package model defines the records exchanged with the survey endpoint: the
// agency section, one DemItem per repeated dataset block, the submission
// Payload that wraps them, and the ReferenceData fetched at start-up. JSON tags
// follow the endpoint's spreadsheet column keys, so the structs can be posted
// as-is. Sentinel option values shared by the engine and the serializer live
// here as well.
package model
