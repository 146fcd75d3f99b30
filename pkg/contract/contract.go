// Package contract carries the OpenAPI description of the survey endpoint
// and checks outgoing payloads against it.
package contract

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jateonwr/dem-survey/pkg/model"
)

//go:embed openapi.yaml
var embedded []byte

const (
	submitMediaType    = "text/plain"
	referenceMediaType = "application/json"
)

// Operation summarises one endpoint operation.
type Operation struct {
	ID      string
	Method  string
	Path    string
	Summary string
}

// Contract is a parsed and validated endpoint description.
type Contract struct {
	raw        []byte
	doc        *openapi3.T
	payload    *openapi3.Schema
	reference  *openapi3.Schema
	operations []Operation
}

// Raw returns the bundled document.
func Raw() []byte { return append([]byte(nil), embedded...) }

// Load parses the bundled document.
func Load(ctx context.Context) (*Contract, error) {
	return Parse(ctx, embedded)
}

// Parse loads and validates raw, then locates the submission and reference
// schemas.
func Parse(ctx context.Context, raw []byte) (*Contract, error) {
	if len(raw) == 0 {
		return nil, errors.New("contract: document is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("contract: validate: %w", err)
	}

	c := &Contract{raw: append([]byte(nil), raw...), doc: doc}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return nil, errors.New("contract: document does not contain any paths")
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			c.operations = append(c.operations, Operation{ID: op.OperationID, Method: method, Path: path, Summary: op.Summary})
		}
		if item.Post != nil && c.payload == nil {
			c.payload = requestSchema(item.Post, submitMediaType)
		}
		if item.Get != nil && c.reference == nil {
			c.reference = responseSchema(item.Get, referenceMediaType)
		}
	}
	sort.Slice(c.operations, func(i, j int) bool {
		if c.operations[i].Path != c.operations[j].Path {
			return c.operations[i].Path < c.operations[j].Path
		}
		return c.operations[i].Method < c.operations[j].Method
	})
	if c.payload == nil {
		return nil, fmt.Errorf("contract: no %s request schema on any POST operation", submitMediaType)
	}
	return c, nil
}

func requestSchema(op *openapi3.Operation, mediaType string) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	media := op.RequestBody.Value.Content.Get(mediaType)
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}

func responseSchema(op *openapi3.Operation, mediaType string) *openapi3.Schema {
	if op.Responses == nil {
		return nil
	}
	resp := op.Responses.Value("200")
	if resp == nil || resp.Value == nil {
		return nil
	}
	media := resp.Value.Content.Get(mediaType)
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}

// Document returns the raw YAML the contract was parsed from.
func (c *Contract) Document() []byte { return append([]byte(nil), c.raw...) }

// Title returns the document title.
func (c *Contract) Title() string {
	if c.doc.Info == nil {
		return ""
	}
	return c.doc.Info.Title
}

// Operations lists the endpoint operations ordered by path and method.
func (c *Contract) Operations() []Operation {
	return append([]Operation(nil), c.operations...)
}

// ValidatePayload checks payload against the submission schema.
func (c *Contract) ValidatePayload(payload model.Payload) error {
	return visit(c.payload, payload, "payload")
}

// ValidateReferenceData checks a reference-data response.
func (c *Contract) ValidateReferenceData(ref model.ReferenceData) error {
	if c.reference == nil {
		return nil
	}
	return visit(c.reference, ref, "reference data")
}

func visit(schema *openapi3.Schema, value any, what string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("contract: encode %s: %w", what, err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("contract: decode %s: %w", what, err)
	}
	if err := schema.VisitJSON(generic, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("contract: %s does not match schema: %w", what, err)
	}
	return nil
}
