package progress

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema is the structural contract a loaded or imported blob
// must satisfy before it is trusted. Anything else falls back to
// defaults (on load) or is rejected (on import).
const documentSchema = `{
	"type": "object",
	"required": ["version", "settings", "stats", "history", "lastUpdated"],
	"properties": {
		"version":     {"type": "string"},
		"settings":    {"type": "object"},
		"stats":       {"type": "object"},
		"history":     {"type": "array"},
		"lastUpdated": {"type": "number"}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledDocumentSchema compiles the document schema once per process.
func compiledDocumentSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(documentSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://document.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// DecodeDocument validates data against the document schema and
// unmarshals it. It returns an error for malformed JSON or any blob
// that fails structural validation; no partially decoded document is
// ever returned.
func DecodeDocument(data []byte) (*Document, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledDocumentSchema()
	if err != nil {
		return nil, fmt.Errorf("compile document schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}

	// Normalize nil slices so downstream append/iterate code never has
	// to distinguish missing from empty.
	if doc.History == nil {
		doc.History = []QuizResult{}
	}
	if doc.Stats.CategoriesPlayed == nil {
		doc.Stats.CategoriesPlayed = []string{}
	}
	if doc.Stats.Achievements == nil {
		doc.Stats.Achievements = []string{}
	}

	return &doc, nil
}
