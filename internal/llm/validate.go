package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas holds one compiled validator per Schema.Name. Names are
// assumed to identify a definition for the life of the process.
var compiledSchemas = struct {
	sync.RWMutex
	byName map[string]*jsonschema.Schema
}{byName: make(map[string]*jsonschema.Schema)}

// validateResponse checks that raw parses as JSON and satisfies schema. A
// nil schema accepts anything. Failures are *ErrInvalidResponse so the retry
// layer can ask again.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	invalid := func(format string, args ...any) error {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf(format, args...)}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid("invalid JSON: %w", err)
	}
	v, err := compiled(schema)
	if err != nil {
		return invalid("compile schema %q: %w", schema.Name, err)
	}
	if err := v.Validate(doc); err != nil {
		return invalid("reply does not match %q: %w", schema.Name, err)
	}
	return nil
}

func compiled(schema *Schema) (*jsonschema.Schema, error) {
	compiledSchemas.RLock()
	v, ok := compiledSchemas.byName[schema.Name]
	compiledSchemas.RUnlock()
	if ok {
		return v, nil
	}

	// Definitions are built from Go literals ([]string, int, ...); the
	// compiler only understands decoded JSON values.
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, err
	}

	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	v, err = c.Compile(url)
	if err != nil {
		return nil, err
	}

	compiledSchemas.Lock()
	compiledSchemas.byName[schema.Name] = v
	compiledSchemas.Unlock()
	return v, nil
}
