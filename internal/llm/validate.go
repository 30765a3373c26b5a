package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaSet compiles each named Schema once.
type schemaSet struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

var schemas = &schemaSet{compiled: make(map[string]*jsonschema.Schema)}

// check decodes raw and validates it against s.
func (set *schemaSet) check(s *Schema, raw json.RawMessage) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	compiled, err := set.get(s)
	if err != nil {
		return err
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("reply does not match %s: %w", s.Name, err)
	}
	return nil
}

func (set *schemaSet) get(s *Schema) (*jsonschema.Schema, error) {
	set.mu.Lock()
	defer set.mu.Unlock()

	if c, ok := set.compiled[s.Name]; ok {
		return c, nil
	}

	// The compiler wants the document in its own decoded form.
	def, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("encode schema %s: %w", s.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("decode schema %s: %w", s.Name, err)
	}

	url := "mem://feedrank/" + s.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("load schema %s: %w", s.Name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", s.Name, err)
	}
	set.compiled[s.Name] = compiled
	return compiled, nil
}
