package llm

import (
	"encoding/json"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

func TestSchemaCheck(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", validExplanation, false},
		{"missing tip", `{"headline":"x","explanation":"y"}`, true},
		{"wrong type", `{"headline":"x","explanation":7,"tip":"z"}`, true},
		{"extra field", `{"headline":"x","explanation":"y","tip":"z","n":1}`, true},
		{"array", `[]`, true},
		{"broken json", `{"headline":`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.check(explanationTestSchema, json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Errorf("check(%s) err = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
		})
	}
}

func TestSchemaCompiledOnce(t *testing.T) {
	set := &schemaSet{compiled: map[string]*jsonschema.Schema{}}
	s := &Schema{Name: "once", Definition: map[string]any{"type": "string"}}

	first, err := set.get(s)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	second, err := set.get(s)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first != second {
		t.Error("schema compiled twice")
	}
}

func TestSchemaInvalidDefinition(t *testing.T) {
	set := &schemaSet{compiled: map[string]*jsonschema.Schema{}}
	s := &Schema{Name: "broken", Definition: map[string]any{"type": 12}}
	if _, err := set.get(s); err == nil {
		t.Fatal("expected compile error for a non-string type")
	}
}
