package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/siherrmann/vnextract/helper"
	"github.com/xeipuuv/gojsonschema"
)

// catalogSchema describes a catalog file:
//
//	{"categories": [{"name": "PERSONAL", "entities": [{"label": "PHONE", "patterns": [...], "triggers": [...]}]}]}
const catalogSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["categories"],
	"additionalProperties": false,
	"properties": {
		"categories": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "entities"],
				"additionalProperties": false,
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"entities": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["label", "patterns", "triggers"],
							"additionalProperties": false,
							"properties": {
								"label": {"type": "string", "minLength": 1},
								"patterns": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}},
								"triggers": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}}
							}
						}
					}
				}
			}
		}
	}
}`

type catalogFile struct {
	Categories []CategoryDefinition `json:"categories"`
}

// LoadFile reads a JSON catalog, validates it against the catalog schema and builds a Registry
func LoadFile(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, helper.NewError("read catalog", err)
	}
	return Parse(raw)
}

// Parse validates a JSON catalog and builds a Registry
func Parse(raw []byte) (*Registry, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, helper.NewError("validate catalog", err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return nil, helper.NewError("validate catalog", fmt.Errorf("invalid catalog: %s", strings.Join(problems, "; ")))
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, helper.NewError("decode catalog", err)
	}
	return New(file.Categories)
}

// Marshal encodes the registry in the catalog file format
func (r *Registry) Marshal() ([]byte, error) {
	file := catalogFile{Categories: make([]CategoryDefinition, 0, len(r.categories))}
	for _, category := range r.categories {
		definition := CategoryDefinition{Name: category}
		for _, label := range r.labels[category] {
			entity := copyDefinition(r.definitions[label])
			entity.Category = ""
			definition.Entities = append(definition.Entities, entity)
		}
		file.Categories = append(file.Categories, definition)
	}
	return json.MarshalIndent(file, "", "  ")
}
