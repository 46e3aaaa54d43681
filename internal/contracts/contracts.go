// Package contracts validates remote payloads against the JSON schemas
// embedded in this package before they are decoded.
package contracts

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema names.
const (
	Listing  = "listing"
	Listings = "listings"
	User     = "user"
)

const baseURL = "https://estate.local/schemas/"

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrUnknownSchema is returned for names with no embedded schema.
var ErrUnknownSchema = errors.New("unknown schema")

// SchemaError wraps a payload that failed validation.
type SchemaError struct {
	Schema string
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s payload failed schema validation: %v", e.Schema, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

func load() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true

		var names []string
		// Every schema is added before any is compiled so $ref between them resolves.
		err := fs.WalkDir(schemaFS, "schemas", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(p, ".json") {
				return nil
			}
			f, err := schemaFS.Open(p)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			if err := compiler.AddResource(baseURL+path.Base(p), f); err != nil {
				return fmt.Errorf("add schema %s: %w", p, err)
			}
			names = append(names, strings.TrimSuffix(path.Base(p), ".json"))
			return nil
		})
		if err != nil {
			compileErr = err
			return
		}

		compiled = make(map[string]*jsonschema.Schema, len(names))
		for _, name := range names {
			s, err := compiler.Compile(baseURL + name + ".json")
			if err != nil {
				compileErr = fmt.Errorf("compile schema %s: %w", name, err)
				return
			}
			compiled[name] = s
		}
	})
	return compiled, compileErr
}

// Validate checks body against the named schema.
func Validate(name string, body []byte) error {
	schemas, err := load()
	if err != nil {
		return err
	}
	s, ok := schemas[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return &SchemaError{Schema: name, Err: fmt.Errorf("not valid JSON: %w", err)}
	}
	if err := s.Validate(v); err != nil {
		return &SchemaError{Schema: name, Err: err}
	}
	return nil
}
