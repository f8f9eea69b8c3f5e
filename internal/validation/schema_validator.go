// Package validation checks game data files against JSON schemas. Data may be
// JSON or YAML; YAML is normalised to JSON before validation.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// SchemaValidator validates data documents against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
	printer  *message.Printer
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
		printer:  message.NewPrinter(language.English),
	}
}

// ValidateFile validates a JSON or YAML file against a schema file
func (v *validator) ValidateFile(dataPath, schemaPath string) error {
	resolved, err := resolvePath(dataPath)
	if err != nil {
		return fmt.Errorf(ErrMsgReadDataFmt, dataPath, err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return fmt.Errorf(ErrMsgReadDataFmt, dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

// ValidateBytes validates a JSON or YAML document against a schema file
func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.loadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf(ErrMsgLoadSchemaFmt, schemaPath, err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgParseData, err)
	}

	if err := schema.Validate(doc); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// decodeDocument parses YAML (and therefore JSON) and re-reads it through the
// schema library's JSON decoder so numbers carry the types it expects
func decodeDocument(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	normalised, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(normalised))
}

// loadSchema loads and compiles a schema, caching the result
func (v *validator) loadSchema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaPath]; ok {
		return schema, nil
	}

	resolved, err := resolvePath(schemaPath)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(resolved)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseSchema, err)
	}
	if err := v.compiler.AddResource(resolved, doc); err != nil {
		return nil, err
	}
	schema, err := v.compiler.Compile(resolved)
	if err != nil {
		return nil, err
	}

	v.schemas[schemaPath] = schema
	return schema, nil
}

// formatValidationError flattens the error tree into one line per failure
func (v *validator) formatValidationError(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	var lines []string
	v.collect(verr, &lines)
	return fmt.Errorf("%w:\n%s", ErrInvalidDocument, strings.Join(lines, "\n"))
}

func (v *validator) collect(err *jsonschema.ValidationError, lines *[]string) {
	// leaves carry the useful detail; inner nodes only say "doesn't validate"
	if len(err.Causes) == 0 {
		*lines = append(*lines, v.formatLeaf(err))
		return
	}
	for _, cause := range err.Causes {
		v.collect(cause, lines)
	}
}

func (v *validator) formatLeaf(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}
	if err.ErrorKind == nil {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	keyword := strings.Join(err.ErrorKind.KeywordPath(), ".")
	return fmt.Sprintf("  - at %s: %s: %s", location, keyword, err.ErrorKind.LocalizedString(v.printer))
}

// resolvePath finds path as given, or relative to a parent directory up to
// the module root, so tests run from package directories see repo files
func resolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := cwd; ; {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%w: %s", os.ErrNotExist, path)
}
