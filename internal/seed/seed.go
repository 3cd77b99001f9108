// Package seed provides the static task document the board starts from.
// The document is compiled into the binary; a path on disk can replace it.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/thenoetrevino/jai-kanban/internal/models"
)

//go:embed tasks.json
var embeddedTasks []byte

//go:embed schema.json
var embeddedSchema []byte

const schemaURL = "jai-kanban://schema.json"

var (
	// ErrRead indicates the seed document could not be read
	ErrRead = errors.New("failed to read seed document")

	// ErrInvalid indicates the seed document is not valid JSON or fails the schema
	ErrInvalid = errors.New("invalid seed document")
)

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Source reads the seed document from Path, or from the embedded copy when
// Path is empty
type Source struct {
	Path string
}

// New returns a Source for path; an empty path selects the embedded document
func New(path string) *Source {
	return &Source{Path: path}
}

// Embedded returns the bundled seed document
func Embedded() []byte {
	return bytes.Clone(embeddedTasks)
}

// Raw returns the document bytes exactly as stored, after checking they
// parse and satisfy the schema
func (s *Source) Raw() ([]byte, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	if err := Validate(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Load reads, validates and decodes the document
func (s *Source) Load() (models.Board, error) {
	data, err := s.Raw()
	if err != nil {
		return models.Board{}, err
	}
	var b models.Board
	if err := sonic.ConfigStd.Unmarshal(data, &b); err != nil {
		return models.Board{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return b, nil
}

// Name describes where the document comes from, for logs
func (s *Source) Name() string {
	if s.Path == "" {
		return "embedded"
	}
	return s.Path
}

func (s *Source) read() ([]byte, error) {
	if s.Path == "" {
		return Embedded(), nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return data, nil
}

// Validate checks that data is a JSON document matching the board schema
func Validate(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, describeSchemaError(err))
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaURL, bytes.NewReader(embeddedSchema)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
	})
	return schema, schemaErr
}

// describeSchemaError flattens a validation error tree into "path: message" lines
func describeSchemaError(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	var msgs []string
	collectSchemaErrors(ve, &msgs)
	if len(msgs) == 0 {
		return err.Error()
	}
	return strings.Join(msgs, "; ")
}

func collectSchemaErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*msgs = append(*msgs, fmt.Sprintf("%s: %s", loc, err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, msgs)
	}
}
