package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/verigen/verigen"
)

var validate = validator.New()

// Load reads and parses the master test specification at path.
func Load(path string) (*AllTestCases, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test cases: %w", err)
	}
	all, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return all, nil
}

// Parse parses the master test specification from its YAML form.
// The decoder rejects unknown fields, every definition must carry a type
// signature, and every signature must parse; any violation aborts the
// load with a malformed-specification error.
func Parse(data []byte) (*AllTestCases, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var all AllTestCases
	if err := dec.Decode(&all); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, verigen.Errorf(verigen.CodeMalformedSpecification, "specification is empty")
		}
		return nil, verigen.Errorf(verigen.CodeMalformedSpecification, "parse specification: %v", err)
	}
	if err := validate.Struct(&all); err != nil {
		return nil, verigen.Errorf(verigen.CodeMalformedSpecification, "invalid specification: %v", err)
	}
	if err := all.resolve(); err != nil {
		return nil, err
	}
	return &all, nil
}
