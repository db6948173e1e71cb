package verigen

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeServiceDocument parses a service definition document. Unknown
// fields are rejected so that hand-edited or drifted artifacts fail the
// build gate instead of being silently reinterpreted.
func DecodeServiceDocument(data []byte) (*ServiceDocument, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc ServiceDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, Errorf(CodeMalformedSpecification, "service document is empty")
		}
		return nil, Errorf(CodeMalformedSpecification, "parse service document: %v", err)
	}
	if len(doc.Services) == 0 {
		return nil, Errorf(CodeMalformedSpecification, "service document declares no services")
	}
	return &doc, nil
}
