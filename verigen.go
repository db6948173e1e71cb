// Package verigen defines the artifact documents produced by the
// verification test-case compiler and API surface generator, and the
// error taxonomy shared by the whole pipeline.
//
// Two kinds of documents exist. Test-case documents (TestCases) are the
// compiled, endpoint-keyed payload literals a verification runner replays
// by index. Service documents (ServiceDocument) declare the API surface
// those runners implement or call. Both are derived independently from
// the same master specification; the check package proves they agree.
package verigen

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// PositiveAndNegative holds the ordered test-case literals for one
// endpoint. Order is load-bearing: a runner addresses a case by its
// position, with positive cases occupying indices 0..len(Positive)-1 and
// negative cases following at len(Positive)..len(Positive)+len(Negative)-1.
type PositiveAndNegative struct {
	Positive []string `yaml:"positive" json:"positive"`
	Negative []string `yaml:"negative" json:"negative"`
}

// ClientTestCases is the compiled artifact consumed by the verification
// server, which replays these cases against a client under test.
type ClientTestCases struct {
	AutoDeserialize         map[string]PositiveAndNegative `yaml:"autoDeserialize" json:"autoDeserialize"`
	SingleHeaderService     map[string][]string            `yaml:"singleHeaderService" json:"singleHeaderService"`
	SinglePathParamService  map[string][]string            `yaml:"singlePathParamService" json:"singlePathParamService"`
	SingleQueryParamService map[string][]string            `yaml:"singleQueryParamService" json:"singleQueryParamService"`
}

// ServerTestCases is the compiled artifact consumed by the verification
// client, which replays these cases against a server under test.
type ServerTestCases struct {
	AutoDeserialize map[string]PositiveAndNegative `yaml:"autoDeserialize" json:"autoDeserialize"`
}

// TestCases is the top-level compiled test-case document. Exactly one of
// Client or Server is set, depending on which direction was compiled.
type TestCases struct {
	Client *ClientTestCases `yaml:"client,omitempty" json:"client,omitempty"`
	Server *ServerTestCases `yaml:"server,omitempty" json:"server,omitempty"`
}

// Count returns the total number of individual test-case literals in the
// document.
func (t *TestCases) Count() int {
	n := 0
	if t.Client != nil {
		n += countPositiveAndNegative(t.Client.AutoDeserialize)
		n += countLists(t.Client.SingleHeaderService)
		n += countLists(t.Client.SinglePathParamService)
		n += countLists(t.Client.SingleQueryParamService)
	}
	if t.Server != nil {
		n += countPositiveAndNegative(t.Server.AutoDeserialize)
	}
	return n
}

func countPositiveAndNegative(m map[string]PositiveAndNegative) int {
	n := 0
	for _, pn := range m {
		n += len(pn.Positive) + len(pn.Negative)
	}
	return n
}

func countLists(m map[string][]string) int {
	n := 0
	for _, cases := range m {
		n += len(cases)
	}
	return n
}

// ServiceDocument is one generated service definition file: an imports
// preamble plus a mapping from service key to its definition.
type ServiceDocument struct {
	Types    TypesBlock                   `yaml:"types"`
	Services map[string]ServiceDefinition `yaml:"services"`
}

// TypesBlock carries the import aliases referenced by endpoint argument
// and return types (e.g. "examples", "testCases").
type TypesBlock struct {
	ConjureImports map[string]string `yaml:"conjure-imports"`
}

// ServiceDefinition declares one service: metadata plus its endpoints.
// Built once by the generator and never mutated afterwards.
type ServiceDefinition struct {
	Name        string                        `yaml:"name"`
	Package     string                        `yaml:"package"`
	DefaultAuth string                        `yaml:"default-auth"`
	BasePath    string                        `yaml:"base-path"`
	Endpoints   map[string]EndpointDefinition `yaml:"endpoints"`
}

// EndpointDefinition declares a single endpoint. HTTP is the combined
// "<METHOD> <path>" form, with the path relative to the service base path.
type EndpointDefinition struct {
	HTTP    string                        `yaml:"http"`
	Docs    string                        `yaml:"docs,omitempty"`
	Args    map[string]ArgumentDefinition `yaml:"args,omitempty"`
	Returns string                        `yaml:"returns,omitempty"`
}

// Method returns the HTTP verb portion of the endpoint's HTTP field.
func (e EndpointDefinition) Method() string {
	method, _, _ := strings.Cut(e.HTTP, " ")
	return method
}

// Path returns the path template portion of the endpoint's HTTP field,
// relative to the service base path.
func (e EndpointDefinition) Path() string {
	_, path, _ := strings.Cut(e.HTTP, " ")
	return path
}

// ArgumentDefinition declares one endpoint argument. Body, path, and
// index arguments are plain type references and marshal as a bare scalar;
// header and query arguments additionally carry a param type and the wire
// name of the parameter, and marshal as a mapping.
type ArgumentDefinition struct {
	Type      string `yaml:"type"`
	ParamType string `yaml:"param-type,omitempty"`
	ParamID   string `yaml:"param-id,omitempty"`
}

// isScalar reports whether the argument carries only a type reference.
func (a ArgumentDefinition) isScalar() bool {
	return a.ParamType == "" && a.ParamID == ""
}

// MarshalYAML emits a bare type string for plain arguments and a mapping
// for parameterized ones.
func (a ArgumentDefinition) MarshalYAML() (any, error) {
	if a.isScalar() {
		return a.Type, nil
	}
	type plain ArgumentDefinition
	return plain(a), nil
}

// UnmarshalYAML accepts either form emitted by MarshalYAML. Unknown keys
// in the mapping form are rejected; service documents are strict
// round-trippable.
func (a *ArgumentDefinition) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		a.Type = node.Value
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: argument must be a type string or a mapping", node.Line)
	}
	// Mapping nodes interleave key and value nodes.
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		switch key {
		case "type", "param-type", "param-id":
		default:
			return fmt.Errorf("line %d: unknown argument field %q", node.Content[i].Line, key)
		}
	}
	type plain ArgumentDefinition
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*a = ArgumentDefinition(p)
	return nil
}

// Arg returns a plain argument holding only a type reference.
func Arg(typeName string) ArgumentDefinition {
	return ArgumentDefinition{Type: typeName}
}

// HeaderArg returns a header parameter argument with the given wire name.
func HeaderArg(typeName, paramID string) ArgumentDefinition {
	return ArgumentDefinition{Type: typeName, ParamType: "header", ParamID: paramID}
}

// QueryArg returns a query parameter argument with the given wire name.
func QueryArg(typeName, paramID string) ArgumentDefinition {
	return ArgumentDefinition{Type: typeName, ParamType: "query", ParamID: paramID}
}
