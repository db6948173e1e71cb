// Package check is the final build gate: it proves that the compiled
// test cases and the generated service definitions, derived independently
// from the same master specification, agree exactly. Any disagreement is
// fatal; the gate never reconciles at runtime.
package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/verigen/verigen"
)

// Paths verifies that every endpoint's full path (base path plus path
// template) embeds its own endpoint name as a substring. All violations
// across all documents are collected and reported together so the
// authoring fix is a single pass.
//
// The fixed confirm endpoint passes because its service base path is
// "/confirm".
func Paths(docs []verigen.ServiceDocument) error {
	var violations []string
	for _, doc := range docs {
		for _, key := range sortedKeys(doc.Services) {
			svc := doc.Services[key]
			for _, name := range sortedKeys(svc.Endpoints) {
				full := svc.BasePath + svc.Endpoints[name].Path()
				if !strings.Contains(full, name) {
					violations = append(violations,
						fmt.Sprintf("%s#%s has an inconsistent path: %s", key, name, full))
				}
			}
		}
	}
	if len(violations) > 0 {
		return verigen.Errorf(verigen.CodeInconsistentArtifacts,
			"endpoint paths must embed their endpoint name:\n  %s",
			strings.Join(violations, "\n  ")).
			WithDetail("violations", violations)
	}
	return nil
}

// Endpoints verifies bidirectional key-set equality between the compiled
// test-case keys and the endpoint names a service declares. Both
// directions of the difference are reported in full: endpoints with no
// backing test data, and test data referencing undeclared endpoints.
func Endpoints(serviceKey string, svc verigen.ServiceDefinition, compiledKeys []string) error {
	declared := make(map[string]bool, len(svc.Endpoints))
	for name := range svc.Endpoints {
		declared[name] = true
	}
	compiled := make(map[string]bool, len(compiledKeys))
	for _, key := range compiledKeys {
		compiled[key] = true
	}

	var unbacked, undeclared []string
	for name := range declared {
		if !compiled[name] {
			unbacked = append(unbacked, name)
		}
	}
	for key := range compiled {
		if !declared[key] {
			undeclared = append(undeclared, key)
		}
	}
	sort.Strings(unbacked)
	sort.Strings(undeclared)

	var problems []string
	if len(unbacked) > 0 {
		problems = append(problems, fmt.Sprintf(
			"%s declares endpoints with no backing test cases: %v", serviceKey, unbacked))
	}
	if len(undeclared) > 0 {
		problems = append(problems, fmt.Sprintf(
			"test cases reference endpoints not declared by %s: %v", serviceKey, undeclared))
	}
	if len(problems) > 0 {
		err := verigen.Errorf(verigen.CodeInconsistentArtifacts, "%s", strings.Join(problems, "; "))
		if len(unbacked) > 0 {
			err = err.WithDetail("unbacked", unbacked)
		}
		if len(undeclared) > 0 {
			err = err.WithDetail("undeclared", undeclared)
		}
		return err
	}
	return nil
}

// ServerArtifacts runs the full gate for the server direction: path
// embedding over every document, then key-set equality for each of the
// four category services. The confirm service is exempt from the key-set
// check; its per-type endpoints share names with the auto-deserialize
// service by construction.
func ServerArtifacts(tc *verigen.ClientTestCases, docs []verigen.ServiceDocument) error {
	if err := Paths(docs); err != nil {
		return err
	}
	checks := []struct {
		serviceKey string
		keys       []string
	}{
		{"AutoDeserializeService", positiveAndNegativeKeys(tc.AutoDeserialize)},
		{"SingleHeaderService", listKeys(tc.SingleHeaderService)},
		{"SinglePathParamService", listKeys(tc.SinglePathParamService)},
		{"SingleQueryParamService", listKeys(tc.SingleQueryParamService)},
	}
	for _, c := range checks {
		svc, err := serviceByKey(docs, c.serviceKey)
		if err != nil {
			return err
		}
		if err := Endpoints(c.serviceKey, svc, c.keys); err != nil {
			return err
		}
	}
	return nil
}

// ClientArtifacts runs the full gate for the client direction.
func ClientArtifacts(tc *verigen.ServerTestCases, docs []verigen.ServiceDocument) error {
	if err := Paths(docs); err != nil {
		return err
	}
	svc, err := serviceByKey(docs, "AutoDeserializeService")
	if err != nil {
		return err
	}
	return Endpoints("AutoDeserializeService", svc, positiveAndNegativeKeys(tc.AutoDeserialize))
}

// serviceByKey finds a service definition across the loaded documents.
func serviceByKey(docs []verigen.ServiceDocument, key string) (verigen.ServiceDefinition, error) {
	for _, doc := range docs {
		if svc, ok := doc.Services[key]; ok {
			return svc, nil
		}
	}
	return verigen.ServiceDefinition{}, verigen.Errorf(verigen.CodeInconsistentArtifacts,
		"no service definition found for %s", key)
}

func positiveAndNegativeKeys(m map[string]verigen.PositiveAndNegative) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}

func listKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
