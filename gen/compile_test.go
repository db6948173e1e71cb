package gen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/verigen/verigen"
	"github.com/verigen/verigen/spec"
	"github.com/verigen/verigen/typeexpr"
)

// mustDefinition builds a resolved test definition for compiler tests.
func mustDefinition(t *testing.T, signature string, positive, negative, clientPositiveServerFail []string) spec.TestDefinition {
	t.Helper()
	d := spec.TestDefinition{
		Type:                     signature,
		Positive:                 positive,
		Negative:                 negative,
		ClientPositiveServerFail: clientPositiveServerFail,
	}
	expr, err := typeexpr.Parse(signature)
	if err != nil {
		t.Fatalf("parse %q: %v", signature, err)
	}
	d.Expr = expr
	return d
}

func TestCompileServerTestCases_AppendRule(t *testing.T) {
	// The server-direction artifact drives a client under test: values a
	// server would reject are still client-positive, so they extend the
	// positive bucket.
	all := &spec.AllTestCases{
		Body: []spec.TestDefinition{
			mustDefinition(t, "string", []string{`"a"`, `"b"`}, []string{`1`}, []string{`"lenient"`}),
		},
	}

	tc, err := CompileServerTestCases(all, Options{})
	if err != nil {
		t.Fatalf("CompileServerTestCases error: %v", err)
	}
	if tc.Client == nil || tc.Server != nil {
		t.Fatal("server direction must compile only the client section")
	}

	want := map[string]verigen.PositiveAndNegative{
		"testString": {
			Positive: []string{`"a"`, `"b"`, `"lenient"`},
			Negative: []string{`1`},
		},
	}
	if diff := cmp.Diff(want, tc.Client.AutoDeserialize); diff != "" {
		t.Errorf("autoDeserialize mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileClientTestCases_AppendRule(t *testing.T) {
	// The client-direction artifact drives a server under test: the same
	// values extend the negative bucket instead.
	all := &spec.AllTestCases{
		Body: []spec.TestDefinition{
			mustDefinition(t, "string", []string{`"a"`, `"b"`}, []string{`1`}, []string{`"lenient"`}),
		},
	}

	tc, err := CompileClientTestCases(all, Options{})
	if err != nil {
		t.Fatalf("CompileClientTestCases error: %v", err)
	}
	if tc.Server == nil || tc.Client != nil {
		t.Fatal("client direction must compile only the server section")
	}

	want := map[string]verigen.PositiveAndNegative{
		"testString": {
			Positive: []string{`"a"`, `"b"`},
			Negative: []string{`1`, `"lenient"`},
		},
	}
	if diff := cmp.Diff(want, tc.Server.AutoDeserialize); diff != "" {
		t.Errorf("autoDeserialize mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_IndexStability(t *testing.T) {
	all := &spec.AllTestCases{
		Body: []spec.TestDefinition{
			mustDefinition(t, "StringExample", []string{"a", "b"}, []string{"c"}, nil),
		},
	}

	tc, err := CompileClientTestCases(all, Options{})
	if err != nil {
		t.Fatalf("CompileClientTestCases error: %v", err)
	}
	pn := tc.Server.AutoDeserialize["testStringExample"]
	if pn.Positive[0] != "a" || pn.Positive[1] != "b" {
		t.Errorf("positive order changed: %v", pn.Positive)
	}
	if pn.Negative[0] != "c" {
		t.Errorf("negative order changed: %v", pn.Negative)
	}
	// Index of the first negative case over the wire is len(positive).
	if got := len(pn.Positive); got != 2 {
		t.Errorf("first negative index = %d, want 2", got)
	}
}

func TestCompileServerTestCases_ParamCategories(t *testing.T) {
	all := &spec.AllTestCases{
		SingleHeaderParam: []spec.TestDefinition{
			mustDefinition(t, "boolean", []string{"true", "false"}, []string{"ignored"}, nil),
		},
		SinglePathParam: []spec.TestDefinition{
			mustDefinition(t, "rid", []string{"ri.service.instance.type.name"}, nil, nil),
		},
		SingleQueryParam: []spec.TestDefinition{
			mustDefinition(t, "optional<integer>", []string{"5", ""}, nil, nil),
		},
	}

	tc, err := CompileServerTestCases(all, Options{})
	if err != nil {
		t.Fatalf("CompileServerTestCases error: %v", err)
	}

	wantHeader := map[string][]string{"testBoolean": {"true", "false"}}
	if diff := cmp.Diff(wantHeader, tc.Client.SingleHeaderService); diff != "" {
		t.Errorf("singleHeaderService mismatch (-want +got):\n%s", diff)
	}
	wantPath := map[string][]string{"testRid": {"ri.service.instance.type.name"}}
	if diff := cmp.Diff(wantPath, tc.Client.SinglePathParamService); diff != "" {
		t.Errorf("singlePathParamService mismatch (-want +got):\n%s", diff)
	}
	wantQuery := map[string][]string{"testOptionalOfInteger": {"5", ""}}
	if diff := cmp.Diff(wantQuery, tc.Client.SingleQueryParamService); diff != "" {
		t.Errorf("singleQueryParamService mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_DuplicateEndpointKey(t *testing.T) {
	all := &spec.AllTestCases{
		Body: []spec.TestDefinition{
			mustDefinition(t, "list<string>", []string{"[]"}, nil, nil),
			mustDefinition(t, "list< string >", []string{`["x"]`}, nil, nil),
		},
	}

	for name, compile := range map[string]func(*spec.AllTestCases, Options) (*verigen.TestCases, error){
		"server": CompileServerTestCases,
		"client": CompileClientTestCases,
	} {
		_, err := compile(all, Options{})
		if err == nil {
			t.Errorf("%s: expected duplicate key error", name)
			continue
		}
		if code := verigen.CodeOf(err); code != verigen.CodeDuplicateEndpointKey {
			t.Errorf("%s: error code = %q, want %q", name, code, verigen.CodeDuplicateEndpointKey)
		}
		// Both offending signatures must be reported.
		msg := err.Error()
		if !strings.Contains(msg, `"list<string>"`) || !strings.Contains(msg, `"list< string >"`) {
			t.Errorf("%s: error %q does not name both signatures", name, msg)
		}
	}
}

func TestCompile_EmptyBucketsAreNonNil(t *testing.T) {
	all := &spec.AllTestCases{
		Body: []spec.TestDefinition{
			mustDefinition(t, "uuid", nil, nil, nil),
		},
	}

	tc, err := CompileServerTestCases(all, Options{})
	if err != nil {
		t.Fatalf("CompileServerTestCases error: %v", err)
	}
	pn := tc.Client.AutoDeserialize["testUuid"]
	if pn.Positive == nil || pn.Negative == nil {
		t.Errorf("buckets must marshal as empty arrays, got %#v", pn)
	}
}

func TestCompile_CountsAllCases(t *testing.T) {
	all := &spec.AllTestCases{
		Body: []spec.TestDefinition{
			mustDefinition(t, "string", []string{"a"}, []string{"b", "c"}, []string{"d"}),
		},
		SingleHeaderParam: []spec.TestDefinition{
			mustDefinition(t, "boolean", []string{"true"}, nil, nil),
		},
	}

	tc, err := CompileServerTestCases(all, Options{})
	if err != nil {
		t.Fatalf("CompileServerTestCases error: %v", err)
	}
	if got := tc.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
}
