package typeexpr

import (
	"testing"

	"github.com/verigen/verigen"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Type
	}{
		{"string", Primitive("string")},
		{"integer", Primitive("integer")},
		{"double", Primitive("double")},
		{"boolean", Primitive("boolean")},
		{"safelong", Primitive("safelong")},
		{"rid", Primitive("rid")},
		{"bearertoken", Primitive("bearertoken")},
		{"uuid", Primitive("uuid")},
		{"binary", Binary()},
		{"datetime", DateTime()},
		{"any", Any()},
		{"StringExample", LocalRef("StringExample")},
		{"list<integer>", List(Primitive("integer"))},
		{"set<string>", Set(Primitive("string"))},
		{"optional<boolean>", Optional(Primitive("boolean"))},
		{"map<string, boolean>", Map(Primitive("string"), Primitive("boolean"))},
		{"map<string,boolean>", Map(Primitive("string"), Primitive("boolean"))},
		{"optional<list<string>>", Optional(List(Primitive("string")))},
		{"map<rid, list<EnumExample>>", Map(Primitive("rid"), List(LocalRef("EnumExample")))},
		{"list<list<optional<any>>>", List(List(Optional(Any())))},
		{"imports.ForeignType", ForeignRef("imports", "ForeignType")},
		{" list< string > ", List(Primitive("string"))},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	inputs := []string{
		"",
		"  ",
		"list<",
		"list<string",
		"list<>",
		"map<string>",
		"map<string, >",
		"map<string, boolean",
		"optional<string> trailing",
		"imports.",
		"list<string>>",
	}

	for _, input := range inputs {
		got, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) = %v, want error", input, got)
			continue
		}
		if code := verigen.CodeOf(err); code != verigen.CodeMalformedSpecification {
			t.Errorf("Parse(%q) error code = %q, want %q", input, code, verigen.CodeMalformedSpecification)
		}
	}
}

func TestString_RoundTrip(t *testing.T) {
	inputs := []string{
		"string",
		"list<integer>",
		"set<string>",
		"optional<list<string>>",
		"map<string, map<integer, boolean>>",
		"StringExample",
		"imports.ForeignType",
	}

	for _, input := range inputs {
		parsed, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", input, err)
		}
		if got := parsed.String(); got != input {
			t.Errorf("Parse(%q).String() = %q, want %q", input, got, input)
		}
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPrimitive, "Primitive"},
		{KindList, "List"},
		{KindMap, "Map"},
		{KindForeignRef, "ForeignRef"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestConstructors_Kind(t *testing.T) {
	tests := []struct {
		expr Type
		want Kind
	}{
		{Primitive("string"), KindPrimitive},
		{List(Any()), KindList},
		{Set(Any()), KindSet},
		{Map(Primitive("string"), Any()), KindMap},
		{Optional(Any()), KindOptional},
		{LocalRef("Foo"), KindLocalRef},
		{ForeignRef("ns", "Foo"), KindForeignRef},
		{Binary(), KindBinary},
		{DateTime(), KindDateTime},
		{Any(), KindAny},
	}

	for _, tt := range tests {
		if got := tt.expr.Kind(); got != tt.want {
			t.Errorf("%s.Kind() = %v, want %v", tt.expr, got, tt.want)
		}
	}
}
