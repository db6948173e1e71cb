package gen

import (
	"testing"

	"github.com/verigen/verigen"
	"github.com/verigen/verigen/typeexpr"
)

func TestEndpointName(t *testing.T) {
	tests := []struct {
		prefix string
		expr   typeexpr.Type
		want   string
	}{
		{"", typeexpr.List(typeexpr.Primitive("integer")), "listOfInteger"},
		{"", typeexpr.Map(typeexpr.Primitive("string"), typeexpr.Primitive("boolean")), "mapOfStringToBoolean"},
		{"", typeexpr.Optional(typeexpr.List(typeexpr.Primitive("string"))), "optionalOfListOfString"},
		{"", typeexpr.Set(typeexpr.Primitive("double")), "setOfDouble"},
		{"", typeexpr.Primitive("bearertoken"), "bearertoken"},
		{"", typeexpr.Binary(), "binary"},
		{"", typeexpr.DateTime(), "datetime"},
		{"", typeexpr.Any(), "any"},
		{"", typeexpr.LocalRef("StringExample"), "StringExample"},
		{"test", typeexpr.Primitive("string"), "testString"},
		{"test", typeexpr.List(typeexpr.Primitive("string")), "testListOfString"},
		{"test", typeexpr.LocalRef("StringExample"), "testStringExample"},
		{"test", typeexpr.Map(typeexpr.Primitive("string"), typeexpr.LocalRef("Widget")), "testMapOfStringToWidget"},
		{"test", typeexpr.Optional(typeexpr.Any()), "testOptionalOfAny"},
		{"receive", typeexpr.Set(typeexpr.LocalRef("Widget")), "receiveSetOfWidget"},
	}

	for _, tt := range tests {
		got, err := EndpointName(tt.prefix, tt.expr)
		if err != nil {
			t.Errorf("EndpointName(%q, %s) error: %v", tt.prefix, tt.expr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("EndpointName(%q, %s) = %q, want %q", tt.prefix, tt.expr, got, tt.want)
		}
	}
}

func TestEndpointName_Deterministic(t *testing.T) {
	expr := typeexpr.Map(typeexpr.Primitive("rid"), typeexpr.List(typeexpr.Optional(typeexpr.LocalRef("Widget"))))

	first, err := EndpointName("test", expr)
	if err != nil {
		t.Fatalf("EndpointName error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := EndpointName("test", expr)
		if err != nil {
			t.Fatalf("EndpointName error: %v", err)
		}
		if again != first {
			t.Fatalf("EndpointName not deterministic: %q then %q", first, again)
		}
	}
}

func TestEndpointName_SameShapeSameName(t *testing.T) {
	// Names are a projection of shape; structurally equal trees built
	// separately must converge.
	a := typeexpr.List(typeexpr.Map(typeexpr.Primitive("string"), typeexpr.Primitive("integer")))
	b := typeexpr.List(typeexpr.Map(typeexpr.Primitive("string"), typeexpr.Primitive("integer")))

	nameA, err := EndpointName("test", a)
	if err != nil {
		t.Fatalf("EndpointName error: %v", err)
	}
	nameB, err := EndpointName("test", b)
	if err != nil {
		t.Fatalf("EndpointName error: %v", err)
	}
	if nameA != nameB {
		t.Errorf("same shape produced %q and %q", nameA, nameB)
	}
}

func TestEndpointName_ForeignReference(t *testing.T) {
	exprs := []typeexpr.Type{
		typeexpr.ForeignRef("imports", "Foo"),
		typeexpr.List(typeexpr.ForeignRef("imports", "Foo")),
		typeexpr.Map(typeexpr.ForeignRef("imports", "Foo"), typeexpr.Primitive("string")),
		typeexpr.Optional(typeexpr.Set(typeexpr.ForeignRef("imports", "Foo"))),
	}

	for _, expr := range exprs {
		name, err := EndpointName("test", expr)
		if err == nil {
			t.Errorf("EndpointName(%s) = %q, want error", expr, name)
			continue
		}
		if code := verigen.CodeOf(err); code != verigen.CodeUnsupportedTypeShape {
			t.Errorf("EndpointName(%s) error code = %q, want %q", expr, code, verigen.CodeUnsupportedTypeShape)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"string", "String"},
		{"String", "String"},
		{"listOfInteger", "ListOfInteger"},
		{"x", "X"},
		{"9lives", "9lives"},
	}

	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
		// Idempotent on its own output.
		if got := capitalize(capitalize(tt.in)); got != tt.want {
			t.Errorf("capitalize(capitalize(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
