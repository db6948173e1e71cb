// Package gen derives the two build artifacts from a loaded master
// specification: the compiled, endpoint-keyed test cases and the
// service definitions whose endpoint names must agree with them.
//
// Both derivations go through EndpointName with the same prefix; the
// check package relies on that shared derivation being deterministic.
package gen

import (
	"github.com/verigen/verigen"
	"github.com/verigen/verigen/typeexpr"
)

// EndpointName derives the canonical endpoint identifier for a type
// expression. The name is a pure projection of the type's shape: two
// expressions with the same structure always produce the same name, and
// identical inputs always yield identical output.
//
// Foreign references fail with an unsupported-type-shape error; there is
// no partial fallback name.
func EndpointName(prefix string, t typeexpr.Type) (string, error) {
	inner, err := shapeName(t)
	if err != nil {
		return "", err
	}
	return prefix + capitalize(inner), nil
}

// shapeName is the structural recursion over the closed variant set.
func shapeName(t typeexpr.Type) (string, error) {
	switch v := t.(type) {
	case typeexpr.PrimitiveType:
		return v.Name, nil
	case typeexpr.BinaryType:
		return "binary", nil
	case typeexpr.DateTimeType:
		return "datetime", nil
	case typeexpr.AnyType:
		return "any", nil
	case typeexpr.ListType:
		item, err := shapeName(v.Item)
		if err != nil {
			return "", err
		}
		return "listOf" + capitalize(item), nil
	case typeexpr.SetType:
		item, err := shapeName(v.Item)
		if err != nil {
			return "", err
		}
		return "setOf" + capitalize(item), nil
	case typeexpr.OptionalType:
		item, err := shapeName(v.Item)
		if err != nil {
			return "", err
		}
		return "optionalOf" + capitalize(item), nil
	case typeexpr.MapType:
		key, err := shapeName(v.Key)
		if err != nil {
			return "", err
		}
		value, err := shapeName(v.Value)
		if err != nil {
			return "", err
		}
		return "mapOf" + capitalize(key) + "To" + capitalize(value), nil
	case typeexpr.LocalRefType:
		return v.Name, nil
	case typeexpr.ForeignRefType:
		return "", verigen.Errorf(verigen.CodeUnsupportedTypeShape,
			"endpoint names do not support foreign references: %s", v.String())
	default:
		return "", verigen.Errorf(verigen.CodeUnsupportedTypeShape,
			"unknown type expression kind %v", t.Kind())
	}
}

// capitalize upper-cases the first byte if it is an ASCII lowercase
// letter. Idempotent on already-capitalized input.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
