package typeexpr

import (
	"github.com/verigen/verigen"
)

// ResolveLocal renders the expression in canonical textual form with
// every local reference qualified into the given import namespace, so
// that a generated service document can refer to types declared in a
// shared definitions file (e.g. "StringExample" becomes
// "examples.StringExample" under the namespace "examples").
//
// Foreign references are rejected: generated surfaces only name local or
// primitive shapes.
func ResolveLocal(t Type, namespace string) (string, error) {
	switch v := t.(type) {
	case PrimitiveType:
		return v.Name, nil
	case BinaryType:
		return "binary", nil
	case DateTimeType:
		return "datetime", nil
	case AnyType:
		return "any", nil
	case ListType:
		item, err := ResolveLocal(v.Item, namespace)
		if err != nil {
			return "", err
		}
		return "list<" + item + ">", nil
	case SetType:
		item, err := ResolveLocal(v.Item, namespace)
		if err != nil {
			return "", err
		}
		return "set<" + item + ">", nil
	case OptionalType:
		item, err := ResolveLocal(v.Item, namespace)
		if err != nil {
			return "", err
		}
		return "optional<" + item + ">", nil
	case MapType:
		key, err := ResolveLocal(v.Key, namespace)
		if err != nil {
			return "", err
		}
		value, err := ResolveLocal(v.Value, namespace)
		if err != nil {
			return "", err
		}
		return "map<" + key + ", " + value + ">", nil
	case LocalRefType:
		if namespace == "" {
			return v.Name, nil
		}
		return namespace + "." + v.Name, nil
	case ForeignRefType:
		return "", verigen.Errorf(verigen.CodeUnsupportedTypeShape,
			"generated definitions do not support foreign references: %s", v.String())
	default:
		return "", verigen.Errorf(verigen.CodeUnsupportedTypeShape,
			"unknown type expression kind %v", t.Kind())
	}
}
