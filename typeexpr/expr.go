// Package typeexpr models the type-expression language used by the master
// test specification: primitives, the container types list, set, map and
// optional, references to locally declared or foreign types, and the
// builtins binary, datetime and any.
//
// The variant set is closed. Consumers dispatch over Kind with an
// exhaustive switch rather than extending the hierarchy.
package typeexpr

// Kind identifies the variant of a type expression.
type Kind int

const (
	KindPrimitive Kind = iota
	KindList
	KindSet
	KindMap
	KindOptional
	KindLocalRef
	KindForeignRef
	KindBinary
	KindDateTime
	KindAny
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindList:
		return "List"
	case KindSet:
		return "Set"
	case KindMap:
		return "Map"
	case KindOptional:
		return "Optional"
	case KindLocalRef:
		return "LocalRef"
	case KindForeignRef:
		return "ForeignRef"
	case KindBinary:
		return "Binary"
	case KindDateTime:
		return "DateTime"
	case KindAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// Type is a node in a type-expression tree. Implementations are immutable
// value types; a tree is never modified after Parse returns it.
type Type interface {
	// Kind returns the variant of this node.
	Kind() Kind

	// String returns the canonical textual form of the expression,
	// e.g. "map<string, list<integer>>".
	String() string
}

// PrimitiveType is a built-in scalar type such as "string" or "safelong".
type PrimitiveType struct {
	// Name is the primitive's declared name, e.g. "integer".
	Name string
}

func (t PrimitiveType) Kind() Kind     { return KindPrimitive }
func (t PrimitiveType) String() string { return t.Name }

// ListType is an ordered collection: list<Item>.
type ListType struct {
	Item Type
}

func (t ListType) Kind() Kind     { return KindList }
func (t ListType) String() string { return "list<" + t.Item.String() + ">" }

// SetType is an unordered collection: set<Item>.
type SetType struct {
	Item Type
}

func (t SetType) Kind() Kind     { return KindSet }
func (t SetType) String() string { return "set<" + t.Item.String() + ">" }

// MapType is a key-value mapping: map<Key, Value>.
type MapType struct {
	Key   Type
	Value Type
}

func (t MapType) Kind() Kind { return KindMap }
func (t MapType) String() string {
	return "map<" + t.Key.String() + ", " + t.Value.String() + ">"
}

// OptionalType is a possibly-absent value: optional<Item>.
type OptionalType struct {
	Item Type
}

func (t OptionalType) Kind() Kind     { return KindOptional }
func (t OptionalType) String() string { return "optional<" + t.Item.String() + ">" }

// LocalRefType references a type declared in the local namespace.
type LocalRefType struct {
	Name string
}

func (t LocalRefType) Kind() Kind     { return KindLocalRef }
func (t LocalRefType) String() string { return t.Name }

// ForeignRefType references a type in another namespace ("ns.Type").
// Foreign references parse but are rejected by every downstream consumer.
type ForeignRefType struct {
	Namespace string
	Name      string
}

func (t ForeignRefType) Kind() Kind     { return KindForeignRef }
func (t ForeignRefType) String() string { return t.Namespace + "." + t.Name }

// BinaryType is the builtin binary (raw bytes) type.
type BinaryType struct{}

func (t BinaryType) Kind() Kind     { return KindBinary }
func (t BinaryType) String() string { return "binary" }

// DateTimeType is the builtin timestamp type.
type DateTimeType struct{}

func (t DateTimeType) Kind() Kind     { return KindDateTime }
func (t DateTimeType) String() string { return "datetime" }

// AnyType is the builtin unconstrained type.
type AnyType struct{}

func (t AnyType) Kind() Kind     { return KindAny }
func (t AnyType) String() string { return "any" }

// Convenience constructors.

// Primitive returns a PrimitiveType with the given declared name.
func Primitive(name string) PrimitiveType { return PrimitiveType{Name: name} }

// List returns a ListType wrapping item.
func List(item Type) ListType { return ListType{Item: item} }

// Set returns a SetType wrapping item.
func Set(item Type) SetType { return SetType{Item: item} }

// Map returns a MapType from key to value.
func Map(key, value Type) MapType { return MapType{Key: key, Value: value} }

// Optional returns an OptionalType wrapping item.
func Optional(item Type) OptionalType { return OptionalType{Item: item} }

// LocalRef returns a reference to a locally declared type.
func LocalRef(name string) LocalRefType { return LocalRefType{Name: name} }

// ForeignRef returns a reference to a type in another namespace.
func ForeignRef(namespace, name string) ForeignRefType {
	return ForeignRefType{Namespace: namespace, Name: name}
}

// Binary returns the builtin binary type.
func Binary() BinaryType { return BinaryType{} }

// DateTime returns the builtin datetime type.
func DateTime() DateTimeType { return DateTimeType{} }

// Any returns the builtin any type.
func Any() AnyType { return AnyType{} }
