package typeexpr

import (
	"fmt"

	"github.com/verigen/verigen"
)

// primitiveNames is the closed set of declared primitive type names.
var primitiveNames = map[string]bool{
	"string":      true,
	"integer":     true,
	"double":      true,
	"boolean":     true,
	"safelong":    true,
	"rid":         true,
	"bearertoken": true,
	"uuid":        true,
}

// Parse turns a textual type signature into a type-expression tree.
//
// The grammar is small: primitives and builtins by name, "list<T>",
// "set<T>", "map<K, V>", "optional<T>", bare identifiers as local
// references, and "ns.Type" as foreign references. Whitespace is allowed
// around identifiers and separators. Failures are reported as
// malformed-specification errors carrying the original signature.
func Parse(signature string) (Type, error) {
	p := &parser{input: signature}
	t, err := p.parseType()
	if err != nil {
		return nil, verigen.Errorf(verigen.CodeMalformedSpecification,
			"parse type %q: %v", signature, err)
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, verigen.Errorf(verigen.CodeMalformedSpecification,
			"parse type %q: trailing characters at offset %d", signature, p.pos)
	}
	return t, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseType() (Type, error) {
	p.skipSpace()
	ident := p.readIdent()
	if ident == "" {
		return nil, fmt.Errorf("expected a type at offset %d", p.pos)
	}

	switch ident {
	case "list":
		item, err := p.parseAngleSingle(ident)
		if err != nil {
			return nil, err
		}
		return List(item), nil
	case "set":
		item, err := p.parseAngleSingle(ident)
		if err != nil {
			return nil, err
		}
		return Set(item), nil
	case "optional":
		item, err := p.parseAngleSingle(ident)
		if err != nil {
			return nil, err
		}
		return Optional(item), nil
	case "map":
		if !p.consume('<') {
			return nil, fmt.Errorf("map requires <key, value> at offset %d", p.pos)
		}
		key, err := p.parseType()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.consume(',') {
			return nil, fmt.Errorf("map requires two type parameters at offset %d", p.pos)
		}
		value, err := p.parseType()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.consume('>') {
			return nil, fmt.Errorf("unterminated map type at offset %d", p.pos)
		}
		return Map(key, value), nil
	case "binary":
		return Binary(), nil
	case "datetime":
		return DateTime(), nil
	case "any":
		return Any(), nil
	}

	if primitiveNames[ident] {
		return Primitive(ident), nil
	}

	// "ns.Type" is a foreign reference; a bare identifier is local.
	if p.consume('.') {
		name := p.readIdent()
		if name == "" {
			return nil, fmt.Errorf("expected a type name after %q at offset %d", ident+".", p.pos)
		}
		return ForeignRef(ident, name), nil
	}
	return LocalRef(ident), nil
}

// parseAngleSingle parses "<T>" after a single-parameter container keyword.
func (p *parser) parseAngleSingle(keyword string) (Type, error) {
	if !p.consume('<') {
		return nil, fmt.Errorf("%s requires a type parameter at offset %d", keyword, p.pos)
	}
	item, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.consume('>') {
		return nil, fmt.Errorf("unterminated %s type at offset %d", keyword, p.pos)
	}
	return item, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) consume(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) readIdent() string {
	start := p.pos
	for p.pos < len(p.input) && isIdentByte(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
