// Package spec models the master test specification: category-grouped
// test definitions whose payload literals are opaque serialized values.
// The loader is strict; a document with unknown fields or an unparseable
// type signature is rejected outright.
package spec

import (
	"github.com/verigen/verigen"
	"github.com/verigen/verigen/typeexpr"
)

// Category is one of the four test categories in the master specification.
type Category int

const (
	CategoryBody Category = iota
	CategorySingleHeaderParam
	CategorySinglePathParam
	CategorySingleQueryParam
)

// String returns the category's field name in the master document.
func (c Category) String() string {
	switch c {
	case CategoryBody:
		return "body"
	case CategorySingleHeaderParam:
		return "singleHeaderParam"
	case CategorySinglePathParam:
		return "singlePathParam"
	case CategorySingleQueryParam:
		return "singleQueryParam"
	default:
		return "unknown"
	}
}

// TestDefinition is one entry in a category: a type signature plus its
// ordered literal buckets. A literal's position in its bucket is the
// index a runner later uses to select it, so the lists are never
// reordered after load.
type TestDefinition struct {
	// Type is the textual type signature, e.g. "list<integer>".
	Type string `yaml:"type" validate:"required"`

	// Positive holds values both sides must accept.
	Positive []string `yaml:"positive"`

	// Negative holds values both sides must reject.
	Negative []string `yaml:"negative"`

	// ClientPositiveServerFail holds values a client must accept but a
	// server must reject. Which compiled bucket these land in depends on
	// the artifact direction; see the gen package.
	ClientPositiveServerFail []string `yaml:"clientPositiveServerFail"`

	// Expr is the parsed form of Type, populated by the loader.
	Expr typeexpr.Type `yaml:"-"`
}

// AllTestCases is the full master specification, grouped by category.
type AllTestCases struct {
	Body              []TestDefinition `yaml:"body" validate:"dive"`
	SingleHeaderParam []TestDefinition `yaml:"singleHeaderParam" validate:"dive"`
	SinglePathParam   []TestDefinition `yaml:"singlePathParam" validate:"dive"`
	SingleQueryParam  []TestDefinition `yaml:"singleQueryParam" validate:"dive"`
}

// Group returns the definitions for one category.
func (a *AllTestCases) Group(c Category) []TestDefinition {
	switch c {
	case CategoryBody:
		return a.Body
	case CategorySingleHeaderParam:
		return a.SingleHeaderParam
	case CategorySinglePathParam:
		return a.SinglePathParam
	case CategorySingleQueryParam:
		return a.SingleQueryParam
	default:
		return nil
	}
}

// resolve parses every type signature in the document. Any failure is a
// malformed-specification error naming the category.
func (a *AllTestCases) resolve() error {
	for _, c := range []Category{CategoryBody, CategorySingleHeaderParam, CategorySinglePathParam, CategorySingleQueryParam} {
		group := a.Group(c)
		for i := range group {
			expr, err := typeexpr.Parse(group[i].Type)
			if err != nil {
				return verigen.Errorf(verigen.CodeMalformedSpecification,
					"%s[%d]: %v", c, i, err)
			}
			group[i].Expr = expr
		}
	}
	return nil
}
