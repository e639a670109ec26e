// Package vecgen renders C growable-array containers, one per element type.
//
// A TypeSpec pairs a C element type with an identifier-safe name. Each spec
// becomes a declaration block (struct + prototypes) and a definition block
// (function bodies); the blocks of one output unit are assembled into a
// header/source pair:
//
//	docs, err := vecgen.Generate(vecgen.Unit{
//	    Name:  "Vector",
//	    Types: []vecgen.TypeSpec{{ElementType: "int", SanitizedName: "Int"}},
//	}, vecgen.DefaultOptions())
//
// Rendering and assembly are pure and never fail. Validation happens once, at
// the Generate/Run boundary.
package vecgen

import (
	"strings"

	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/internal/util"
)

// TypePrefix is prepended to the sanitized name to form the container type
const TypePrefix = "Vector"

// TypeSpec is one element type to generate a container for
type TypeSpec struct {
	// ElementType is any C type expression: "int", "Token", "char *"
	ElementType string `json:"type" yaml:"type" toml:"type"`

	// SanitizedName must be a C identifier; it names the container type
	SanitizedName string `json:"name" yaml:"name" toml:"name"`
}

// TypeName returns the generated container type name, e.g. "VectorInt"
func (s TypeSpec) TypeName() string {
	return TypeName(s.SanitizedName)
}

// TypeName returns TypePrefix + sanitizedName
func TypeName(sanitizedName string) string {
	return TypePrefix + sanitizedName
}

// Validate checks s can produce compilable C.
// Element type syntax is not parsed; only emptiness is checked.
func (s TypeSpec) Validate() error {
	if strings.TrimSpace(s.ElementType) == "" {
		return errors.WithHint(
			errors.NewInvalidSpecError("element type for %q is empty", s.SanitizedName),
			"set type to a C type expression such as \"int\" or \"char *\"")
	}
	if !util.IsIdentifier(s.SanitizedName) {
		err := errors.NewInvalidSpecError("sanitized name %q for type %q is not a C identifier",
			s.SanitizedName, s.ElementType)
		if suggestion := util.ToPascalCase(s.ElementType); util.IsIdentifier(suggestion) {
			return errors.WithHintf(err, "use letters, digits and underscores, e.g. %q", suggestion)
		}
		return errors.WithHint(err, "use letters, digits and underscores")
	}
	return nil
}
