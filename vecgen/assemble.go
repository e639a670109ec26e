package vecgen

import (
	"fmt"
	"strings"

	"github.com/teranos/cvecgen/internal/util"
)

// Divider separates per-type blocks in both documents
const Divider = "/********************************************************************************/"

// blockSeparator keeps one blank line between a block and the next divider
const blockSeparator = "\n" + Divider + "\n\n"

// DefaultInitialCapacity is the default INITIAL_CAP
const DefaultInitialCapacity = 10

// System headers the generated code depends on
var (
	headerSystemIncludes = []string{"stddef.h"}
	sourceSystemIncludes = []string{"stdlib.h", "stddef.h", "assert.h"}
)

// Layout carries the per-unit fixed parts of both documents
type Layout struct {
	// Unit is the output unit name; it names the header file and the guard
	Unit string

	// Includes are extra headers, e.g. "tokens.h" or "<stdint.h>"
	Includes []string

	// InitialCapacity is the value of INITIAL_CAP
	InitialCapacity int
}

// HeaderFile returns the header file name, e.g. "Vector.h"
func (l Layout) HeaderFile() string {
	return l.Unit + ".h"
}

// SourceFile returns the source file name, e.g. "Vector.c"
func (l Layout) SourceFile() string {
	return l.Unit + ".c"
}

// Guard returns the include guard macro, e.g. "VECTOR_H"
func (l Layout) Guard() string {
	return strings.ToUpper(util.ToSnakeCase(l.Unit)) + "_H"
}

// AssembleHeader wraps the declaration blocks, in order, in the include guard,
// the fixed includes and the capacity constant.
func AssembleHeader(l Layout, declarations []string) string {
	guard := l.Guard()

	var sb strings.Builder
	fmt.Fprintf(&sb, "#ifndef %s\n#define %s\n\n", guard, guard)
	writeIncludes(&sb, systemIncludes(headerSystemIncludes))
	writeIncludes(&sb, l.Includes)
	fmt.Fprintf(&sb, "\n#define %s %d\n\n", CapacityMacro, l.InitialCapacity)

	if len(declarations) > 0 {
		sb.WriteString(strings.Join(declarations, blockSeparator))
		sb.WriteString("\n")
	}

	sb.WriteString("#endif\n")
	return sb.String()
}

// AssembleSource prefixes the definition blocks, in order, with the paired
// header and the fixed includes.
func AssembleSource(l Layout, definitions []string) string {
	var sb strings.Builder
	writeIncludes(&sb, []string{l.HeaderFile()})
	writeIncludes(&sb, systemIncludes(sourceSystemIncludes))
	writeIncludes(&sb, l.Includes)

	if len(definitions) > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(definitions, blockSeparator))
	}

	return sb.String()
}

func systemIncludes(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "<" + n + ">"
	}
	return out
}

// writeIncludes emits one #include per entry; bare names are quoted
func writeIncludes(sb *strings.Builder, includes []string) {
	for _, inc := range includes {
		inc = strings.TrimSpace(inc)
		if strings.HasPrefix(inc, "<") || strings.HasPrefix(inc, "\"") {
			fmt.Fprintf(sb, "#include %s\n", inc)
			continue
		}
		fmt.Fprintf(sb, "#include \"%s\"\n", inc)
	}
}
