package vecgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		unit  string
		guard string
	}{
		{"Vector", "VECTOR_H"},
		{"NumVectors", "NUM_VECTORS_H"},
		{"token_vec", "TOKEN_VEC_H"},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			l := Layout{Unit: tt.unit}
			assert.Equal(t, tt.guard, l.Guard())
			assert.Equal(t, tt.unit+".h", l.HeaderFile())
			assert.Equal(t, tt.unit+".c", l.SourceFile())
		})
	}
}

func TestAssembleHeader_OrderAndDividers(t *testing.T) {
	l := Layout{Unit: "Vector", InitialCapacity: 10}
	header := AssembleHeader(l, []string{"A\n", "B\n", "C\n"})

	a := strings.Index(header, "A\n")
	b := strings.Index(header, "B\n")
	c := strings.Index(header, "C\n")
	assert.True(t, a < b && b < c, "blocks out of order:\n%s", header)
	assert.Equal(t, 2, strings.Count(header, Divider))

	assert.Equal(t, 1, strings.Count(header, "#ifndef VECTOR_H"))
	assert.Equal(t, 1, strings.Count(header, "#define VECTOR_H"))
	assert.True(t, strings.HasSuffix(header, "C\n\n#endif\n"))
	assert.Contains(t, header, "#define INITIAL_CAP 10\n")
}

func TestAssembleHeader_Empty(t *testing.T) {
	header := AssembleHeader(Layout{Unit: "Vector", InitialCapacity: 10}, nil)

	want := "#ifndef VECTOR_H\n#define VECTOR_H\n\n" +
		"#include <stddef.h>\n\n" +
		"#define INITIAL_CAP 10\n\n" +
		"#endif\n"
	assert.Equal(t, want, header)
	assert.NotContains(t, header, Divider)
}

func TestAssembleSource_Empty(t *testing.T) {
	source := AssembleSource(Layout{Unit: "Vector"}, nil)

	want := "#include \"Vector.h\"\n" +
		"#include <stdlib.h>\n" +
		"#include <stddef.h>\n" +
		"#include <assert.h>\n"
	assert.Equal(t, want, source)
}

func TestAssembleSource_TwoBlocks(t *testing.T) {
	source := AssembleSource(Layout{Unit: "Vector"}, []string{"A\n", "B\n"})

	assert.True(t, strings.HasPrefix(source, "#include \"Vector.h\"\n"))
	assert.True(t, strings.HasSuffix(source, "\nA\n\n"+Divider+"\n\nB\n"), source)
	assert.Equal(t, 1, strings.Count(source, Divider))
}

func TestAssemble_Includes(t *testing.T) {
	l := Layout{
		Unit:            "Vector",
		Includes:        []string{"tokens.h", "<stdint.h>", `"lexer/span.h"`},
		InitialCapacity: 4,
	}

	for name, doc := range map[string]string{
		"header": AssembleHeader(l, nil),
		"source": AssembleSource(l, nil),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, doc, "#include \"tokens.h\"\n")
			assert.Contains(t, doc, "#include <stdint.h>\n")
			assert.Contains(t, doc, "#include \"lexer/span.h\"\n")
		})
	}
	assert.Contains(t, AssembleHeader(l, nil), "#define INITIAL_CAP 4\n")
}

// The A/B scenario: two specs in one unit keep their order in both documents
// and every header block has a matching source block.
func TestGenerate_TwoSpecsInOrder(t *testing.T) {
	docs, err := Generate(Unit{
		Name: "Vector",
		Types: []TypeSpec{
			{ElementType: "A", SanitizedName: "A"},
			{ElementType: "B", SanitizedName: "B"},
		},
	}, DefaultOptions())
	if !assert.NoError(t, err) {
		return
	}

	for _, doc := range []string{docs.Header, docs.Source} {
		assert.Less(t, strings.Index(doc, "VectorA_init"), strings.Index(doc, "VectorB_init"))
		assert.Equal(t, 1, strings.Count(doc, Divider))
	}
	assert.Equal(t, 1, strings.Count(docs.Header, "typedef struct VectorA {"))
	assert.Equal(t, 1, strings.Count(docs.Header, "typedef struct VectorB {"))
}
