package vecgen

import (
	"fmt"
	"strings"
)

// RenderDeclaration returns the header block for one element type: the
// container struct followed by one prototype per operation.
func RenderDeclaration(elementType, sanitizedName string) string {
	elem := strings.TrimSpace(elementType)
	typeName := TypeName(sanitizedName)

	var sb strings.Builder
	fmt.Fprintf(&sb, "typedef struct %s {\n", typeName)
	fmt.Fprintf(&sb, "  size_t %s;\n", FieldLen)
	fmt.Fprintf(&sb, "  size_t %s;\n", FieldCap)
	fmt.Fprintf(&sb, "  %s;\n", declarator(pointerType(elem), FieldData))
	fmt.Fprintf(&sb, "} %s;\n\n", typeName)

	for _, op := range Operations {
		sb.WriteString(signature(op, elem, typeName))
		sb.WriteString(";\n")
	}

	return sb.String()
}

// RenderDefinition returns the source block for one element type: one
// function body per operation, separated by blank lines.
func RenderDefinition(elementType, sanitizedName string) string {
	elem := strings.TrimSpace(elementType)
	typeName := TypeName(sanitizedName)

	funcs := make([]string, 0, len(Operations))
	for _, op := range Operations {
		var sb strings.Builder
		sb.WriteString(signature(op, elem, typeName))
		sb.WriteString(" {\n")
		sb.WriteString(bodies[op.Name](elem))
		sb.WriteString("}\n")
		funcs = append(funcs, sb.String())
	}

	return strings.Join(funcs, "\n")
}

// RenderSpec renders both blocks for s
func RenderSpec(s TypeSpec) (declaration, definition string) {
	return RenderDeclaration(s.ElementType, s.SanitizedName),
		RenderDefinition(s.ElementType, s.SanitizedName)
}

// signature renders "ret name(T *self, params...)"
func signature(op Operation, elem, typeName string) string {
	params := make([]string, 0, op.Arity())
	params = append(params, declarator(pointerType(typeName), "self"))
	for _, p := range op.Params {
		params = append(params, declarator(slotType(p.Slot, elem), p.Name))
	}

	name := op.FuncName(typeName) + "(" + strings.Join(params, ", ") + ")"
	return declarator(slotType(op.Returns, elem), name)
}

func slotType(slot Slot, elem string) string {
	switch slot {
	case SlotElement:
		return elem
	case SlotIndex:
		return "size_t"
	default:
		return "void"
	}
}

// pointerType returns "T *", or "T**" style when T already ends in '*'
func pointerType(t string) string {
	if strings.HasSuffix(t, "*") {
		return t + "*"
	}
	return t + " *"
}

// declarator joins a type and a name, hugging a trailing '*'
func declarator(t, name string) string {
	if strings.HasSuffix(t, "*") {
		return t + name
	}
	return t + " " + name
}

var bodies = map[string]func(elem string) string{
	OpInit: func(elem string) string {
		return fmt.Sprintf(`  self->cap = %[1]s;
  self->len = 0;
  self->data = (%[2]s)malloc(self->cap * sizeof(%[3]s));
  assert(self->data != NULL);
`, CapacityMacro, pointerType(elem), elem)
	},
	OpDeinit: func(string) string {
		return `  free(self->data);
  self->data = NULL;
  self->len = 0;
  self->cap = 0;
`
	},
	OpAdd: func(elem string) string {
		return "  if (self->len >= self->cap) {\n" +
			growthStatements +
			fmt.Sprintf("    %s = (%s)realloc(self->data, new_cap * sizeof(%s));\n",
				declarator(pointerType(elem), "data"), pointerType(elem), elem) +
			`    assert(data != NULL);
    self->data = data;
    self->cap = new_cap;
  }
  self->data[self->len] = value;
  self->len++;
`
	},
	OpGet: func(string) string {
		return `  assert(index < self->len);
  return self->data[index];
`
	},
	OpSet: func(string) string {
		return `  assert(index < self->len);
  self->data[index] = value;
`
	},
}
