package vecgen

// Operation names. The generated function for op on type T is "T_op".
const (
	OpInit   = "init"
	OpDeinit = "deinit"
	OpAdd    = "add"
	OpGet    = "get"
	OpSet    = "set"
)

// Slot is a position in a signature filled in per TypeSpec
type Slot int

const (
	SlotVoid    Slot = iota // void
	SlotElement             // the TypeSpec element type
	SlotIndex               // size_t
)

// Param is a parameter after the leading self pointer
type Param struct {
	Name string
	Slot Slot
}

// Operation describes one generated function
type Operation struct {
	Name    string
	Returns Slot
	Params  []Param
}

// Arity counts parameters including self
func (o Operation) Arity() int {
	return len(o.Params) + 1
}

// FuncName returns the generated function name for typeName
func (o Operation) FuncName(typeName string) string {
	return typeName + "_" + o.Name
}

// Operations is the fixed contract every container implements, in emission order
var Operations = []Operation{
	{Name: OpInit, Returns: SlotVoid},
	{Name: OpDeinit, Returns: SlotVoid},
	{Name: OpAdd, Returns: SlotVoid, Params: []Param{{"value", SlotElement}}},
	{Name: OpGet, Returns: SlotElement, Params: []Param{{"index", SlotIndex}}},
	{Name: OpSet, Returns: SlotVoid, Params: []Param{{"index", SlotIndex}, {"value", SlotElement}}},
}

// Container field names
const (
	FieldLen  = "len"
	FieldCap  = "cap"
	FieldData = "data"
)

// CapacityMacro is the header constant holding the initial capacity
const CapacityMacro = "INITIAL_CAP"
