package analyzer

// PrimitiveType is the closed set of property types the mock server can
// synthesize values for. Any other declared type is dropped during extraction.
type PrimitiveType int

const (
	Boolean PrimitiveType = iota
	Number
	String
)

func (t PrimitiveType) String() string {
	switch t {
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	}
	return "unknown"
}

// Property is one named, primitive-typed member of an entity. Names are taken
// verbatim from the declaration and are not deduplicated.
type Property struct {
	Name string
	Type PrimitiveType
}

// Entity is the schema for one mock endpoint: a route path plus the properties
// of the interface declaration it was extracted from, in declaration order.
type Entity struct {
	Route      string
	Properties []Property
}
