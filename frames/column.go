package frames

// PrimitiveType identifies the value type of a frame column.
type PrimitiveType int

const (
	IntegerType PrimitiveType = iota
	StringType
	FloatType
	BooleanType
	DateType
	TimestampType
)

// String returns the display name for this type.
func (t PrimitiveType) String() string {
	switch t {
	case IntegerType:
		return "Integer"
	case StringType:
		return "String"
	case FloatType:
		return "Float"
	case BooleanType:
		return "Boolean"
	case DateType:
		return "Date"
	case TimestampType:
		return "Timestamp"
	default:
		return "Unknown"
	}
}

// Column is a named, typed frame column. Names are unique within one frame.
type Column struct {
	Name string
	Type PrimitiveType
}

// Int creates an integer column.
func Int(name string) Column { return Column{Name: name, Type: IntegerType} }

// Str creates a string column.
func Str(name string) Column { return Column{Name: name, Type: StringType} }

// Float creates a float column.
func Float(name string) Column { return Column{Name: name, Type: FloatType} }

// Bool creates a boolean column.
func Bool(name string) Column { return Column{Name: name, Type: BooleanType} }

// Date creates a date column.
func Date(name string) Column { return Column{Name: name, Type: DateType} }

// Timestamp creates a timestamp column.
func Timestamp(name string) Column { return Column{Name: name, Type: TimestampType} }

// columnNames returns the names of cols in order.
func columnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

// nameSet returns a lookup set over the names of cols.
func nameSet(cols []Column) map[string]struct{} {
	set := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		set[c.Name] = struct{}{}
	}
	return set
}

// checkUniqueNames returns a DuplicateColumnError if two columns share a name.
func checkUniqueNames(cols []Column) error {
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if _, dup := seen[c.Name]; dup {
			return DuplicateColumnError{Name: c.Name}
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}
