package frames

import (
	"github.com/bawdo/gosframe/nodes"
	"github.com/bawdo/gosframe/pure"
)

// TableFrame is the input stage of a pipeline: a schema-qualified database
// table with a declared, ordered column list.
type TableFrame struct {
	schema string
	name   string
	cols   []Column
}

var _ Frame = (*TableFrame)(nil)

// NewTableFrame creates a table frame over schema.name with the given columns.
func NewTableFrame(schema, name string, cols ...Column) *TableFrame {
	return &TableFrame{schema: schema, name: name, cols: cols}
}

// Columns returns the declared columns after checking name uniqueness.
func (f *TableFrame) Columns() ([]Column, error) {
	if err := checkUniqueNames(f.cols); err != nil {
		return nil, err
	}
	out := make([]Column, len(f.cols))
	copy(out, f.cols)
	return out, nil
}

// Plan compiles to a SELECT over the aliased table, projecting every declared
// column under its own name.
func (f *TableFrame) Plan() (*nodes.SelectCore, error) {
	cols, err := f.Columns()
	if err != nil {
		return nil, err
	}
	tbl := nodes.NewSchemaTable(f.schema, f.name)
	rel := tbl.Alias(rootAlias)
	core := &nodes.SelectCore{From: rel}
	for _, c := range cols {
		core.Projections = append(core.Projections, nodes.NewAliasNode(rel.Col(c.Name), c.Name))
	}
	return core, nil
}

// Pure renders the table reference, e.g. #Table(test_schema.test_table)#.
func (f *TableFrame) Pure(_ pure.Config) (string, error) {
	if err := checkUniqueNames(f.cols); err != nil {
		return "", err
	}
	qualified := f.name
	if f.schema != "" {
		qualified = f.schema + "." + f.name
	}
	return "#Table(" + qualified + ")#", nil
}
