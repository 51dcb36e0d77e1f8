// Package frames implements a dataframe-style pipeline that compiles to a
// relational query plan and to an equivalent Pure functional program.
//
// A pipeline starts from a table frame and chains operations (merge, filter,
// select, rename, sort, distinct, truncate). Every stage compiles to a
// self-contained nodes.SelectCore, which the next stage embeds as an aliased
// subquery; the same stage also renders itself as one Pure relation function.
// Stages are immutable and stateless: each compile call recomputes from the
// stage inputs, so concurrent compiles need no synchronization.
package frames

import (
	"github.com/bawdo/gosframe/nodes"
	"github.com/bawdo/gosframe/pure"
)

// Alias under which every compiled stage exposes itself to its consumer.
const rootAlias = "root"

// Frame is the contract every pipeline stage satisfies.
type Frame interface {
	// Columns returns the ordered output columns of this stage.
	Columns() ([]Column, error)

	// Plan compiles this stage (and everything upstream) into a
	// self-contained SELECT.
	Plan() (*nodes.SelectCore, error)

	// Pure renders this stage (and everything upstream) as a Pure
	// functional program.
	Pure(cfg pure.Config) (string, error)
}

// Validator is implemented by stages with preflight checks beyond schema
// computation.
type Validator interface {
	Validate() error
}

// Row gives filter predicates access to the columns of the stage they run
// over. Col returns an attribute bound to the stage's relation, usable with
// the predication methods: row.Col("price").Gt(100).
type Row struct {
	rel nodes.Node
}

// Col returns a column reference bound to this row's relation.
func (r Row) Col(name string) *nodes.Attribute {
	return nodes.NewAttribute(r.rel, name)
}

// DataFrame is the fluent entry point over a Frame. Chaining methods build
// new stages and return new DataFrames; nothing is mutated or cached.
type DataFrame struct {
	frame Frame
}

// NewDataFrame wraps an existing Frame.
func NewDataFrame(f Frame) *DataFrame {
	return &DataFrame{frame: f}
}

// Table creates a DataFrame over a schema-qualified database table with the
// given columns.
func Table(schema, name string, cols ...Column) *DataFrame {
	return NewDataFrame(NewTableFrame(schema, name, cols...))
}

// Frame returns the underlying Frame of this stage.
func (df *DataFrame) Frame() Frame {
	return df.frame
}

// Columns returns the ordered output columns of the pipeline.
func (df *DataFrame) Columns() ([]Column, error) {
	return df.frame.Columns()
}

// Plan compiles the pipeline into a query-plan tree.
func (df *DataFrame) Plan() (*nodes.SelectCore, error) {
	return df.frame.Plan()
}

// Pure renders the pipeline as a Pure functional program.
func (df *DataFrame) Pure(cfg pure.Config) (string, error) {
	return df.frame.Pure(cfg)
}

// Validate runs the pipeline's preflight checks without emitting a plan or
// program. Errors surface exactly as they would from Plan or Pure.
func (df *DataFrame) Validate() error {
	if v, ok := df.frame.(Validator); ok {
		return v.Validate()
	}
	_, err := df.frame.Columns()
	return err
}

// SQL compiles the pipeline and renders it with the given dialect visitor,
// returning the SQL string and any collected bind parameters.
func (df *DataFrame) SQL(v nodes.Visitor) (string, []any, error) {
	core, err := df.frame.Plan()
	if err != nil {
		return "", nil, err
	}
	if p, ok := v.(nodes.Parameterizer); ok {
		p.Reset()
	}
	sql := core.Accept(v)
	var params []any
	if p, ok := v.(nodes.Parameterizer); ok {
		params = p.Params()
	}
	return sql, params, nil
}

// Merge joins this frame with other using pandas merge semantics. Options
// select the keys, join kind, and collision suffixes; errors surface from
// Validate, Columns, Plan, or Pure.
func (df *DataFrame) Merge(other *DataFrame, opts ...MergeOption) *DataFrame {
	return NewDataFrame(newMergeFrame(df.frame, other.frame, opts...))
}

// Filter keeps the rows for which the predicate holds.
func (df *DataFrame) Filter(pred func(Row) nodes.Node) *DataFrame {
	return NewDataFrame(&filterFrame{base: df.frame, pred: pred})
}

// Select keeps only the named columns, in the given order.
func (df *DataFrame) Select(names ...string) *DataFrame {
	return NewDataFrame(&selectFrame{base: df.frame, names: names})
}

// Rename renames one column.
func (df *DataFrame) Rename(old, new string) *DataFrame {
	return NewDataFrame(&renameFrame{base: df.frame, old: old, new: new})
}

// Sort orders the rows by the given keys.
func (df *DataFrame) Sort(keys ...SortKey) *DataFrame {
	return NewDataFrame(&sortFrame{base: df.frame, keys: keys})
}

// Distinct removes duplicate rows.
func (df *DataFrame) Distinct() *DataFrame {
	return NewDataFrame(&distinctFrame{base: df.frame})
}

// Truncate keeps the rows with zero-based positions in [before, after].
func (df *DataFrame) Truncate(before, after int) *DataFrame {
	return NewDataFrame(&truncateFrame{base: df.frame, before: before, after: after})
}

// wrapStage embeds inner as a subquery aliased rootAlias and re-selects cols
// from it, preserving order. Returns the enclosing core and the aliased
// relation for stages that need to attach predicates or orderings.
func wrapStage(inner *nodes.SelectCore, cols []Column) (*nodes.SelectCore, *nodes.TableAlias) {
	rel := &nodes.TableAlias{Relation: inner, AliasName: rootAlias}
	core := &nodes.SelectCore{From: rel}
	for _, c := range cols {
		core.Projections = append(core.Projections, nodes.NewAliasNode(rel.Col(c.Name), c.Name))
	}
	return core, rel
}
