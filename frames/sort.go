package frames

import (
	"strings"

	"github.com/bawdo/gosframe/nodes"
	"github.com/bawdo/gosframe/pure"
)

// SortKey names a column to order by and the direction.
type SortKey struct {
	Column    string
	Direction nodes.OrderDirection
}

// Asc sorts ascending by the named column.
func Asc(column string) SortKey {
	return SortKey{Column: column, Direction: nodes.Asc}
}

// Desc sorts descending by the named column.
func Desc(column string) SortKey {
	return SortKey{Column: column, Direction: nodes.Desc}
}

// sortFrame orders the rows of base by the given keys.
type sortFrame struct {
	base Frame
	keys []SortKey
}

var _ Frame = (*sortFrame)(nil)

func (f *sortFrame) Columns() ([]Column, error) {
	cols, err := f.base.Columns()
	if err != nil {
		return nil, err
	}
	set := nameSet(cols)
	for _, k := range f.keys {
		if _, ok := set[k.Column]; !ok {
			return nil, UnknownKeyError{Key: k.Column}
		}
	}
	return cols, nil
}

func (f *sortFrame) Plan() (*nodes.SelectCore, error) {
	cols, err := f.Columns()
	if err != nil {
		return nil, err
	}
	inner, err := f.base.Plan()
	if err != nil {
		return nil, err
	}
	core, rel := wrapStage(inner, cols)
	for _, k := range f.keys {
		attr := rel.Col(k.Column)
		if k.Direction == nodes.Desc {
			core.Orders = append(core.Orders, attr.Desc())
		} else {
			core.Orders = append(core.Orders, attr.Asc())
		}
	}
	return core, nil
}

func (f *sortFrame) Pure(cfg pure.Config) (string, error) {
	if _, err := f.Columns(); err != nil {
		return "", err
	}
	prog, err := f.base.Pure(cfg)
	if err != nil {
		return "", err
	}
	keys := make([]string, len(f.keys))
	for i, k := range f.keys {
		dir := "ascending"
		if k.Direction == nodes.Desc {
			dir = "descending"
		}
		keys[i] = "~" + k.Column + "->" + dir + "()"
	}
	return prog + pureCall(cfg, "sort", "["+strings.Join(keys, ", ")+"]"), nil
}
