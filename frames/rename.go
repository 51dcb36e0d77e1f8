package frames

import (
	"github.com/bawdo/gosframe/nodes"
	"github.com/bawdo/gosframe/pure"
)

// renameFrame renames one column of base.
type renameFrame struct {
	base Frame
	old  string
	new  string
}

var _ Frame = (*renameFrame)(nil)

func (f *renameFrame) Columns() ([]Column, error) {
	baseCols, err := f.base.Columns()
	if err != nil {
		return nil, err
	}
	found := false
	out := make([]Column, len(baseCols))
	for i, c := range baseCols {
		if c.Name == f.old {
			c.Name = f.new
			found = true
		}
		out[i] = c
	}
	if !found {
		return nil, UnknownKeyError{Key: f.old}
	}
	if err := checkUniqueNames(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *renameFrame) Plan() (*nodes.SelectCore, error) {
	if _, err := f.Columns(); err != nil {
		return nil, err
	}
	baseCols, err := f.base.Columns()
	if err != nil {
		return nil, err
	}
	inner, err := f.base.Plan()
	if err != nil {
		return nil, err
	}
	rel := &nodes.TableAlias{Relation: inner, AliasName: rootAlias}
	core := &nodes.SelectCore{From: rel}
	for _, c := range baseCols {
		out := c.Name
		if out == f.old {
			out = f.new
		}
		core.Projections = append(core.Projections, nodes.NewAliasNode(rel.Col(c.Name), out))
	}
	return core, nil
}

func (f *renameFrame) Pure(cfg pure.Config) (string, error) {
	if _, err := f.Columns(); err != nil {
		return "", err
	}
	prog, err := f.base.Pure(cfg)
	if err != nil {
		return "", err
	}
	return prog + pureRename(cfg, f.old, f.new), nil
}
