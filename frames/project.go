package frames

import (
	"strings"

	"github.com/bawdo/gosframe/nodes"
	"github.com/bawdo/gosframe/pure"
)

// selectFrame keeps only the named columns of base, in the requested order.
type selectFrame struct {
	base  Frame
	names []string
}

var _ Frame = (*selectFrame)(nil)

func (f *selectFrame) Columns() ([]Column, error) {
	baseCols, err := f.base.Columns()
	if err != nil {
		return nil, err
	}
	byName := make(map[string]Column, len(baseCols))
	for _, c := range baseCols {
		byName[c.Name] = c
	}
	out := make([]Column, 0, len(f.names))
	for _, n := range f.names {
		c, ok := byName[n]
		if !ok {
			return nil, UnknownKeyError{Key: n}
		}
		out = append(out, c)
	}
	if err := checkUniqueNames(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *selectFrame) Plan() (*nodes.SelectCore, error) {
	cols, err := f.Columns()
	if err != nil {
		return nil, err
	}
	inner, err := f.base.Plan()
	if err != nil {
		return nil, err
	}
	core, _ := wrapStage(inner, cols)
	return core, nil
}

func (f *selectFrame) Pure(cfg pure.Config) (string, error) {
	if _, err := f.Columns(); err != nil {
		return "", err
	}
	prog, err := f.base.Pure(cfg)
	if err != nil {
		return "", err
	}
	cols := make([]string, len(f.names))
	for i, n := range f.names {
		cols[i] = "~" + n
	}
	return prog + pureCall(cfg, "select", "["+strings.Join(cols, ", ")+"]"), nil
}

// distinctFrame removes duplicate rows of base.
type distinctFrame struct {
	base Frame
}

var _ Frame = (*distinctFrame)(nil)

func (f *distinctFrame) Columns() ([]Column, error) {
	return f.base.Columns()
}

func (f *distinctFrame) Plan() (*nodes.SelectCore, error) {
	cols, err := f.base.Columns()
	if err != nil {
		return nil, err
	}
	inner, err := f.base.Plan()
	if err != nil {
		return nil, err
	}
	core, _ := wrapStage(inner, cols)
	core.Distinct = true
	return core, nil
}

func (f *distinctFrame) Pure(cfg pure.Config) (string, error) {
	prog, err := f.base.Pure(cfg)
	if err != nil {
		return "", err
	}
	return prog + cfg.Sep(1) + "->distinct()", nil
}
