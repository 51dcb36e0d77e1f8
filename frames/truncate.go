package frames

import (
	"fmt"
	"strconv"

	"github.com/bawdo/gosframe/nodes"
	"github.com/bawdo/gosframe/pure"
)

// truncateFrame keeps the rows with zero-based positions in [before, after].
type truncateFrame struct {
	base   Frame
	before int
	after  int
}

var _ Frame = (*truncateFrame)(nil)

func (f *truncateFrame) check() error {
	if f.before < 0 || f.after < f.before {
		return fmt.Errorf("truncate: invalid row range [%d, %d]", f.before, f.after)
	}
	return nil
}

func (f *truncateFrame) Columns() ([]Column, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	return f.base.Columns()
}

func (f *truncateFrame) Plan() (*nodes.SelectCore, error) {
	cols, err := f.Columns()
	if err != nil {
		return nil, err
	}
	inner, err := f.base.Plan()
	if err != nil {
		return nil, err
	}
	core, _ := wrapStage(inner, cols)
	core.Limit = nodes.Literal(f.after - f.before + 1)
	if f.before > 0 {
		core.Offset = nodes.Literal(f.before)
	}
	return core, nil
}

func (f *truncateFrame) Pure(cfg pure.Config) (string, error) {
	if err := f.check(); err != nil {
		return "", err
	}
	prog, err := f.base.Pure(cfg)
	if err != nil {
		return "", err
	}
	body := strconv.Itoa(f.before) + ", " + strconv.Itoa(f.after+1)
	return prog + pureCall(cfg, "slice", body), nil
}
