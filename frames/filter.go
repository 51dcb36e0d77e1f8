package frames

import (
	"github.com/bawdo/gosframe/nodes"
	"github.com/bawdo/gosframe/pure"
)

// filterFrame keeps the rows of base for which pred holds. The predicate is
// built twice per compile, once against the plan relation and once against
// the Pure lambda variable, so both representations share one expression
// tree shape.
type filterFrame struct {
	base Frame
	pred func(Row) nodes.Node
}

var _ Frame = (*filterFrame)(nil)

func (f *filterFrame) Columns() ([]Column, error) {
	return f.base.Columns()
}

func (f *filterFrame) Plan() (*nodes.SelectCore, error) {
	cols, err := f.base.Columns()
	if err != nil {
		return nil, err
	}
	inner, err := f.base.Plan()
	if err != nil {
		return nil, err
	}
	core, rel := wrapStage(inner, cols)
	core.Wheres = append(core.Wheres, f.pred(Row{rel: rel}))
	return core, nil
}

func (f *filterFrame) Pure(cfg pure.Config) (string, error) {
	prog, err := f.base.Pure(cfg)
	if err != nil {
		return "", err
	}
	expr := f.pred(Row{rel: nodes.NewTable("x")}).Accept(pure.NewExprVisitor())
	return prog + pureCall(cfg, "filter", pure.Lambda("x", expr)), nil
}
