package visitors

import (
	"github.com/bawdo/gosframe/internal/quoting"
	"github.com/bawdo/gosframe/nodes"
)

// MySQLVisitor generates MySQL-dialect SQL.
// Identifiers are quoted with backticks: `table`.`column`.
type MySQLVisitor struct {
	*baseVisitor
}

// NewMySQLVisitor creates a MySQLVisitor ready for use.
func NewMySQLVisitor(opts ...Option) *MySQLVisitor {
	v := &MySQLVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:       v,
		quoteIdent:  quoting.Backtick,
		placeholder: func(_ int) string { return "?" },
	}
	v.applyOptions(opts)
	return v
}

func (v *MySQLVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	switch n.Op {
	case nodes.OpCaseSensitiveEq:
		return n.Left.Accept(v) + " = BINARY " + n.Right.Accept(v)
	case nodes.OpCaseInsensitiveEq:
		return n.Left.Accept(v) + " = " + n.Right.Accept(v)
	default:
		return v.baseVisitor.VisitComparison(n)
	}
}
