package pure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bawdo/gosframe/nodes"
)

// ExprVisitor renders scalar expression trees as Pure expressions, e.g.
// $l.col1 == $r.col1 && $l.col2 > 10. Attribute relations supply the lambda
// variable name: an attribute bound to a relation named "l" renders as
// $l.<name>.
//
// Only expression nodes are supported. Relational nodes (SelectCore, Join,
// TableAlias) panic; frames render those themselves.
type ExprVisitor struct{}

var _ nodes.Visitor = (*ExprVisitor)(nil)

// NewExprVisitor creates an ExprVisitor ready for use.
func NewExprVisitor() *ExprVisitor {
	return &ExprVisitor{}
}

func (v *ExprVisitor) VisitAttribute(n *nodes.Attribute) string {
	rel := nodes.RelationName(n.Relation)
	if rel == "" {
		panic("gosframe: Pure attribute requires a named relation")
	}
	return "$" + rel + "." + n.Name
}

func (v *ExprVisitor) VisitLiteral(n *nodes.LiteralNode) string {
	return pureLiteral(n.Value)
}

func (v *ExprVisitor) VisitBindParam(n *nodes.BindParamNode) string {
	return pureLiteral(n.Value)
}

func (v *ExprVisitor) VisitSqlLiteral(n *nodes.SqlLiteral) string {
	return n.Raw
}

func (v *ExprVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	var op string
	switch n.Op {
	case nodes.OpEq, nodes.OpCaseSensitiveEq:
		op = "=="
	case nodes.OpNotEq:
		op = "!="
	case nodes.OpGt:
		op = ">"
	case nodes.OpGtEq:
		op = ">="
	case nodes.OpLt:
		op = "<"
	case nodes.OpLtEq:
		op = "<="
	default:
		panic(fmt.Sprintf("gosframe: comparison op %d not supported in Pure expressions", n.Op))
	}
	return n.Left.Accept(v) + " " + op + " " + n.Right.Accept(v)
}

func (v *ExprVisitor) VisitUnary(n *nodes.UnaryNode) string {
	switch n.Op {
	case nodes.OpIsNull:
		return n.Expr.Accept(v) + "->isEmpty()"
	case nodes.OpIsNotNull:
		return n.Expr.Accept(v) + "->isNotEmpty()"
	default:
		panic(fmt.Sprintf("gosframe: unary op %d not supported in Pure expressions", n.Op))
	}
}

func (v *ExprVisitor) VisitAnd(n *nodes.AndNode) string {
	return n.Left.Accept(v) + " && " + n.Right.Accept(v)
}

func (v *ExprVisitor) VisitOr(n *nodes.OrNode) string {
	return n.Left.Accept(v) + " || " + n.Right.Accept(v)
}

func (v *ExprVisitor) VisitNot(n *nodes.NotNode) string {
	return "!(" + n.Expr.Accept(v) + ")"
}

func (v *ExprVisitor) VisitGrouping(n *nodes.GroupingNode) string {
	return "(" + n.Expr.Accept(v) + ")"
}

func (v *ExprVisitor) VisitIn(n *nodes.InNode) string {
	vals := make([]string, len(n.Vals))
	for i, val := range n.Vals {
		vals[i] = val.Accept(v)
	}
	expr := n.Expr.Accept(v) + "->in([" + strings.Join(vals, ", ") + "])"
	if n.Negate {
		return "!(" + expr + ")"
	}
	return expr
}

func (v *ExprVisitor) VisitBetween(n *nodes.BetweenNode) string {
	expr := n.Expr.Accept(v)
	between := "(" + expr + " >= " + n.Low.Accept(v) + " && " + expr + " <= " + n.High.Accept(v) + ")"
	if n.Negate {
		return "!" + between
	}
	return between
}

func (v *ExprVisitor) VisitTable(n *nodes.Table) string {
	panic("gosframe: Table not supported in Pure expressions")
}

func (v *ExprVisitor) VisitTableAlias(n *nodes.TableAlias) string {
	panic("gosframe: TableAlias not supported in Pure expressions")
}

func (v *ExprVisitor) VisitStar(n *nodes.StarNode) string {
	panic("gosframe: Star not supported in Pure expressions")
}

func (v *ExprVisitor) VisitJoin(n *nodes.JoinNode) string {
	panic("gosframe: Join not supported in Pure expressions")
}

func (v *ExprVisitor) VisitOrdering(n *nodes.OrderingNode) string {
	panic("gosframe: Ordering not supported in Pure expressions")
}

func (v *ExprVisitor) VisitSelectCore(n *nodes.SelectCore) string {
	panic("gosframe: SelectCore not supported in Pure expressions")
}

func (v *ExprVisitor) VisitAlias(n *nodes.AliasNode) string {
	panic("gosframe: Alias not supported in Pure expressions")
}

func pureLiteral(val any) string {
	switch x := val.(type) {
	case nil:
		return "[]"
	case string:
		return "'" + strings.ReplaceAll(x, "'", "\\'") + "'"
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		panic(fmt.Sprintf("gosframe: unsupported literal type %T in Pure expression", val))
	}
}
