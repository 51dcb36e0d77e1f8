package frames

import (
	"github.com/bawdo/gosframe/nodes"
	"github.com/bawdo/gosframe/pure"
)

// buildJoinCondition builds the ON predicate for the plan: a left-to-right
// conjunction of parenthesized equalities over the two aliased relations.
// Empty pairs degrade to a literal TRUE (cross join).
func buildJoinCondition(pairs []keyPair, left, right *nodes.TableAlias) nodes.Node {
	if len(pairs) == 0 {
		return nodes.NewSqlLiteral("TRUE")
	}
	var cond nodes.Node
	for _, p := range pairs {
		eq := nodes.Group(left.Col(p.left).Eq(right.Col(p.right)))
		if cond == nil {
			cond = eq
		} else {
			cond = nodes.Group(&nodes.AndNode{Left: cond, Right: eq})
		}
	}
	return cond
}

// buildLambdaBody builds the body of the Pure join lambda. Operands use
// post-rename names: a left column in overlap carries suffixes[0], a
// same-named right key carries the temporary marker, and a right column in
// overlap carries suffixes[1].
func buildLambdaBody(pairs []keyPair, naming mergeNaming, suffixes [2]string) string {
	lvar := nodes.NewTable("l")
	rvar := nodes.NewTable("r")

	var cond nodes.Node
	for _, p := range pairs {
		leftName := p.left
		if _, ok := naming.overlap[leftName]; ok {
			leftName += suffixes[0]
		}
		rightName := p.right
		if p.left == p.right {
			rightName += rightKeyTmpMarker
		} else if _, ok := naming.overlap[rightName]; ok {
			rightName += suffixes[1]
		}
		eq := lvar.Col(leftName).Eq(rvar.Col(rightName))
		if cond == nil {
			cond = eq
		} else {
			cond = &nodes.AndNode{Left: cond, Right: eq}
		}
	}
	if cond == nil {
		return "true"
	}
	return cond.Accept(pure.NewExprVisitor())
}
