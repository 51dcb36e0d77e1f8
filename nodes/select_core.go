package nodes

// SelectCore represents the data container for a SELECT clause. Every frame
// pipeline stage compiles to one SelectCore, which an enclosing stage embeds
// as an aliased subquery.
type SelectCore struct {
	From        Node
	Projections []Node
	Wheres      []Node
	Joins       []*JoinNode
	Orders      []Node // OrderingNode values
	Limit       Node   // nil or LiteralNode
	Offset      Node   // nil or LiteralNode
	Distinct    bool
}

func (n *SelectCore) Accept(v Visitor) string { return v.VisitSelectCore(n) }
