package visitors

import (
	"strings"
	"testing"

	"github.com/bawdo/gosframe/internal/testutil"
	"github.com/bawdo/gosframe/nodes"
)

// fmtPG returns a FormattingVisitor wrapping a non-parameterised PostgresVisitor.
// Used throughout formatting tests for concise setup.
func fmtPG() *FormattingVisitor {
	return NewFormattingVisitor(NewPostgresVisitor(WithoutParams()))
}

// fmtMySQL returns a FormattingVisitor wrapping a non-parameterised MySQLVisitor.
func fmtMySQL() *FormattingVisitor {
	return NewFormattingVisitor(NewMySQLVisitor(WithoutParams()))
}

func TestFormattingVisitorDelegatesLeafNodes(t *testing.T) {
	t.Parallel()
	fv := fmtPG()
	orders := nodes.NewTable("orders")

	// VisitTable
	testutil.AssertSQL(t, fv, orders, `"orders"`)
	// VisitAttribute
	testutil.AssertSQL(t, fv, orders.Col("id"), `"orders"."id"`)
	// VisitLiteral
	testutil.AssertSQL(t, fv, nodes.Literal("alice"), `'alice'`)
	testutil.AssertSQL(t, fv, nodes.Literal(42), `42`)
	// VisitStar
	testutil.AssertSQL(t, fv, nodes.Star(), `*`)
}

func TestFormattingVisitorDelegatesMySQLQuoting(t *testing.T) {
	t.Parallel()
	fv := fmtMySQL()
	orders := nodes.NewTable("orders")
	testutil.AssertSQL(t, fv, orders, "`orders`")
	testutil.AssertSQL(t, fv, orders.Col("id"), "`orders`.`id`")
}

func TestFormattingVisitorParamsForwardedToInner(t *testing.T) {
	t.Parallel()
	inner := NewPostgresVisitor(WithParams())
	fv := NewFormattingVisitor(inner)

	// FormattingVisitor must implement Parameterizer
	p, ok := nodes.Visitor(fv).(nodes.Parameterizer)
	if !ok {
		t.Fatal("FormattingVisitor does not implement Parameterizer")
	}

	p.Reset()
	_ = nodes.Literal("hello").Accept(fv)
	params := p.Params()
	if len(params) != 1 || params[0] != "hello" {
		t.Errorf("expected params [hello], got %v", params)
	}

	// Verify Reset clears the accumulated params
	p.Reset()
	if got := p.Params(); got != nil {
		t.Errorf("expected nil params after Reset, got %v", got)
	}
}

func TestFormattingSelectSingleColumn(t *testing.T) {
	t.Parallel()
	orders := nodes.NewTable("orders")
	core := &nodes.SelectCore{
		From:        orders,
		Projections: []nodes.Node{orders.Col("id")},
	}

	want := "SELECT \"orders\".\"id\"\nFROM \"orders\""
	testutil.AssertSQL(t, fmtPG(), core, want)
}

func TestFormattingSelectMultiColumn(t *testing.T) {
	t.Parallel()
	orders := nodes.NewTable("orders")
	core := &nodes.SelectCore{
		From: orders,
		Projections: []nodes.Node{
			orders.Col("id"), orders.Col("total"), orders.Col("status"),
		},
	}

	want := "SELECT \"orders\".\"id\"\n\t,\"orders\".\"total\"\n\t,\"orders\".\"status\"\nFROM \"orders\""
	testutil.AssertSQL(t, fmtPG(), core, want)
}

func TestFormattingSelectStar(t *testing.T) {
	t.Parallel()
	core := &nodes.SelectCore{From: nodes.NewTable("orders")}
	// No explicit projections, should default to *
	want := "SELECT *\nFROM \"orders\""
	testutil.AssertSQL(t, fmtPG(), core, want)
}

func TestFormattingDistinct(t *testing.T) {
	t.Parallel()
	core := &nodes.SelectCore{From: nodes.NewTable("orders"), Distinct: true}
	want := "SELECT DISTINCT *\nFROM \"orders\""
	testutil.AssertSQL(t, fmtPG(), core, want)
}

func TestFormattingJoinOnOwnLine(t *testing.T) {
	t.Parallel()
	orders := nodes.NewTable("orders")
	items := nodes.NewTable("items")
	core := &nodes.SelectCore{
		From:        orders,
		Projections: []nodes.Node{orders.Col("id")},
		Joins: []*nodes.JoinNode{{
			Left:  orders,
			Right: items,
			Type:  nodes.InnerJoin,
			On:    items.Col("order_id").Eq(orders.Col("id")),
		}},
	}

	got := core.Accept(fmtPG())
	if !strings.Contains(got, "\nINNER JOIN \"items\"") {
		t.Errorf("expected JOIN on its own line, got:\n%s", got)
	}
	if !strings.Contains(got, "\n\tON ") {
		t.Errorf("expected ON on a continuation line, got:\n%s", got)
	}
}

func TestFormattingWhereSingle(t *testing.T) {
	t.Parallel()
	orders := nodes.NewTable("orders")
	core := &nodes.SelectCore{
		From:        orders,
		Projections: []nodes.Node{orders.Col("id")},
		Wheres:      []nodes.Node{orders.Col("total").Gt(100)},
	}

	got := core.Accept(fmtPG())
	if !strings.Contains(got, "\nWHERE ") {
		t.Errorf("expected WHERE on its own line, got:\n%s", got)
	}
	// Single condition, should NOT have AND continuation
	if strings.Contains(got, "\n\tAND") {
		t.Errorf("single WHERE should not have AND continuation, got:\n%s", got)
	}
}

func TestFormattingWhereMultiple(t *testing.T) {
	t.Parallel()
	orders := nodes.NewTable("orders")
	core := &nodes.SelectCore{
		From:        orders,
		Projections: []nodes.Node{orders.Col("id")},
		Wheres: []nodes.Node{
			orders.Col("total").Gt(100),
			orders.Col("status").Eq("open"),
		},
	}

	got := core.Accept(fmtPG())
	if !strings.Contains(got, "\nWHERE ") {
		t.Errorf("expected WHERE on its own line, got:\n%s", got)
	}
	if !strings.Contains(got, "\n\tAND ") {
		t.Errorf("expected AND continuation, got:\n%s", got)
	}
}

func TestFormattingOrderByMultiple(t *testing.T) {
	t.Parallel()
	orders := nodes.NewTable("orders")
	core := &nodes.SelectCore{
		From:        orders,
		Projections: []nodes.Node{orders.Col("id")},
		Orders: []nodes.Node{
			orders.Col("total").Desc(),
			orders.Col("id").Asc(),
		},
	}

	got := core.Accept(fmtPG())
	if !strings.Contains(got, "\nORDER BY ") {
		t.Errorf("expected ORDER BY on own line, got:\n%s", got)
	}
	if !strings.Contains(got, "\n\t,") {
		t.Errorf("expected leading-comma continuation in ORDER BY, got:\n%s", got)
	}
}

func TestFormattingLimitOffset(t *testing.T) {
	t.Parallel()
	orders := nodes.NewTable("orders")
	core := &nodes.SelectCore{
		From:        orders,
		Projections: []nodes.Node{orders.Col("id")},
		Limit:       nodes.Literal(10),
		Offset:      nodes.Literal(5),
	}

	got := core.Accept(fmtPG())
	if !strings.Contains(got, "\nLIMIT 10") {
		t.Errorf("expected LIMIT on own line, got:\n%s", got)
	}
	if !strings.Contains(got, "\nOFFSET 5") {
		t.Errorf("expected OFFSET on own line, got:\n%s", got)
	}
}

func TestFormattingSubqueryIndented(t *testing.T) {
	t.Parallel()
	tbl := nodes.NewSchemaTable("sales", "orders")
	inner := &nodes.SelectCore{
		From:        tbl.Alias("root"),
		Projections: []nodes.Node{tbl.Alias("root").Col("id")},
	}
	rel := &nodes.TableAlias{Relation: inner, AliasName: "root"}
	outer := &nodes.SelectCore{
		From:        rel,
		Projections: []nodes.Node{rel.Col("id")},
	}

	want := "SELECT \"root\".\"id\"\n" +
		"FROM (\n" +
		"\tSELECT \"root\".\"id\"\n" +
		"\tFROM \"sales\".\"orders\" AS \"root\"\n" +
		") AS \"root\""
	testutil.AssertSQL(t, fmtPG(), outer, want)
}
