package visitors

import (
	"strings"
	"testing"

	"github.com/bawdo/gosframe/internal/testutil"
	"github.com/bawdo/gosframe/nodes"
)

func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("expected output to contain %q, got:\n%s", substr, s)
	}
}

// --- Table ---

func TestVisitTable(t *testing.T) {
	t.Parallel()
	orders := nodes.NewTable("orders")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), orders, `"orders"`)
	testutil.AssertSQL(t, NewMySQLVisitor(WithoutParams()), orders, "`orders`")
	testutil.AssertSQL(t, NewSQLiteVisitor(WithoutParams()), orders, `"orders"`)
}

func TestVisitSchemaTable(t *testing.T) {
	t.Parallel()
	tbl := nodes.NewSchemaTable("sales", "orders")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), tbl, `"sales"."orders"`)
	testutil.AssertSQL(t, NewMySQLVisitor(WithoutParams()), tbl, "`sales`.`orders`")
}

// --- TableAlias ---

func TestVisitTableAlias(t *testing.T) {
	t.Parallel()
	o := nodes.NewTable("orders").Alias("o")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), o, `"orders" AS "o"`)
	testutil.AssertSQL(t, NewMySQLVisitor(WithoutParams()), o, "`orders` AS `o`")
}

func TestVisitSubqueryAlias(t *testing.T) {
	t.Parallel()
	tbl := nodes.NewSchemaTable("sales", "orders")
	inner := &nodes.SelectCore{From: tbl.Alias("root")}
	rel := &nodes.TableAlias{Relation: inner, AliasName: "root"}

	want := `(SELECT * FROM "sales"."orders" AS "root") AS "root"`
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), rel, want)
}

// --- Attribute ---

func TestVisitAttribute(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("orders").Col("total")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), col, `"orders"."total"`)
	testutil.AssertSQL(t, NewMySQLVisitor(WithoutParams()), col, "`orders`.`total`")
}

func TestVisitAttributeOnAlias(t *testing.T) {
	t.Parallel()
	o := nodes.NewTable("orders").Alias("o")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), o.Col("total"), `"o"."total"`)
}

func TestQuotingEscapesEmbeddedQuotes(t *testing.T) {
	t.Parallel()
	weird := nodes.NewTable(`or"ders`)
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), weird, `"or""ders"`)
	tick := nodes.NewTable("or`ders")
	testutil.AssertSQL(t, NewMySQLVisitor(WithoutParams()), tick, "`or``ders`")
}

// --- Literals ---

func TestVisitLiteralString(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), nodes.Literal("Alice"), `'Alice'`)
}

func TestVisitLiteralStringEscapesSingleQuotes(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), nodes.Literal("O'Brien"), `'O''Brien'`)
}

func TestVisitLiteralInt(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), nodes.Literal(42), `42`)
}

func TestVisitLiteralFloat(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), nodes.Literal(3.14), `3.14`)
}

func TestVisitLiteralBool(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), nodes.Literal(true), `TRUE`)
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), nodes.Literal(false), `FALSE`)
}

func TestVisitLiteralNil(t *testing.T) {
	t.Parallel()
	n := &nodes.LiteralNode{Value: nil}
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), n, `NULL`)
}

func TestVisitLiteralNilNeverParameterized(t *testing.T) {
	t.Parallel()
	v := NewPostgresVisitor(WithParams())
	n := &nodes.LiteralNode{Value: nil}
	testutil.AssertSQL(t, v, n, `NULL`)
	if len(v.Params()) != 0 {
		t.Errorf("expected no params for NULL, got %v", v.Params())
	}
}

// --- SqlLiteral ---

func TestVisitSqlLiteral(t *testing.T) {
	t.Parallel()
	n := nodes.NewSqlLiteral("TRUE")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), n, `TRUE`)
}

// --- Comparisons ---

func TestVisitComparisonOperators(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("orders").Col("total")

	cases := []struct {
		node nodes.Node
		want string
	}{
		{col.Eq(1), `"orders"."total" = 1`},
		{col.NotEq(1), `"orders"."total" != 1`},
		{col.Gt(1), `"orders"."total" > 1`},
		{col.GtEq(1), `"orders"."total" >= 1`},
		{col.Lt(1), `"orders"."total" < 1`},
		{col.LtEq(1), `"orders"."total" <= 1`},
		{col.Like("a%"), `"orders"."total" LIKE 'a%'`},
		{col.NotLike("a%"), `"orders"."total" NOT LIKE 'a%'`},
	}
	for _, c := range cases {
		testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), c.node, c.want)
	}
}

func TestVisitComparisonAttributeToAttribute(t *testing.T) {
	t.Parallel()
	l := nodes.NewTable("l")
	r := nodes.NewTable("r")
	cmp := l.Col("id").Eq(r.Col("id"))
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), cmp, `"l"."id" = "r"."id"`)
}

func TestCaseSensitiveEqPerDialect(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("users").Col("name")
	cmp := col.CaseSensitiveEq("Bob")
	testutil.AssertSQL(t, NewSQLiteVisitor(WithoutParams()), cmp, `"users"."name" = 'Bob' COLLATE BINARY`)
	testutil.AssertSQL(t, NewMySQLVisitor(WithoutParams()), cmp, "`users`.`name` = BINARY 'Bob'")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), cmp, `"users"."name" = 'Bob'`)
}

func TestCaseInsensitiveEqPerDialect(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("users").Col("name")
	cmp := col.CaseInsensitiveEq("Bob")
	testutil.AssertSQL(t, NewSQLiteVisitor(WithoutParams()), cmp, `"users"."name" = 'Bob' COLLATE NOCASE`)
	testutil.AssertSQL(t, NewMySQLVisitor(WithoutParams()), cmp, "`users`.`name` = 'Bob'")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), cmp, `LOWER("users"."name") = LOWER('Bob')`)
}

// --- Unary / logical ---

func TestVisitIsNull(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("orders").Col("shipped_at")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), col.IsNull(), `"orders"."shipped_at" IS NULL`)
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), col.IsNotNull(), `"orders"."shipped_at" IS NOT NULL`)
}

func TestVisitAndOrNot(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("orders").Col("total")
	and := col.Gt(1).And(col.Lt(10))
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), and, `"orders"."total" > 1 AND "orders"."total" < 10`)

	or := col.Gt(10).Or(col.Lt(1))
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), or, `("orders"."total" > 10 OR "orders"."total" < 1)`)

	not := col.Eq(1).Not()
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), not, `NOT ("orders"."total" = 1)`)
}

func TestVisitGrouping(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("orders").Col("total")
	g := nodes.Group(col.Eq(1))
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), g, `("orders"."total" = 1)`)
}

// --- IN / BETWEEN ---

func TestVisitIn(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("orders").Col("status")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), col.In("new", "open"), `"orders"."status" IN ('new', 'open')`)
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), col.NotIn("closed"), `"orders"."status" NOT IN ('closed')`)
}

func TestVisitBetween(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("orders").Col("total")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), col.Between(1, 10), `"orders"."total" BETWEEN 1 AND 10`)
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), col.NotBetween(1, 10), `"orders"."total" NOT BETWEEN 1 AND 10`)
}

// --- Ordering ---

func TestVisitOrdering(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("orders").Col("total")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), col.Asc(), `"orders"."total" ASC`)
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), col.Desc(), `"orders"."total" DESC`)
}

// --- Alias ---

func TestVisitAlias(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("orders").Col("total")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), col.As("grand_total"), `"orders"."total" AS "grand_total"`)
}

// --- Join ---

func TestVisitJoinWithCondition(t *testing.T) {
	t.Parallel()
	l := nodes.NewTable("orders")
	r := nodes.NewTable("items")
	j := &nodes.JoinNode{
		Left:  l,
		Right: r,
		Type:  nodes.InnerJoin,
		On:    r.Col("order_id").Eq(l.Col("id")),
	}
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), j, `INNER JOIN "items" ON "items"."order_id" = "orders"."id"`)
}

func TestVisitJoinTypes(t *testing.T) {
	t.Parallel()
	r := nodes.NewTable("items")
	cases := map[nodes.JoinType]string{
		nodes.InnerJoin:      "INNER JOIN",
		nodes.LeftOuterJoin:  "LEFT OUTER JOIN",
		nodes.RightOuterJoin: "RIGHT OUTER JOIN",
		nodes.FullOuterJoin:  "FULL OUTER JOIN",
	}
	for jt, kw := range cases {
		j := &nodes.JoinNode{Right: r, Type: jt}
		got := j.Accept(NewPostgresVisitor(WithoutParams()))
		if !strings.HasPrefix(got, kw) {
			t.Errorf("expected prefix %q, got %q", kw, got)
		}
	}
}

// --- SelectCore ---

func TestVisitSelectCoreDefaultsToStar(t *testing.T) {
	t.Parallel()
	core := &nodes.SelectCore{From: nodes.NewTable("orders")}
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), core, `SELECT * FROM "orders"`)
}

func TestVisitSelectCoreFullShape(t *testing.T) {
	t.Parallel()
	tbl := nodes.NewTable("orders")
	rel := tbl.Alias("root")
	core := &nodes.SelectCore{
		From: rel,
		Projections: []nodes.Node{
			nodes.NewAliasNode(rel.Col("id"), "id"),
			nodes.NewAliasNode(rel.Col("total"), "total"),
		},
		Wheres: []nodes.Node{rel.Col("total").Gt(100)},
		Orders: []nodes.Node{rel.Col("id").Asc()},
		Limit:  nodes.Literal(10),
		Offset: nodes.Literal(5),
	}
	want := `SELECT "root"."id" AS "id", "root"."total" AS "total" ` +
		`FROM "orders" AS "root" WHERE "root"."total" > 100 ` +
		`ORDER BY "root"."id" ASC LIMIT 10 OFFSET 5`
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), core, want)
}

func TestVisitSelectCoreDistinct(t *testing.T) {
	t.Parallel()
	core := &nodes.SelectCore{From: nodes.NewTable("orders"), Distinct: true}
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), core, `SELECT DISTINCT * FROM "orders"`)
}

func TestVisitSelectCoreMultipleWheres(t *testing.T) {
	t.Parallel()
	tbl := nodes.NewTable("orders")
	core := &nodes.SelectCore{
		From:   tbl,
		Wheres: []nodes.Node{tbl.Col("a").Eq(1), tbl.Col("b").Eq(2)},
	}
	got := core.Accept(NewPostgresVisitor(WithoutParams()))
	assertContains(t, got, `WHERE "orders"."a" = 1 AND "orders"."b" = 2`)
}

// --- Parameterized mode ---

func TestParamsPostgresPlaceholders(t *testing.T) {
	t.Parallel()
	v := NewPostgresVisitor(WithParams())
	col := nodes.NewTable("orders").Col("total")
	got := col.Gt(100).And(col.Lt(200)).Accept(v)

	if got != `"orders"."total" > $1 AND "orders"."total" < $2` {
		t.Errorf("unexpected SQL: %s", got)
	}
	params := v.Params()
	if len(params) != 2 || params[0] != 100 || params[1] != 200 {
		t.Errorf("expected params [100 200], got %v", params)
	}
}

func TestParamsMySQLAndSQLitePlaceholders(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("orders").Col("total")

	my := NewMySQLVisitor(WithParams())
	if got := col.Gt(100).Accept(my); got != "`orders`.`total` > ?" {
		t.Errorf("unexpected MySQL SQL: %s", got)
	}

	lite := NewSQLiteVisitor(WithParams())
	if got := col.Gt(100).Accept(lite); got != `"orders"."total" > ?` {
		t.Errorf("unexpected SQLite SQL: %s", got)
	}
}

func TestParamsReset(t *testing.T) {
	t.Parallel()
	v := NewPostgresVisitor(WithParams())
	col := nodes.NewTable("orders").Col("total")

	_ = col.Gt(100).Accept(v)
	v.Reset()
	if v.Params() != nil {
		t.Errorf("expected nil params after Reset, got %v", v.Params())
	}

	got := col.Gt(7).Accept(v)
	if got != `"orders"."total" > $1` {
		t.Errorf("expected numbering to restart at $1, got %s", got)
	}
}

func TestBindParamAlwaysCollected(t *testing.T) {
	t.Parallel()
	v := NewPostgresVisitor(WithParams())
	n := nodes.NewBindParam("secret")
	if got := n.Accept(v); got != "$1" {
		t.Errorf("expected $1, got %s", got)
	}
	if params := v.Params(); len(params) != 1 || params[0] != "secret" {
		t.Errorf("expected params [secret], got %v", params)
	}
}

func TestBindParamRendersLiteralWithoutParams(t *testing.T) {
	t.Parallel()
	v := NewPostgresVisitor(WithoutParams())
	n := nodes.NewBindParam("secret")
	testutil.AssertSQL(t, v, n, `'secret'`)
}
