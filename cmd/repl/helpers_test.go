package main

import (
	"strings"
	"testing"

	"github.com/bawdo/gosframe/frames"
	"github.com/bawdo/gosframe/internal/testutil"
	"github.com/bawdo/gosframe/pure"
	"github.com/bawdo/gosframe/visitors"
)

// --- parseFrameDecl ---

func TestParseFrameDecl(t *testing.T) {
	t.Parallel()
	df, name, err := parseFrameDecl("orders sales.orders id:int,total:float,status:str")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, name, "orders")

	cols, err := df.Columns()
	testutil.AssertNoError(t, err)
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(cols))
	}
	testutil.AssertEqual(t, cols[0], frames.Int("id"))
	testutil.AssertEqual(t, cols[1], frames.Float("total"))
	testutil.AssertEqual(t, cols[2], frames.Str("status"))

	prog, err := df.Pure(pure.NewConfig(false))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, prog, "#Table(sales.orders)#")
}

func TestParseFrameDeclWithoutSchema(t *testing.T) {
	t.Parallel()
	df, _, err := parseFrameDecl("t plain id:int")
	testutil.AssertNoError(t, err)
	prog, err := df.Pure(pure.NewConfig(false))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, prog, "#Table(plain)#")
}

func TestParseFrameDeclErrors(t *testing.T) {
	t.Parallel()
	cases := []string{
		"",
		"orders",
		"orders sales.orders",
		"orders sales.orders id",
		"orders sales.orders id:whatever",
		"orders sales. id:int",
		"orders sales.orders :int",
	}
	for _, args := range cases {
		if _, _, err := parseFrameDecl(args); err == nil {
			t.Errorf("expected error for %q", args)
		}
	}
}

func TestColumnCtorAliases(t *testing.T) {
	t.Parallel()
	cases := map[string]frames.Column{
		"int":       frames.Int("c"),
		"integer":   frames.Int("c"),
		"str":       frames.Str("c"),
		"string":    frames.Str("c"),
		"text":      frames.Str("c"),
		"float":     frames.Float("c"),
		"double":    frames.Float("c"),
		"bool":      frames.Bool("c"),
		"BOOLEAN":   frames.Bool("c"),
		"date":      frames.Date("c"),
		"timestamp": frames.Timestamp("c"),
		"datetime":  frames.Timestamp("c"),
	}
	for typeName, want := range cases {
		ctor, err := columnCtor(typeName)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, ctor("c"), want)
	}
}

// --- parseMergeOptions ---

func TestParseMergeOptions(t *testing.T) {
	t.Parallel()
	a := frames.Table("s", "a", frames.Int("k"), frames.Str("v"))
	b := frames.Table("s", "b", frames.Int("k"), frames.Str("v"))

	opts, err := parseMergeOptions([]string{"on=k", "how=left", "suffixes=_l,_r"})
	testutil.AssertNoError(t, err)

	merged := a.Merge(b, opts...)
	cols, err := merged.Columns()
	testutil.AssertNoError(t, err)
	want := []string{"k", "v_l", "v_r"}
	for i, name := range want {
		testutil.AssertEqual(t, cols[i].Name, name)
	}
}

func TestParseMergeOptionsLeftRightOn(t *testing.T) {
	t.Parallel()
	a := frames.Table("s", "a", frames.Int("ka"), frames.Str("v"))
	b := frames.Table("s", "b", frames.Int("kb"), frames.Str("w"))

	opts, err := parseMergeOptions([]string{"left_on=ka", "right_on=kb"})
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, a.Merge(b, opts...).Validate())
}

func TestParseMergeOptionsErrors(t *testing.T) {
	t.Parallel()
	cases := [][]string{
		{"on"},
		{"on="},
		{"bogus=1"},
		{"suffixes=_x"},
		{"suffixes=_x,_y,_z"},
	}
	for _, fields := range cases {
		if _, err := parseMergeOptions(fields); err == nil {
			t.Errorf("expected error for %v", fields)
		}
	}
}

// --- parsePredicate ---

func TestParsePredicateOperators(t *testing.T) {
	t.Parallel()
	df := frames.Table("s", "t", frames.Int("total"), frames.Str("status"))
	v := visitors.NewPostgresVisitor(visitors.WithoutParams())

	cases := map[string]string{
		"total > 100":        `"root"."total" > 100`,
		"total >= 100":       `"root"."total" >= 100`,
		"total < 100":        `"root"."total" < 100`,
		"total <= 100":       `"root"."total" <= 100`,
		"total = 100":        `"root"."total" = 100`,
		"total == 100":       `"root"."total" = 100`,
		"total != 100":       `"root"."total" != 100`,
		"total <> 100":       `"root"."total" != 100`,
		"status like 'a%'":   `"root"."status" LIKE 'a%'`,
		"status isnull":      `"root"."status" IS NULL`,
		"status notnull":     `"root"."status" IS NOT NULL`,
		"status = 'open'":    `"root"."status" = 'open'`,
		"status = open":      `"root"."status" = 'open'`,
	}
	for args, wantWhere := range cases {
		pred, err := parsePredicate(args)
		testutil.AssertNoError(t, err)
		sql, _, err := df.Filter(pred).SQL(v)
		testutil.AssertNoError(t, err)
		if !strings.Contains(sql, "WHERE "+wantWhere) {
			t.Errorf("args %q: expected %q in:\n%s", args, wantWhere, sql)
		}
	}
}

func TestParsePredicateErrors(t *testing.T) {
	t.Parallel()
	cases := []string{
		"",
		"total",
		"total >",
		"total ~ 1",
	}
	for _, args := range cases {
		if _, err := parsePredicate(args); err == nil {
			t.Errorf("expected error for %q", args)
		}
	}
}

// --- parseLiteral ---

func TestParseLiteral(t *testing.T) {
	t.Parallel()
	if got := parseLiteral("42"); got != 42 {
		t.Errorf("expected int 42, got %T %v", got, got)
	}
	if got := parseLiteral("3.5"); got != 3.5 {
		t.Errorf("expected float 3.5, got %T %v", got, got)
	}
	if got := parseLiteral("true"); got != true {
		t.Errorf("expected bool true, got %T %v", got, got)
	}
	if got := parseLiteral("null"); got != nil {
		t.Errorf("expected nil, got %T %v", got, got)
	}
	if got := parseLiteral("'quoted'"); got != "quoted" {
		t.Errorf("expected unquoted string, got %T %v", got, got)
	}
	if got := parseLiteral(`"quoted"`); got != "quoted" {
		t.Errorf("expected unquoted string, got %T %v", got, got)
	}
	if got := parseLiteral("bare"); got != "bare" {
		t.Errorf("expected bare string, got %T %v", got, got)
	}
}

// --- parseSortKeys ---

func TestParseSortKeys(t *testing.T) {
	t.Parallel()
	keys, err := parseSortKeys("total desc, id")
	testutil.AssertNoError(t, err)
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
	testutil.AssertEqual(t, keys[0], frames.Desc("total"))
	testutil.AssertEqual(t, keys[1], frames.Asc("id"))
}

func TestParseSortKeysErrors(t *testing.T) {
	t.Parallel()
	cases := []string{"", "total sideways", "a b c"}
	for _, args := range cases {
		if _, err := parseSortKeys(args); err == nil {
			t.Errorf("expected error for %q", args)
		}
	}
}

// --- splitList / describeColumns / sortedFrameNames ---

func TestSplitList(t *testing.T) {
	t.Parallel()
	got := splitList(" a, b ,c,,")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		testutil.AssertEqual(t, got[i], want[i])
	}
}

func TestDescribeColumns(t *testing.T) {
	t.Parallel()
	got := describeColumns([]frames.Column{frames.Int("id"), frames.Str("name")})
	testutil.AssertEqual(t, got, "id:Integer, name:String")
}

func TestSortedFrameNames(t *testing.T) {
	t.Parallel()
	m := map[string]*frames.DataFrame{"zeta": nil, "alpha": nil, "mid": nil}
	got := sortedFrameNames(m)
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		testutil.AssertEqual(t, got[i], want[i])
	}
}
