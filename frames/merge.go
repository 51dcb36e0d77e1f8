package frames

import (
	"strings"

	"github.com/bawdo/gosframe/nodes"
	"github.com/bawdo/gosframe/pure"
)

// Plan-internal aliases for the two sides of a join.
const (
	leftAlias  = "left"
	rightAlias = "right"
)

// rightKeyTmpMarker disambiguates a same-named right key column during the
// Pure join; the trailing projection drops it again.
const rightKeyTmpMarker = "__right_key_tmp"

var defaultSuffixes = [2]string{"_x", "_y"}

// mergeConfig collects the merge options. The zero values mean: infer keys,
// inner join, default suffixes.
type mergeConfig struct {
	on       []string
	leftOn   []string
	rightOn  []string
	how      string
	suffixes [2]string

	// Requested features the compiler rejects outright.
	leftIndex        bool
	rightIndex       bool
	sorted           bool
	indicator        bool
	validateRelation string
}

// MergeOption configures a merge.
type MergeOption func(*mergeConfig)

// On joins on the named columns, which must exist in both frames.
// Mutually exclusive with LeftOn/RightOn.
func On(names ...string) MergeOption {
	return func(c *mergeConfig) { c.on = names }
}

// LeftOn names the join keys on the base frame; pair with RightOn.
func LeftOn(names ...string) MergeOption {
	return func(c *mergeConfig) { c.leftOn = names }
}

// RightOn names the join keys on the other frame; pair with LeftOn.
func RightOn(names ...string) MergeOption {
	return func(c *mergeConfig) { c.rightOn = names }
}

// How selects the join kind: inner, left, left_outer, right, right_outer,
// outer, full, or full_outer (case-insensitive). Default is inner.
func How(how string) MergeOption {
	return func(c *mergeConfig) { c.how = how }
}

// Suffixes overrides the collision suffixes applied to non-key columns
// present in both frames. Defaults are "_x" and "_y".
func Suffixes(left, right string) MergeOption {
	return func(c *mergeConfig) { c.suffixes = [2]string{left, right} }
}

// LeftIndex requests an index-based join on the base frame. Rejected with
// UnsupportedFeatureError.
func LeftIndex() MergeOption {
	return func(c *mergeConfig) { c.leftIndex = true }
}

// RightIndex requests an index-based join on the other frame. Rejected with
// UnsupportedFeatureError.
func RightIndex() MergeOption {
	return func(c *mergeConfig) { c.rightIndex = true }
}

// Sorted requests sorted merge output. Rejected with UnsupportedFeatureError.
func Sorted() MergeOption {
	return func(c *mergeConfig) { c.sorted = true }
}

// Indicator requests a merge-provenance indicator column. Rejected with
// UnsupportedFeatureError.
func Indicator() MergeOption {
	return func(c *mergeConfig) { c.indicator = true }
}

// ValidateRelation requests merge cardinality validation such as
// "one_to_one". Rejected with UnsupportedFeatureError.
func ValidateRelation(rule string) MergeOption {
	return func(c *mergeConfig) { c.validateRelation = rule }
}

// joinKind pairs the plan join type with its Pure JoinKind spelling.
type joinKind struct {
	node nodes.JoinType
	pure string
}

// resolveJoinKind maps a case-insensitive join-kind string onto the four
// supported kinds.
func resolveJoinKind(how string) (joinKind, error) {
	switch strings.ToLower(how) {
	case "inner":
		return joinKind{node: nodes.InnerJoin, pure: "INNER"}, nil
	case "left", "left_outer":
		return joinKind{node: nodes.LeftOuterJoin, pure: "LEFT"}, nil
	case "right", "right_outer":
		return joinKind{node: nodes.RightOuterJoin, pure: "RIGHT"}, nil
	case "outer", "full", "full_outer":
		return joinKind{node: nodes.FullOuterJoin, pure: "FULL"}, nil
	default:
		return joinKind{}, UnsupportedJoinKindError{How: how}
	}
}

// mergeFrame joins two frames with pandas merge semantics. Everything is
// derived per compile call from the two input frames and the config; nothing
// is cached and the inputs are never mutated.
type mergeFrame struct {
	base  Frame
	other Frame
	cfg   mergeConfig
}

var _ Frame = (*mergeFrame)(nil)
var _ Validator = (*mergeFrame)(nil)

func newMergeFrame(base, other Frame, opts ...MergeOption) *mergeFrame {
	cfg := mergeConfig{how: "inner", suffixes: defaultSuffixes}
	for _, o := range opts {
		o(&cfg)
	}
	return &mergeFrame{base: base, other: other, cfg: cfg}
}

// mergeResolution is everything the emitters need, resolved in one pass.
type mergeResolution struct {
	pairs  []keyPair
	kind   joinKind
	schema []outputColumn
	naming mergeNaming
}

func (f *mergeFrame) checkSupported() error {
	switch {
	case f.leftIndexRequested():
		return UnsupportedFeatureError{Feature: "merging on index columns"}
	case f.cfg.sorted:
		return UnsupportedFeatureError{Feature: "sorted merge output"}
	case f.cfg.indicator:
		return UnsupportedFeatureError{Feature: "merge indicator column"}
	case f.cfg.validateRelation != "":
		return UnsupportedFeatureError{Feature: "merge relation validation"}
	case f.base == f.other:
		return UnsupportedFeatureError{Feature: "merging a frame with itself"}
	}
	return nil
}

func (f *mergeFrame) leftIndexRequested() bool {
	return f.cfg.leftIndex || f.cfg.rightIndex
}

// resolve runs key resolution, join-kind resolution, and schema composition.
// Every emitter and the preflight check go through here, so all of them fail
// identically on the same malformed config.
func (f *mergeFrame) resolve() (*mergeResolution, error) {
	if err := f.checkSupported(); err != nil {
		return nil, err
	}
	baseCols, err := f.base.Columns()
	if err != nil {
		return nil, err
	}
	otherCols, err := f.other.Columns()
	if err != nil {
		return nil, err
	}
	pairs, err := resolveKeyPairs(f.cfg, baseCols, otherCols)
	if err != nil {
		return nil, err
	}
	kind, err := resolveJoinKind(f.cfg.how)
	if err != nil {
		return nil, err
	}
	schema, naming, err := composeSchema(baseCols, otherCols, pairs, f.cfg.suffixes)
	if err != nil {
		return nil, err
	}
	return &mergeResolution{pairs: pairs, kind: kind, schema: schema, naming: naming}, nil
}

// Validate runs the full resolution without emitting a plan or program.
func (f *mergeFrame) Validate() error {
	_, err := f.resolve()
	return err
}

// Columns returns the merged output schema.
func (f *mergeFrame) Columns() ([]Column, error) {
	res, err := f.resolve()
	if err != nil {
		return nil, err
	}
	return schemaColumns(res.schema), nil
}

// Plan compiles the merge: both sides wrapped as aliased subqueries, joined
// on the key predicate, with a select list following the output schema, the
// whole thing wrapped once more so it composes as a single relation.
func (f *mergeFrame) Plan() (*nodes.SelectCore, error) {
	res, err := f.resolve()
	if err != nil {
		return nil, err
	}
	leftCore, err := f.base.Plan()
	if err != nil {
		return nil, err
	}
	rightCore, err := f.other.Plan()
	if err != nil {
		return nil, err
	}

	leftRel := &nodes.TableAlias{Relation: leftCore, AliasName: leftAlias}
	rightRel := &nodes.TableAlias{Relation: rightCore, AliasName: rightAlias}
	join := &nodes.JoinNode{
		Left:  leftRel,
		Right: rightRel,
		Type:  res.kind.node,
		On:    buildJoinCondition(res.pairs, leftRel, rightRel),
	}

	inner := &nodes.SelectCore{
		From:  leftRel,
		Joins: []*nodes.JoinNode{join},
	}
	for _, oc := range res.schema {
		src := leftRel
		if oc.fromRight {
			src = rightRel
		}
		inner.Projections = append(inner.Projections, nodes.NewAliasNode(src.Col(oc.original), oc.Name))
	}

	core, _ := wrapStage(inner, schemaColumns(res.schema))
	return core, nil
}

// Pure renders the merge as a rename/join/project program. Non-key
// collisions are renamed to their final suffixed names before the join;
// same-named keys get a temporary right-side rename that a trailing
// projection drops again. Without same-named keys the join result already
// has the exact output columns and no projection is emitted.
func (f *mergeFrame) Pure(cfg pure.Config) (string, error) {
	res, err := f.resolve()
	if err != nil {
		return "", err
	}
	leftProg, err := f.base.Pure(cfg)
	if err != nil {
		return "", err
	}
	rightCfg := cfg.Push(2)
	rightProg, err := f.other.Pure(rightCfg)
	if err != nil {
		return "", err
	}

	baseCols, _ := f.base.Columns()
	otherCols, _ := f.other.Columns()

	var sb strings.Builder
	sb.WriteString(leftProg)
	for _, c := range baseCols {
		if _, ok := res.naming.overlap[c.Name]; ok {
			sb.WriteString(pureRename(cfg, c.Name, c.Name+f.cfg.suffixes[0]))
		}
	}

	sb.WriteString(cfg.Sep(1))
	sb.WriteString("->join(")
	sb.WriteString(cfg.Sep(2))
	sb.WriteString(rightProg)
	for _, c := range otherCols {
		if _, ok := res.naming.overlap[c.Name]; ok {
			sb.WriteString(pureRename(rightCfg, c.Name, c.Name+f.cfg.suffixes[1]))
		}
	}
	sameNamed := false
	for _, p := range res.pairs {
		if p.left == p.right {
			sameNamed = true
			sb.WriteString(pureRename(rightCfg, p.right, p.right+rightKeyTmpMarker))
		}
	}
	sb.WriteString(",")
	sb.WriteString(cfg.SpacedSep(2))
	sb.WriteString("JoinKind.")
	sb.WriteString(res.kind.pure)
	sb.WriteString(",")
	sb.WriteString(cfg.SpacedSep(2))
	sb.WriteString(pure.Lambda("l, r", buildLambdaBody(res.pairs, res.naming, f.cfg.suffixes)))
	sb.WriteString(cfg.Sep(1))
	sb.WriteString(")")

	if sameNamed {
		items := make([]string, len(res.schema))
		for i, oc := range res.schema {
			items[i] = oc.Name + ":x|$x." + oc.Name
		}
		sb.WriteString(pureCall(cfg, "project", "~["+strings.Join(items, ", ")+"]"))
	}
	return sb.String(), nil
}
