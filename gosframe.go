// Package gosframe compiles dataframe-style pipelines into SQL query plans
// and equivalent Pure functional programs.
//
// This package re-exports commonly used types and functions from subpackages
// for convenience. Advanced users can import subpackages directly:
//   - github.com/bawdo/gosframe/frames (frame pipeline and merge compiler)
//   - github.com/bawdo/gosframe/nodes (AST nodes)
//   - github.com/bawdo/gosframe/visitors (SQL generation)
//   - github.com/bawdo/gosframe/pure (Pure program rendering)
package gosframe

import (
	"github.com/bawdo/gosframe/frames"
	"github.com/bawdo/gosframe/nodes"
	"github.com/bawdo/gosframe/pure"
	"github.com/bawdo/gosframe/visitors"
)

// --- Frame Types ---

// DataFrame is the fluent entry point over a frame pipeline.
type DataFrame = frames.DataFrame

// Column is a named, typed frame column.
type Column = frames.Column

// Row gives filter predicates access to the columns of the stage they run over.
type Row = frames.Row

// MergeOption configures a merge.
type MergeOption = frames.MergeOption

// --- Frame Constructors ---

// Table creates a DataFrame over a schema-qualified database table.
func Table(schema, name string, cols ...frames.Column) *frames.DataFrame {
	return frames.Table(schema, name, cols...)
}

// Int creates an integer column.
func Int(name string) frames.Column { return frames.Int(name) }

// Str creates a string column.
func Str(name string) frames.Column { return frames.Str(name) }

// Float creates a float column.
func Float(name string) frames.Column { return frames.Float(name) }

// Bool creates a boolean column.
func Bool(name string) frames.Column { return frames.Bool(name) }

// Date creates a date column.
func Date(name string) frames.Column { return frames.Date(name) }

// Timestamp creates a timestamp column.
func Timestamp(name string) frames.Column { return frames.Timestamp(name) }

// --- Merge Options ---

// On joins on the named columns, which must exist in both frames.
func On(names ...string) frames.MergeOption { return frames.On(names...) }

// LeftOn names the join keys on the base frame; pair with RightOn.
func LeftOn(names ...string) frames.MergeOption { return frames.LeftOn(names...) }

// RightOn names the join keys on the other frame; pair with LeftOn.
func RightOn(names ...string) frames.MergeOption { return frames.RightOn(names...) }

// How selects the join kind (inner, left, right, outer, and their aliases).
func How(how string) frames.MergeOption { return frames.How(how) }

// Suffixes overrides the collision suffixes for non-key columns present in
// both frames.
func Suffixes(left, right string) frames.MergeOption { return frames.Suffixes(left, right) }

// --- Sorting ---

// Asc sorts ascending by the named column.
func Asc(column string) frames.SortKey { return frames.Asc(column) }

// Desc sorts descending by the named column.
func Desc(column string) frames.SortKey { return frames.Desc(column) }

// --- Core Node Types ---

// Node is the base interface all AST nodes implement.
type Node = nodes.Node

// --- Visitor Types ---

// SQLiteVisitor generates SQLite-compatible SQL.
type SQLiteVisitor = visitors.SQLiteVisitor

// PostgresVisitor generates PostgreSQL-compatible SQL.
type PostgresVisitor = visitors.PostgresVisitor

// MySQLVisitor generates MySQL-compatible SQL.
type MySQLVisitor = visitors.MySQLVisitor

// --- Visitor Constructors ---

// NewSQLiteVisitor creates a new SQLite visitor.
func NewSQLiteVisitor(opts ...visitors.Option) *visitors.SQLiteVisitor {
	return visitors.NewSQLiteVisitor(opts...)
}

// NewPostgresVisitor creates a new PostgreSQL visitor.
func NewPostgresVisitor(opts ...visitors.Option) *visitors.PostgresVisitor {
	return visitors.NewPostgresVisitor(opts...)
}

// NewMySQLVisitor creates a new MySQL visitor.
func NewMySQLVisitor(opts ...visitors.Option) *visitors.MySQLVisitor {
	return visitors.NewMySQLVisitor(opts...)
}

// NewFormattingVisitor wraps a dialect visitor to produce multi-line SQL.
func NewFormattingVisitor(inner nodes.Visitor) *visitors.FormattingVisitor {
	return visitors.NewFormattingVisitor(inner)
}

// --- Visitor Options ---

// WithParams enables parameterized query mode for visitors.
func WithParams() visitors.Option {
	return visitors.WithParams()
}

// WithoutParams disables parameterized query mode. Only use when all values
// are trusted.
func WithoutParams() visitors.Option {
	return visitors.WithoutParams()
}

// --- Pure Rendering ---

// PureConfig controls pretty versus compact Pure program rendering.
type PureConfig = pure.Config

// Pretty renders Pure programs multi-line and indented.
func Pretty() pure.Config { return pure.NewConfig(true) }

// Compact renders Pure programs on a single line.
func Compact() pure.Config { return pure.NewConfig(false) }
