// Package pure renders Legend Pure functional programs from frame pipelines.
//
// A frame renders itself as a chain of Pure relation functions, e.g.
//
//	#Table(test_schema.test_table)#
//	  ->rename(
//	    ~col1, ~col1_key
//	  )
//
// Config controls pretty (multi-line, two-space indented) versus compact
// (single-line) rendering.
package pure

import "strings"

const indentUnit = "  "

// Config carries the rendering mode and current indentation depth for Pure
// program generation. The zero value renders compact single-line output.
type Config struct {
	Pretty bool
	depth  int
}

// NewConfig returns a Config rendering in pretty multi-line mode when pretty
// is true, compact single-line mode otherwise.
func NewConfig(pretty bool) Config {
	return Config{Pretty: pretty}
}

// Push returns a copy of the Config with the indentation depth increased by
// n units. Used when rendering a nested frame, e.g. the right side of a join.
func (c Config) Push(n int) Config {
	c.depth += n
	return c
}

// Sep returns the separator placed before a construct n indent units deeper
// than the current frame. Compact mode yields the empty string.
func (c Config) Sep(n int) string {
	if !c.Pretty {
		return ""
	}
	return "\n" + strings.Repeat(indentUnit, c.depth+n)
}

// SpacedSep is Sep for positions that still need a space in compact mode,
// such as after the comma between function arguments.
func (c Config) SpacedSep(n int) string {
	if !c.Pretty {
		return " "
	}
	return "\n" + strings.Repeat(indentUnit, c.depth+n)
}

// Lambda formats a Pure lambda with the given parameter list and body,
// e.g. Lambda("l, r", "$l.a == $r.b") yields "{l, r | $l.a == $r.b}".
func Lambda(params, body string) string {
	return "{" + params + " | " + body + "}"
}
