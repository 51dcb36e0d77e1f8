package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bawdo/gosframe/frames"
	"github.com/bawdo/gosframe/nodes"
)

// parseFrameDecl parses "frame" arguments:
//
//	<name> <schema.table> <col:type,col:type,...>
func parseFrameDecl(args string) (*frames.DataFrame, string, error) {
	fields := strings.Fields(args)
	if len(fields) < 3 {
		return nil, "", errors.New("usage: frame <name> <schema.table> <col:type,...>")
	}
	name := fields[0]

	schema, table := "", fields[1]
	if idx := strings.Index(fields[1], "."); idx >= 0 {
		schema, table = fields[1][:idx], fields[1][idx+1:]
	}
	if table == "" {
		return nil, "", fmt.Errorf("invalid table reference %q", fields[1])
	}

	cols, err := parseColumnSpec(strings.Join(fields[2:], " "))
	if err != nil {
		return nil, "", err
	}

	df := frames.Table(schema, table, cols...)
	if err := df.Validate(); err != nil {
		return nil, "", err
	}
	return df, name, nil
}

// parseColumnSpec parses "id:int,name:str,price:float" into columns.
func parseColumnSpec(spec string) ([]frames.Column, error) {
	var cols []frames.Column
	for _, item := range splitList(spec) {
		parts := strings.SplitN(item, ":", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid column spec %q (want name:type)", item)
		}
		ctor, err := columnCtor(parts[1])
		if err != nil {
			return nil, err
		}
		cols = append(cols, ctor(parts[0]))
	}
	if len(cols) == 0 {
		return nil, errors.New("no columns given")
	}
	return cols, nil
}

func columnCtor(typeName string) (func(string) frames.Column, error) {
	switch strings.ToLower(typeName) {
	case "int", "integer":
		return frames.Int, nil
	case "str", "string", "text":
		return frames.Str, nil
	case "float", "double", "number":
		return frames.Float, nil
	case "bool", "boolean":
		return frames.Bool, nil
	case "date":
		return frames.Date, nil
	case "timestamp", "datetime":
		return frames.Timestamp, nil
	default:
		return nil, fmt.Errorf("unknown column type %q (int, str, float, bool, date, timestamp)", typeName)
	}
}

// parseMergeOptions parses key=value merge arguments.
func parseMergeOptions(fields []string) ([]frames.MergeOption, error) {
	var opts []frames.MergeOption
	for _, f := range fields {
		parts := strings.SplitN(f, "=", 2)
		if len(parts) != 2 || parts[1] == "" {
			return nil, fmt.Errorf("invalid merge option %q (want key=value)", f)
		}
		key, val := strings.ToLower(parts[0]), parts[1]
		switch key {
		case "on":
			opts = append(opts, frames.On(splitList(val)...))
		case "left_on":
			opts = append(opts, frames.LeftOn(splitList(val)...))
		case "right_on":
			opts = append(opts, frames.RightOn(splitList(val)...))
		case "how":
			opts = append(opts, frames.How(val))
		case "suffixes":
			suf := splitList(val)
			if len(suf) != 2 {
				return nil, fmt.Errorf("suffixes wants two values, got %q", val)
			}
			opts = append(opts, frames.Suffixes(suf[0], suf[1]))
		default:
			return nil, fmt.Errorf("unknown merge option %q", key)
		}
	}
	return opts, nil
}

// parsePredicate parses "filter" arguments: <col> <op> [value].
func parsePredicate(args string) (func(frames.Row) nodes.Node, error) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return nil, errors.New("usage: filter <col> <op> [value]")
	}
	col, op := fields[0], strings.ToLower(fields[1])

	switch op {
	case "isnull":
		return func(r frames.Row) nodes.Node { return r.Col(col).IsNull() }, nil
	case "notnull":
		return func(r frames.Row) nodes.Node { return r.Col(col).IsNotNull() }, nil
	}

	if len(fields) < 3 {
		return nil, fmt.Errorf("operator %q needs a value", op)
	}
	val := parseLiteral(strings.Join(fields[2:], " "))

	switch op {
	case "=", "==":
		return func(r frames.Row) nodes.Node { return r.Col(col).Eq(val) }, nil
	case "!=", "<>":
		return func(r frames.Row) nodes.Node { return r.Col(col).NotEq(val) }, nil
	case ">":
		return func(r frames.Row) nodes.Node { return r.Col(col).Gt(val) }, nil
	case ">=":
		return func(r frames.Row) nodes.Node { return r.Col(col).GtEq(val) }, nil
	case "<":
		return func(r frames.Row) nodes.Node { return r.Col(col).Lt(val) }, nil
	case "<=":
		return func(r frames.Row) nodes.Node { return r.Col(col).LtEq(val) }, nil
	case "like":
		return func(r frames.Row) nodes.Node { return r.Col(col).Like(val) }, nil
	default:
		return nil, fmt.Errorf("unknown operator %q (= != > >= < <= like isnull notnull)", op)
	}
}

// parseSortKeys parses "sort" arguments: <col> [asc|desc][, <col> ...].
func parseSortKeys(args string) ([]frames.SortKey, error) {
	var keys []frames.SortKey
	for _, item := range strings.Split(args, ",") {
		fields := strings.Fields(item)
		switch len(fields) {
		case 0:
			continue
		case 1:
			keys = append(keys, frames.Asc(fields[0]))
		case 2:
			switch strings.ToLower(fields[1]) {
			case "asc":
				keys = append(keys, frames.Asc(fields[0]))
			case "desc":
				keys = append(keys, frames.Desc(fields[0]))
			default:
				return nil, fmt.Errorf("unknown sort direction %q", fields[1])
			}
		default:
			return nil, fmt.Errorf("invalid sort key %q", strings.TrimSpace(item))
		}
	}
	if len(keys) == 0 {
		return nil, errors.New("usage: sort <col> [asc|desc][, ...]")
	}
	return keys, nil
}

// parseLiteral interprets a filter value: int, float, bool, or string.
// Quotes are stripped from quoted strings.
func parseLiteral(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// splitList splits a comma-separated list, trimming whitespace and dropping
// empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func sortedFrameNames(m map[string]*frames.DataFrame) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func describeColumns(cols []frames.Column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c.Name + ":" + c.Type.String()
	}
	return strings.Join(parts, ", ")
}
