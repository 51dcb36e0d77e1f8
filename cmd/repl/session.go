package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bawdo/gosframe/frames"
	"github.com/bawdo/gosframe/nodes"
	"github.com/bawdo/gosframe/pure"
	"github.com/bawdo/gosframe/visitors"
	"github.com/ergochat/readline"
)

var errNoFrame = errors.New("no frame selected (use 'use <frame>' first)")

// Session holds the REPL state: registered frames, the current pipeline,
// the active visitor/engine, and the database connection.
type Session struct {
	frames       map[string]*frames.DataFrame
	current      *frames.DataFrame
	pipeline     []string // human-readable description of the current pipeline
	engine       string
	visitor      nodes.Visitor
	parameterize bool
	commands     []commandEntry // command registry (sorted by prefix length desc)
	conn         *dbConn        // nil when disconnected
	lastDSN      string         // remembers the previous DSN for reconnect
	rl           *readline.Instance
	out          io.Writer // destination for REPL output (default os.Stdout)
}

// NewSession creates a session with the given SQL dialect.
func NewSession(engine string, rl *readline.Instance) *Session {
	s := &Session{
		frames: make(map[string]*frames.DataFrame),
		rl:     rl,
		out:    os.Stdout,
	}
	s.setEngine(engine)
	s.initCommands()
	return s
}

func (s *Session) setEngine(engine string) {
	s.engine = engine
	var opts []visitors.Option
	if s.parameterize {
		opts = append(opts, visitors.WithParams())
	}
	switch engine {
	case "mysql":
		s.visitor = visitors.NewMySQLVisitor(opts...)
	case "sqlite":
		s.visitor = visitors.NewSQLiteVisitor(opts...)
	default:
		s.engine = "postgres"
		s.visitor = visitors.NewPostgresVisitor(opts...)
	}
}

// Execute dispatches one REPL line against the command registry.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	lower := strings.ToLower(line)

	for _, cmd := range s.commands {
		if strings.HasSuffix(cmd.prefix, " ") {
			if strings.HasPrefix(lower, cmd.prefix) {
				return cmd.handler(line[len(cmd.prefix):])
			}
		} else {
			if lower == cmd.prefix {
				return cmd.handler("")
			}
		}
	}

	word := strings.Fields(line)[0]
	return fmt.Errorf("unknown command: %s (type 'help' for commands)", word)
}

// --- Frame registration and selection ---

func (s *Session) cmdFrame(args string) error {
	df, name, err := parseFrameDecl(args)
	if err != nil {
		return err
	}
	s.frames[name] = df
	cols, _ := df.Columns()
	_, _ = fmt.Fprintf(s.out, "  Registered frame %q (%d columns)\n", name, len(cols))
	return nil
}

func (s *Session) cmdFrames() error {
	if len(s.frames) == 0 {
		_, _ = fmt.Fprintln(s.out, "  No frames registered")
		return nil
	}
	for _, name := range sortedFrameNames(s.frames) {
		cols, err := s.frames[name].Columns()
		if err != nil {
			_, _ = fmt.Fprintf(s.out, "  %s: invalid (%v)\n", name, err)
			continue
		}
		_, _ = fmt.Fprintf(s.out, "  %s: %s\n", name, describeColumns(cols))
	}
	return nil
}

func (s *Session) cmdUse(args string) error {
	name := strings.TrimSpace(args)
	df, ok := s.frames[name]
	if !ok {
		return fmt.Errorf("unknown frame %q (register with 'frame' first)", name)
	}
	s.current = df
	s.pipeline = []string{name}
	_, _ = fmt.Fprintf(s.out, "  Using frame %q\n", name)
	return nil
}

func (s *Session) cmdSave(args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return errors.New("usage: save <name>")
	}
	if s.current == nil {
		return errNoFrame
	}
	s.frames[name] = s.current
	_, _ = fmt.Fprintf(s.out, "  Saved pipeline as %q\n", name)
	return nil
}

func (s *Session) cmdReset() error {
	s.current = nil
	s.pipeline = nil
	_, _ = fmt.Fprintln(s.out, "  Pipeline cleared")
	return nil
}

// --- Pipeline building ---

func (s *Session) cmdMerge(args string) error {
	if s.current == nil {
		return errNoFrame
	}
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return errors.New("usage: merge <frame> [on=a,b] [left_on=..] [right_on=..] [how=inner] [suffixes=_x,_y]")
	}
	other, ok := s.frames[fields[0]]
	if !ok {
		return fmt.Errorf("unknown frame %q", fields[0])
	}
	opts, err := parseMergeOptions(fields[1:])
	if err != nil {
		return err
	}
	s.current = s.current.Merge(other, opts...)
	s.pipeline = append(s.pipeline, "merge("+strings.TrimSpace(args)+")")
	return s.reportStage()
}

func (s *Session) cmdFilter(args string) error {
	if s.current == nil {
		return errNoFrame
	}
	pred, err := parsePredicate(args)
	if err != nil {
		return err
	}
	s.current = s.current.Filter(pred)
	s.pipeline = append(s.pipeline, "filter("+strings.TrimSpace(args)+")")
	return s.reportStage()
}

func (s *Session) cmdSelect(args string) error {
	if s.current == nil {
		return errNoFrame
	}
	names := splitList(args)
	if len(names) == 0 {
		return errors.New("usage: select <col,...>")
	}
	s.current = s.current.Select(names...)
	s.pipeline = append(s.pipeline, "select("+strings.Join(names, ", ")+")")
	return s.reportStage()
}

func (s *Session) cmdRename(args string) error {
	if s.current == nil {
		return errNoFrame
	}
	parts := strings.Fields(args)
	if len(parts) != 2 {
		return errors.New("usage: rename <old> <new>")
	}
	s.current = s.current.Rename(parts[0], parts[1])
	s.pipeline = append(s.pipeline, "rename("+parts[0]+" -> "+parts[1]+")")
	return s.reportStage()
}

func (s *Session) cmdSort(args string) error {
	if s.current == nil {
		return errNoFrame
	}
	keys, err := parseSortKeys(args)
	if err != nil {
		return err
	}
	s.current = s.current.Sort(keys...)
	s.pipeline = append(s.pipeline, "sort("+strings.TrimSpace(args)+")")
	return s.reportStage()
}

func (s *Session) cmdDistinct() error {
	if s.current == nil {
		return errNoFrame
	}
	s.current = s.current.Distinct()
	s.pipeline = append(s.pipeline, "distinct")
	return s.reportStage()
}

func (s *Session) cmdTruncate(args string) error {
	if s.current == nil {
		return errNoFrame
	}
	parts := strings.Fields(args)
	if len(parts) != 2 {
		return errors.New("usage: truncate <before> <after>")
	}
	before, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	after, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	s.current = s.current.Truncate(before, after)
	s.pipeline = append(s.pipeline, fmt.Sprintf("truncate(%d, %d)", before, after))
	return s.reportStage()
}

// reportStage validates the new pipeline head and prints it. A stage that
// fails validation stays on the pipeline; errors also surface from sql/pure.
func (s *Session) reportStage() error {
	_, _ = fmt.Fprintf(s.out, "  Pipeline: %s\n", strings.Join(s.pipeline, " -> "))
	if err := s.current.Validate(); err != nil {
		_, _ = fmt.Fprintf(s.out, "  Warning: %v\n", err)
	}
	return nil
}

// --- Inspection ---

func (s *Session) cmdColumns() error {
	if s.current == nil {
		return errNoFrame
	}
	cols, err := s.current.Columns()
	if err != nil {
		return err
	}
	for _, c := range cols {
		_, _ = fmt.Fprintf(s.out, "  %-24s %s\n", c.Name, c.Type)
	}
	return nil
}

func (s *Session) cmdValidate() error {
	if s.current == nil {
		return errNoFrame
	}
	if err := s.current.Validate(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(s.out, "  OK")
	return nil
}

func (s *Session) cmdSQL() error {
	if s.current == nil {
		return errNoFrame
	}
	sql, params, err := s.current.SQL(s.visitor)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  %s;\n", sql)
	if len(params) > 0 {
		_, _ = fmt.Fprintf(s.out, "  Params: %v\n", params)
	}
	return nil
}

func (s *Session) cmdPretty() error {
	if s.current == nil {
		return errNoFrame
	}
	fv := visitors.NewFormattingVisitor(s.visitor)
	sql, params, err := s.current.SQL(fv)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "%s;\n", sql)
	if len(params) > 0 {
		_, _ = fmt.Fprintf(s.out, "  Params: %v\n", params)
	}
	return nil
}

func (s *Session) cmdPure(args string) error {
	if s.current == nil {
		return errNoFrame
	}
	mode := strings.TrimSpace(strings.ToLower(args))
	pretty := true
	switch mode {
	case "", "pretty":
	case "compact":
		pretty = false
	default:
		return fmt.Errorf("usage: pure [pretty|compact], got %q", mode)
	}
	prog, err := s.current.Pure(pure.NewConfig(pretty))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "%s\n", prog)
	return nil
}

// --- Engine / parameterize ---

func (s *Session) cmdEngine(args string) error {
	engine := strings.TrimSpace(strings.ToLower(args))
	if !isValidEngine(engine) {
		return fmt.Errorf("unknown engine %q (postgres, mysql, sqlite)", engine)
	}
	s.setEngine(engine)
	_, _ = fmt.Fprintf(s.out, "  Engine set to %s\n", s.engine)
	return nil
}

func (s *Session) cmdParameterize() error {
	s.parameterize = !s.parameterize
	s.setEngine(s.engine) // recreate visitor with/without parameterization
	if s.parameterize {
		_, _ = fmt.Fprintln(s.out, "  Parameterized queries enabled")
	} else {
		_, _ = fmt.Fprintln(s.out, "  Parameterized queries disabled")
	}
	return nil
}

// --- Database connectivity ---

func (s *Session) cmdConnect(args string) error {
	dsn := strings.TrimSpace(args)

	if s.conn != nil {
		return fmt.Errorf("already connected to %s (use 'disconnect' first)", sanitizeDSN(s.conn.dsn))
	}

	// Direct DSN provided, connect immediately.
	if dsn != "" {
		return s.connectWithDSN(dsn)
	}

	// Interactive: offer reconnect if we have a previous DSN, otherwise wizard.
	if s.lastDSN != "" {
		choice := prompt(s.rl, fmt.Sprintf("Reconnect to %s? (y/n/setup)", sanitizeDSN(s.lastDSN)), "y")
		switch strings.ToLower(choice) {
		case "y", "yes":
			return s.connectWithDSN(s.lastDSN)
		case "s", "setup":
			return s.connectViaWizard()
		default:
			_, _ = fmt.Fprintln(s.out, "  Connect cancelled")
			return nil
		}
	}

	return s.connectViaWizard()
}

func (s *Session) connectWithDSN(dsn string) error {
	conn, err := connect(s.engine, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	s.conn = conn
	s.lastDSN = dsn
	_, _ = fmt.Fprintf(s.out, "  Connected to %s (%s)\n", sanitizeDSN(dsn), s.engine)
	return nil
}

func (s *Session) connectViaWizard() error {
	var dsn string
	switch s.engine {
	case "sqlite":
		dsn = buildSQLiteDSN(s.rl)
	case "mysql":
		dsn = buildMySQLDSN(s.rl)
	default:
		dsn = buildPostgresDSN(s.rl)
	}

	if dsn == "" {
		_, _ = fmt.Fprintln(s.out, "  No connection configured")
		return nil
	}

	_, _ = fmt.Fprintf(s.out, "  DSN: %s\n", sanitizeDSN(dsn))
	return s.connectWithDSN(dsn)
}

func (s *Session) cmdDisconnect() error {
	if s.conn == nil {
		return errors.New("not connected")
	}
	dsn := sanitizeDSN(s.conn.dsn)
	if err := s.conn.close(); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	s.conn = nil
	_, _ = fmt.Fprintf(s.out, "  Disconnected from %s\n", dsn)
	return nil
}

// cmdExec executes the current pipeline against the connected database,
// always using parameterized queries for safety.
func (s *Session) cmdExec() error {
	if s.current == nil {
		return errNoFrame
	}
	if s.conn == nil {
		return errors.New("not connected (use 'connect <dsn>' first)")
	}

	if s.conn.engine != s.engine {
		_, _ = fmt.Fprintf(s.out, "  Warning: connected to %s but engine is set to %s\n", s.conn.engine, s.engine)
	}

	sqlStr, params, err := s.current.SQL(s.makeParamVisitor())
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(s.out, "  %s;\n", sqlStr)
	if len(params) > 0 {
		_, _ = fmt.Fprintf(s.out, "  Params: %v\n", params)
	}

	result, err := s.conn.execQuery(sqlStr, params)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(s.out, result)
	return nil
}

func (s *Session) makeParamVisitor() nodes.Visitor {
	opts := []visitors.Option{visitors.WithParams()}
	switch s.engine {
	case "mysql":
		return visitors.NewMySQLVisitor(opts...)
	case "sqlite":
		return visitors.NewSQLiteVisitor(opts...)
	default:
		return visitors.NewPostgresVisitor(opts...)
	}
}

func (s *Session) cmdTables() error {
	if s.conn == nil {
		return errors.New("not connected (use 'connect <dsn>' first)")
	}
	tables := s.conn.schemaTables()
	if len(tables) == 0 {
		_, _ = fmt.Fprintln(s.out, "  No tables found")
		return nil
	}
	for _, t := range tables {
		_, _ = fmt.Fprintf(s.out, "  %s\n", t)
	}
	return nil
}

func (s *Session) cmdHelp() {
	_, _ = fmt.Fprintln(s.out, `
  Frames:
    frame <name> <schema.table> <col:type,...>  Register a table frame
                                                (types: int, str, float, bool, date, timestamp)
    frames                    List registered frames
    use <name>                Start a pipeline from a registered frame
    save <name>               Register the current pipeline under a name
    reset                     Clear the current pipeline

  Pipeline:
    merge <frame> [opts]      Merge with another frame; opts are key=value:
                              on=a,b  left_on=..  right_on=..  how=inner|left|right|outer
                              suffixes=_x,_y
    filter <col> <op> [val]   Keep matching rows (= != > >= < <= like isnull notnull)
    select <col,...>          Keep only the named columns
    rename <old> <new>        Rename a column
    sort <col> [asc|desc],... Order rows
    distinct                  Remove duplicate rows
    truncate <before> <after> Keep rows in the position range [before, after]

  Inspection:
    columns                   Show the pipeline's output schema
    validate                  Run preflight checks without emitting anything
    sql                       Show generated SQL (single line)
    pretty                    Show generated SQL (formatted)
    pure [compact]            Show the equivalent Pure program

  Settings:
    engine <name>             Switch SQL dialect (postgres, mysql, sqlite)
    parameterize              Toggle parameterized queries (alias: params)

  Database:
    connect [dsn]             Connect to a database
    disconnect                Close the connection
    run                       Execute the pipeline's SQL (alias: exec)
    tables                    List tables in the connected database

  Other:
    help                      Show this help
    exit                      Quit (alias: quit)`)
}
