package main

import (
	"errors"
	"sort"
	"strings"
)

// commandEntry maps a REPL prefix to its handler and optional tab-completer.
type commandEntry struct {
	prefix    string
	handler   func(args string) error
	completer func(args string) (completionContext, string) // nil = no arg completion
	hidden    bool                                          // excluded from commandNames()
}

// initCommands builds the command registry and sorts by prefix length descending.
func (s *Session) initCommands() {
	s.commands = []commandEntry{
		// --- frame registration and selection ---
		{prefix: "frame ", handler: func(a string) error { return s.cmdFrame(a) }},
		{prefix: "frames", handler: func(_ string) error { return s.cmdFrames() }},
		{prefix: "use ", handler: func(a string) error { return s.cmdUse(a) }, completer: completeFrameArgs},
		{prefix: "save ", handler: func(a string) error { return s.cmdSave(a) }},
		{prefix: "reset", handler: func(_ string) error { return s.cmdReset() }},

		// --- pipeline building ---
		{prefix: "merge ", handler: func(a string) error { return s.cmdMerge(a) }, completer: completeFrameArgs},
		{prefix: "filter ", handler: func(a string) error { return s.cmdFilter(a) }, completer: completeColumnArgs},
		{prefix: "select ", handler: func(a string) error { return s.cmdSelect(a) }, completer: completeColumnArgs},
		{prefix: "rename ", handler: func(a string) error { return s.cmdRename(a) }, completer: completeColumnArgs},
		{prefix: "sort ", handler: func(a string) error { return s.cmdSort(a) }, completer: completeColumnArgs},
		{prefix: "distinct", handler: func(_ string) error { return s.cmdDistinct() }},
		{prefix: "truncate ", handler: func(a string) error { return s.cmdTruncate(a) }},

		// --- inspection ---
		{prefix: "columns", handler: func(_ string) error { return s.cmdColumns() }},
		{prefix: "cols", handler: func(_ string) error { return s.cmdColumns() }, hidden: true},
		{prefix: "validate", handler: func(_ string) error { return s.cmdValidate() }},
		{prefix: "sql", handler: func(_ string) error { return s.cmdSQL() }},
		{prefix: "pretty", handler: func(_ string) error { return s.cmdPretty() }},
		{prefix: "pure ", handler: func(a string) error { return s.cmdPure(a) }},
		{prefix: "pure", handler: func(_ string) error { return s.cmdPure("") }},

		// --- engine / parameterize ---
		{prefix: "engine ", handler: func(a string) error { return s.cmdEngine(a) }, completer: completeEngineArgs},
		{prefix: "set_engine ", handler: func(a string) error { return s.cmdEngine(a) }, completer: completeEngineArgs, hidden: true},
		{prefix: "engine", handler: func(_ string) error { return errors.New("usage: engine <postgres|mysql|sqlite>") }, hidden: true},
		{prefix: "parameterize", handler: func(_ string) error { return s.cmdParameterize() }},
		{prefix: "params", handler: func(_ string) error { return s.cmdParameterize() }},

		// --- database connectivity ---
		{prefix: "connect ", handler: func(a string) error { return s.cmdConnect(a) }},
		{prefix: "connect", handler: func(_ string) error { return s.cmdConnect("") }},
		{prefix: "disconnect", handler: func(_ string) error { return s.cmdDisconnect() }},
		{prefix: "exec", handler: func(_ string) error { return s.cmdExec() }},
		{prefix: "run", handler: func(_ string) error { return s.cmdExec() }},
		{prefix: "tables", handler: func(_ string) error { return s.cmdTables() }},

		{prefix: "help", handler: func(_ string) error { s.cmdHelp(); return nil }},
	}

	// Sort by prefix length descending so longest prefixes match first.
	sort.Slice(s.commands, func(i, j int) bool {
		return len(s.commands[i].prefix) > len(s.commands[j].prefix)
	})
}

// commandNames derives the command name list from the registry for tab completion.
func (s *Session) commandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range s.commands {
		if cmd.hidden {
			continue
		}
		name := strings.TrimRight(cmd.prefix, " ")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	// exit/quit are handled by the REPL loop, not Execute().
	for _, extra := range []string{"exit", "quit"} {
		if !seen[extra] {
			names = append(names, extra)
		}
	}
	sort.Strings(names)
	return names
}

// --- Shared completion helpers ---

// completeFrameArgs handles completion for commands taking a frame name
// (use, merge).
func completeFrameArgs(args string) (completionContext, string) {
	arg := strings.TrimSpace(args)
	if !strings.Contains(arg, " ") {
		return contextFrameName, arg
	}
	return contextCommand, ""
}

// completeColumnArgs handles completion for column commands
// (filter, select, rename, sort).
func completeColumnArgs(args string) (completionContext, string) {
	return contextColumnRef, lastToken(args)
}

// completeEngineArgs handles completion for engine/set_engine commands.
func completeEngineArgs(args string) (completionContext, string) {
	return contextEngine, strings.TrimSpace(args)
}
