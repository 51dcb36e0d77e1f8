package frames

import "github.com/bawdo/gosframe/pure"

// pureCall appends one Pure relation function to a program at the stage's
// depth: ->name( body ).
func pureCall(cfg pure.Config, name, body string) string {
	return cfg.Sep(1) + "->" + name + "(" + cfg.Sep(2) + body + cfg.Sep(1) + ")"
}

// pureRename renders ->rename(~old, ~new).
func pureRename(cfg pure.Config, old, new string) string {
	return pureCall(cfg, "rename", "~"+old+", ~"+new)
}
