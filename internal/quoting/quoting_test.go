package quoting

import "testing"

func TestDoubleQuote(t *testing.T) {
	t.Parallel()
	if got := DoubleQuote("orders"); got != `"orders"` {
		t.Errorf("unexpected quoting: %s", got)
	}
	if got := DoubleQuote(`or"ders`); got != `"or""ders"` {
		t.Errorf("embedded quote not doubled: %s", got)
	}
}

func TestBacktick(t *testing.T) {
	t.Parallel()
	if got := Backtick("orders"); got != "`orders`" {
		t.Errorf("unexpected quoting: %s", got)
	}
	if got := Backtick("or`ders"); got != "`or``ders`" {
		t.Errorf("embedded backtick not doubled: %s", got)
	}
}

func TestEscapeString(t *testing.T) {
	t.Parallel()
	if got := EscapeString("O'Brien"); got != "O''Brien" {
		t.Errorf("single quote not doubled: %s", got)
	}
	if got := EscapeString(`a\b`); got != `a\\b` {
		t.Errorf("backslash not escaped: %s", got)
	}
}
