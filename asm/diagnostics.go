package asm

import "fmt"

// Diagnostic is one reported assembler error: its position, message, the
// offending token (rendered for display), and — when the token originated
// inside a macro expansion — the macro's name and definition site.
type Diagnostic struct {
	Pos         Position
	Message     string
	TokenDebug  string
	MacroName   string
	MacroDefPos Position
	FromMacro   bool
}

// String renders the diagnostic as "line:column [(expanded from macro
// 'NAME' on line DL)] ERROR on [token]: message", the format spec.md §6
// requires.
func (d Diagnostic) String() string {
	s := fmt.Sprintf("%d:%d", d.Pos.Line, d.Pos.Column)
	if d.FromMacro {
		s += fmt.Sprintf(" (expanded from macro '%s' on line %d)", d.MacroName, d.MacroDefPos.Line)
	}
	s += fmt.Sprintf(" ERROR on %s: %s", d.TokenDebug, d.Message)
	return s
}
