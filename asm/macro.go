package asm

// Macro is a stored %define NAME BODY: the substitution text a later
// identifier matching NAME expands to. Bodies are not re-scanned for
// further macros — expansion is single-level, so termination never
// depends on detecting cycles.
type Macro struct {
	Name  string
	Subst string
	Pos   Position
}

// activeMacro tracks one in-progress expansion: the macro being expanded,
// the call-site position every token it yields is stamped with, and the
// nested lexer reading the macro's stored substitution text.
type activeMacro struct {
	macro     *Macro
	expandPos Position
	lexer     *Lexer
}
