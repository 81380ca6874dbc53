package asm

import "github.com/coreeight/chip8toolkit/isa"

// Matched names the class of match RuleMatcher.TryNext reports for one
// token, or None/Multiple for the non-committal cases.
type Matched int

const (
	MatchNone Matched = iota
	MatchMultiple
	MatchRegister
	MatchLabel
	MatchAddress
	MatchByte
	MatchNibble
	MatchExact
)

// RuleMatcher matches a token-by-token prefix against the 35 instruction
// formats declared in isa.OperandFormats. Each format is lexed once, at
// construction, into its atom sequence (e.g. "DRW v, v, n" becomes
// [DRW, v, ',', v, ',', n]); matching then never re-lexes source text, only
// compares tokens atom-by-atom against a narrowing bitset of candidates.
type RuleMatcher struct {
	rules [][]string

	matchCount int
	matched    isa.Kind
	hasMatched bool
	matching   []bool
}

// NewRuleMatcher builds the atom table once; the same RuleMatcher is
// reused (via StartNewMatch) for every statement a Parser parses.
func NewRuleMatcher() *RuleMatcher {
	rm := &RuleMatcher{rules: make([][]string, isa.NumKinds)}
	for kind := 0; kind < isa.NumKinds; kind++ {
		lex := NewLexer(isa.OperandFormats[kind])
		var atoms []string
		for {
			t := lex.Next()
			if t.Kind == Eof {
				break
			}
			atoms = append(atoms, t.Lexeme)
		}
		rm.rules[kind] = atoms
	}
	return rm
}

// StartNewMatch resets the matcher to consider every rule viable again,
// ready to match the tokens of a new statement.
func (rm *RuleMatcher) StartNewMatch() {
	rm.matchCount = 0
	rm.hasMatched = false
	rm.matching = make([]bool, len(rm.rules))
	for i := range rm.matching {
		rm.matching[i] = true
	}
}

// GetMatchedRule returns the winning instruction kind once a rule's atoms
// have all been consumed, or ok=false while matching is still in progress.
func (rm *RuleMatcher) GetMatchedRule() (isa.Kind, bool) {
	return rm.matched, rm.hasMatched
}

// TryNext feeds the next token to every still-viable rule, narrowing the
// candidate set and returning the class of match that succeeded — or
// MatchNone if no viable rule accepts tok here, or MatchMultiple if two
// viable rules accept tok under different classes simultaneously.
func (rm *RuleMatcher) TryNext(tok Token) Matched {
	if rm.hasMatched {
		return MatchNone
	}

	code := MatchNone
	for i, viable := range rm.matching {
		if !viable {
			continue
		}

		atoms := rm.rules[i]
		c := matchOne(atoms[rm.matchCount], tok)
		if c == MatchNone {
			rm.matching[i] = false
		}
		if code == MatchNone {
			code = c
		} else if c != MatchNone && code != c {
			code = MatchMultiple
		}

		if c != MatchNone && rm.matchCount == len(atoms)-1 {
			rm.matched = isa.Kind(i)
			rm.hasMatched = true
			break
		}
	}

	if code != MatchNone {
		rm.matchCount++
	}
	return code
}

// matchOne compares one rule atom against one token: 'v'/'a'/'b'/'n' are
// shorthand for operand classes, matched by token kind; every other atom
// is a literal, matched case-insensitively by lexeme text regardless of
// the token's kind (this is how a bracket or comma atom matches a Char
// token, and how "I"/"DT"/etc. atoms match a SpecialRegister token).
func matchOne(ruleAtom string, tok Token) Matched {
	if len(ruleAtom) == 1 {
		switch ruleAtom[0] {
		case 'v':
			if tok.Kind == Register {
				return MatchRegister
			}
			return MatchNone
		case 'a':
			if tok.Kind == Identifier {
				return MatchLabel
			}
			if tok.Kind == Immediate {
				return MatchAddress
			}
			return MatchNone
		case 'b':
			if tok.Kind == Immediate {
				return MatchByte
			}
			return MatchNone
		case 'n':
			if tok.Kind == Immediate {
				return MatchNibble
			}
			return MatchNone
		}
	}

	if icaseEquals(ruleAtom, tok.Lexeme) {
		return MatchExact
	}
	return MatchNone
}
