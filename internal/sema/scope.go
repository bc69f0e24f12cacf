// Package sema builds Hawk's lexical scope table (spec.md §4.3) and its
// typemap (spec.md §4.4). Both passes re-walk the AST in the exact order
// the parser produced it; SymbolTable's append-only scope list, replayed
// with EnterScope/LeaveScope rather than rebuilt, is what lets the second
// pass line back up with the first (spec.md §5, §9).
package sema

import (
	"fmt"
	"strings"

	"hawk/internal/diag"
)

// Symbol is one declared name, carrying the declaration span later
// diagnostics point back to. Properties is an open extension point,
// unused by the current language (spec.md §3).
type Symbol struct {
	Ident      string
	Start, End diag.Pos
	Properties []any
}

// Scope is one lexical scope's symbol list, in declaration order. Ident
// is a stable label used only for debug dumps (spec.md §3).
type Scope struct {
	Ident   string
	Symbols []Symbol
}

// SymbolTable is an append-only, ordered list of scopes with a cursor.
// Scopes are never removed once created: later passes re-enter the same
// sequence with EnterScope/LeaveScope instead of creating new ones.
//
// The cursor addresses scopes purely by creation order, not by a real
// enclosing-scope stack: leaving a scope simply decrements the cursor by
// one, which only lands back on the true lexical parent because scopes
// are created in the same order a single depth-first walk visits them.
// Two sibling let-blocks at the same nesting depth still get distinct,
// monotonically increasing indices, so a lookup issued while the cursor
// sits at a scope opened after an unrelated sibling has already closed
// can walk through that sibling's now-closed scope on its way down to 0.
// This is a preserved quirk, not a bug to silently route around.
type SymbolTable struct {
	scopes []Scope
	cursor int
	nonce  int
}

// NewSymbolTable returns an empty table with the cursor parked before
// scope 0 (no scope currently entered).
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{cursor: -1}
}

// CreateScope appends a fresh scope and enters it, returning its index.
func (t *SymbolTable) CreateScope() int {
	t.nonce++
	t.scopes = append(t.scopes, Scope{Ident: fmt.Sprintf("let_%d", t.nonce)})
	t.cursor = len(t.scopes) - 1
	return t.cursor
}

// EnterScope moves the cursor one scope forward, replaying a previously
// recorded createScope without creating anything new.
func (t *SymbolTable) EnterScope() {
	t.cursor++
}

// LeaveScope moves the cursor one scope back.
func (t *SymbolTable) LeaveScope() {
	t.cursor--
}

// Define adds a symbol to the currently entered scope. Shadowing an
// existing name in the same scope is permitted; the new definition is
// simply appended, becoming the "most recent" one findSymbol prefers.
func (t *SymbolTable) Define(ident string, start, end diag.Pos) {
	t.scopes[t.cursor].Symbols = append(t.scopes[t.cursor].Symbols, Symbol{
		Ident: ident, Start: start, End: end,
	})
}

// FindSymbol searches scopes from the current cursor down to scope 0,
// returning the most recent definition of name in the first scope that
// has one.
func (t *SymbolTable) FindSymbol(name string) (Symbol, bool) {
	for i := t.cursor; i >= 0; i-- {
		syms := t.scopes[i].Symbols
		for j := len(syms) - 1; j >= 0; j-- {
			if syms[j].Ident == name {
				return syms[j], true
			}
		}
	}
	return Symbol{}, false
}

// Scopes returns every scope in creation order, for `hawk -debug symtab`
// renderers that need the raw structure rather than the text form.
func (t *SymbolTable) Scopes() []Scope {
	return t.scopes
}

// String renders every scope in creation order, for `hawk -debug symtab`.
func (t *SymbolTable) String() string {
	var sb strings.Builder
	for i, sc := range t.scopes {
		fmt.Fprintf(&sb, "scope %d (%s):\n", i, sc.Ident)
		if len(sc.Symbols) == 0 {
			sb.WriteString("  (empty)\n")
			continue
		}
		for _, s := range sc.Symbols {
			fmt.Fprintf(&sb, "  %-12s [%s..%s]\n", s.Ident, s.Start, s.End)
		}
	}
	return sb.String()
}
