package sema

import (
	"hawk/internal/ast"
	"hawk/internal/diag"
)

// Resolve walks root once, building a fresh SymbolTable: every Let opens
// a scope, every Var defines its name before its initializer is visited
// (so shadowing an outer name inside your own initializer is not
// possible, but referencing a sibling declared earlier in the same
// scope is), and every VarRef is checked against what is currently
// visible. The returned table is reused, not rebuilt, by later passes.
func Resolve(root *ast.Node, bag *diag.Bag) *SymbolTable {
	st := NewSymbolTable()
	resolveLet(root, st, bag)
	return st
}

func resolveLet(n *ast.Node, st *SymbolTable, bag *diag.Bag) {
	st.CreateScope()
	last := len(n.Children) - 1
	for i, c := range n.Children {
		if i == last {
			resolveDo(c, st, bag)
		} else {
			resolveVar(c, st, bag)
		}
	}
}

func resolveVar(n *ast.Node, st *SymbolTable, bag *diag.Bag) {
	ident := n.Children[0]
	st.Define(ident.Name(), n.Start, n.End)
	resolveExpr(n.Children[1], st, bag)
}

func resolveDo(n *ast.Node, st *SymbolTable, bag *diag.Bag) {
	resolveExpr(n.Children[0], st, bag)
	st.LeaveScope()
}

func resolveExpr(n *ast.Node, st *SymbolTable, bag *diag.Bag) {
	switch {
	case n.Kind == ast.IntLiteral:
		// nothing to resolve
	case n.Kind == ast.VarRef:
		if _, ok := st.FindSymbol(n.Name()); !ok {
			bag.Add(diag.Range{Start: n.Start, End: n.End}, "Use of undeclared symbol: %s", n.Name())
		}
	case n.Kind == ast.Let:
		resolveLet(n, st, bag)
	case ast.IsBinary(n.Kind):
		resolveExpr(n.Children[0], st, bag)
		resolveExpr(n.Children[1], st, bag)
	}
}
